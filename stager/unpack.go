package stager

import (
	"archive/tar"
	"errors"
	"fmt"
	"io"

	"image-qualifier/resources"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

// unpack wraps body so that reading from the result yields the disk image
// held in a compressed or archived source. Plain images pass through. The
// returned format describes the unpacked disk and release must be called once
// the reader is drained.
func unpack(objectName string, body io.Reader) (disk io.Reader, diskFormat string, release func(), err error) {
	suffix := resources.ArchiveSuffix(objectName)
	inner := objectName[:len(objectName)-len(suffix)]
	release = func() {}

	switch suffix {
	case "":
		return body, resources.DiskFormatOf(objectName), release, nil

	case ".tar.gz", ".tgz":
		gz, err := gzip.NewReader(body)
		if err != nil {
			return nil, "", nil, fmt.Errorf("reading gzip header: %w", err)
		}
		member, name, err := firstDiskMember(tar.NewReader(gz))
		if err != nil {
			gz.Close() //nolint:errcheck
			return nil, "", nil, err
		}
		return member, resources.DiskFormatOf(name), func() { gz.Close() }, nil //nolint:errcheck

	case ".tar":
		member, name, err := firstDiskMember(tar.NewReader(body))
		if err != nil {
			return nil, "", nil, err
		}
		return member, resources.DiskFormatOf(name), release, nil

	case ".gz":
		gz, err := gzip.NewReader(body)
		if err != nil {
			return nil, "", nil, fmt.Errorf("reading gzip header: %w", err)
		}
		return gz, resources.DiskFormatOf(inner), func() { gz.Close() }, nil //nolint:errcheck

	case ".xz":
		xzReader, err := xz.NewReader(body)
		if err != nil {
			return nil, "", nil, fmt.Errorf("reading xz header: %w", err)
		}
		return xzReader, resources.DiskFormatOf(inner), release, nil

	case ".zst":
		decoder, err := zstd.NewReader(body)
		if err != nil {
			return nil, "", nil, fmt.Errorf("reading zstd stream: %w", err)
		}
		return decoder, resources.DiskFormatOf(inner), decoder.Close, nil
	}

	return nil, "", nil, fmt.Errorf("unsupported archive suffix %q", suffix)
}

// firstDiskMember advances archive to its first regular file
func firstDiskMember(archive *tar.Reader) (io.Reader, string, error) {
	for {
		header, err := archive.Next()
		if errors.Is(err, io.EOF) {
			return nil, "", errors.New("archive contains no disk image")
		}
		if err != nil {
			return nil, "", fmt.Errorf("reading archive: %w", err)
		}

		switch header.Typeflag {
		case tar.TypeReg, tar.TypeGNUSparse:
			return archive, header.Name, nil
		}
	}
}
