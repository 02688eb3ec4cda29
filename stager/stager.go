package stager

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"time"

	"image-qualifier/resources"

	"github.com/charmbracelet/log"
)

// DefaultChunkSize bounds memory used while streaming. It is also the
// smallest part size S3 accepts for multipart uploads.
const DefaultChunkSize = 5 * 1024 * 1024

// Stager streams a source image into object storage
type Stager struct {
	storage    resources.StorageDriver
	httpClient *http.Client
	chunkSize  int64
	logger     *log.Logger
}

func New(logDest io.Writer, storage resources.StorageDriver, httpClient *http.Client, chunkSize int64) *Stager {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}

	return &Stager{
		storage:    storage,
		httpClient: httpClient,
		chunkSize:  chunkSize,
		logger: log.NewWithOptions(logDest, log.Options{
			Prefix:          "ObjectStager",
			ReportTimestamp: true,
		}),
	}
}

// Stage copies sourceURL into containerName, creating the container when it
// does not exist. The object is named after the last path element of the URL.
// Compressed sources (.tar.gz, .tgz, .tar, .gz, .xz, .zst) are unpacked on the
// way so the stored object is the bare disk image.
func (s *Stager) Stage(ctx context.Context, sourceURL string, containerName string) (resources.StagedObject, error) {
	stageStartTime := time.Now()
	defer func(startTime time.Time) {
		s.logger.Infof("completed Stage() in %f minutes", time.Since(startTime).Minutes())
	}(stageStartTime)

	objectName, err := objectNameFromURL(sourceURL)
	if err != nil {
		return resources.StagedObject{}, &resources.ImageSourceError{URL: sourceURL, StatusCode: -1, Err: err}
	}

	s.logger.Infof("uploading %s to container %s", sourceURL, containerName)

	container, err := s.resolveContainer(ctx, containerName)
	if err != nil {
		return resources.StagedObject{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, sourceURL, nil)
	if err != nil {
		return resources.StagedObject{}, &resources.ImageSourceError{URL: sourceURL, StatusCode: -1, Err: err}
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return resources.StagedObject{}, &resources.ImageSourceError{URL: sourceURL, StatusCode: -1, Err: err}
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return resources.StagedObject{}, &resources.ImageSourceError{URL: sourceURL, StatusCode: resp.StatusCode}
	}

	disk, diskFormat, release, err := unpack(objectName, resp.Body)
	if err != nil {
		return resources.StagedObject{}, &resources.ImageSourceError{
			URL:        sourceURL,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unpacking %s: %w", objectName, err),
		}
	}
	defer release()

	if suffix := resources.ArchiveSuffix(objectName); suffix != "" {
		s.logger.Infof("unpacking %s disk from %s archive while uploading", diskFormat, suffix)
	}

	object, err := s.storage.UploadStream(ctx, resources.UploadDriverConfig{
		Container:  container,
		ObjectName: objectName,
		SourceURL:  sourceURL,
		Body:       disk,
		ChunkSize:  s.chunkSize,
	})
	if err != nil {
		return resources.StagedObject{}, &resources.ServiceError{Op: fmt.Sprintf("uploading %s to container %s", objectName, container.Name), Err: err}
	}
	object.DiskFormat = diskFormat

	return object, nil
}

func (s *Stager) resolveContainer(ctx context.Context, containerName string) (resources.Container, error) {
	container, err := s.storage.GetContainer(ctx, containerName)
	if err == nil {
		return container, nil
	}
	if !errors.Is(err, resources.ErrNotFound) {
		return resources.Container{}, &resources.ServiceError{Op: fmt.Sprintf("getting container %s", containerName), Err: err}
	}

	s.logger.Infof("creating container: %s", containerName)
	container, err = s.storage.CreateContainer(ctx, containerName)
	if err != nil {
		return resources.Container{}, &resources.ServiceError{Op: fmt.Sprintf("creating container %s", containerName), Err: err}
	}

	return container, nil
}

func objectNameFromURL(sourceURL string) (string, error) {
	parsed, err := url.Parse(sourceURL)
	if err != nil {
		return "", err
	}

	name := path.Base(parsed.Path)
	if name == "." || name == "/" {
		return "", fmt.Errorf("no object name in %q", sourceURL)
	}

	return name, nil
}
