package resources

import (
	"path"
	"strings"
)

// Disk formats a ComputeDriver can register an image from
const (
	DiskFormatRAW  = "RAW"
	DiskFormatVMDK = "VMDK"
	DiskFormatVHD  = "VHD"
)

var archiveSuffixes = []string{".tar.gz", ".tgz", ".tar", ".gz", ".xz", ".zst"}

// ArchiveSuffix returns the compression or archive suffix of name, or "" when
// name is a plain disk image
func ArchiveSuffix(name string) string {
	lower := strings.ToLower(name)
	for _, suffix := range archiveSuffixes {
		if strings.HasSuffix(lower, suffix) {
			return suffix
		}
	}
	return ""
}

// DiskFormatOf maps the file name of an uncompressed disk image onto its format.
// Anything not recognised as VMDK or VHD is a raw disk.
func DiskFormatOf(name string) string {
	switch strings.ToLower(path.Ext(name)) {
	case ".vmdk":
		return DiskFormatVMDK
	case ".vhd", ".vhdx":
		return DiskFormatVHD
	default:
		return DiskFormatRAW
	}
}
