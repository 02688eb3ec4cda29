package qualifier

import (
	"regexp"
	"strings"
)

// Archive suffixes stripped from object names before sanitizing
var archiveSuffixes = []string{".tar.gz", ".raw.xz", ".qcow2", ".vmdk", ".raw", ".img"}

var illegalNameRun = regexp.MustCompile(`[^a-zA-Z0-9]+`)

// ImageName derives a provider-legal image name from an object name: the
// archive suffix is stripped and every run of characters outside
// [A-Za-z0-9] becomes a single hyphen.
func ImageName(objectName string) string {
	name := objectName
	for _, suffix := range archiveSuffixes {
		if strings.HasSuffix(name, suffix) {
			name = strings.TrimSuffix(name, suffix)
			break
		}
	}

	return illegalNameRun.ReplaceAllString(name, "-")
}
