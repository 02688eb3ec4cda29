package resources_test

import (
	"image-qualifier/resources"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Disk formats", func() {
	DescribeTable("ArchiveSuffix",
		func(name string, suffix string) {
			Expect(resources.ArchiveSuffix(name)).To(Equal(suffix))
		},
		Entry("a gzipped tarball", "fake-img-1.2-3.tar.gz", ".tar.gz"),
		Entry("an upper case tarball", "FAKE-IMG.TGZ", ".tgz"),
		Entry("an xz compressed raw disk", "Fedora-Cloud-Base-28-1.1.x86_64.raw.xz", ".xz"),
		Entry("a zstd compressed raw disk", "fake-img.raw.zst", ".zst"),
		Entry("a plain raw disk", "fake-img.raw", ""),
		Entry("a vmdk", "fake-img.vmdk", ""),
	)

	DescribeTable("DiskFormatOf",
		func(name string, format string) {
			Expect(resources.DiskFormatOf(name)).To(Equal(format))
		},
		Entry("raw", "disk.raw", resources.DiskFormatRAW),
		Entry("img", "fake-img.img", resources.DiskFormatRAW),
		Entry("vmdk", "fake-img.VMDK", resources.DiskFormatVMDK),
		Entry("vhd", "fake-img.vhd", resources.DiskFormatVHD),
		Entry("vhdx", "fake-img.vhdx", resources.DiskFormatVHD),
		Entry("no extension", "disk", resources.DiskFormatRAW),
	)
})
