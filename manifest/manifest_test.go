package manifest_test

import (
	"bytes"

	"image-qualifier/manifest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	yaml "gopkg.in/yaml.v2"
)

var _ = Describe("Manifest", func() {
	var manifestBytes []byte
	BeforeEach(func() {
		manifestBytes = []byte(`
images:
- url: https://kojipkgs.fedoraproject.org/compose/Fedora-Cloud-Base-40-1.14.x86_64.raw
- url: https://kojipkgs.fedoraproject.org/compose/Fedora-Cloud-Base-40-1.14.x86_64.vmdk
share_with:
- user-releng@fedoraproject.org`)
	})

	Context("reading and writing the manifest", func() {
		It("reads the images and the entities to share with", func() {
			m, err := manifest.NewFromReader(bytes.NewReader(manifestBytes))
			Expect(err).ToNot(HaveOccurred())

			Expect(m.Images).To(Equal([]manifest.ImageSource{
				{URL: "https://kojipkgs.fedoraproject.org/compose/Fedora-Cloud-Base-40-1.14.x86_64.raw"},
				{URL: "https://kojipkgs.fedoraproject.org/compose/Fedora-Cloud-Base-40-1.14.x86_64.vmdk"},
			}))
			Expect(m.ShareWith).To(ConsistOf("user-releng@fedoraproject.org"))
		})

		It("writes the expected YAML file, ordered by source and region", func() {
			m, err := manifest.NewFromReader(bytes.NewReader(manifestBytes))
			Expect(err).ToNot(HaveOccurred())

			m.Qualifications = []manifest.ImageReport{
				{
					Region:    "us-west-2",
					SourceURL: "https://kojipkgs.fedoraproject.org/compose/Fedora-Cloud-Base-40-1.14.x86_64.vmdk",
					Error:     "Cannot SSH to test instance Fedora-Cloud-Base-40-1-14-x86-64.",
				},
				{
					Region:     "us-west-2",
					SourceURL:  "https://kojipkgs.fedoraproject.org/compose/Fedora-Cloud-Base-40-1.14.x86_64.raw",
					Container:  "fake-bucket",
					Object:     "Fedora-Cloud-Base-40-1.14.x86_64.raw",
					ImageName:  "Fedora-Cloud-Base-40-1-14-x86-64",
					Qualified:  true,
					Visibility: "private",
					SharedWith: []string{"user-releng@fedoraproject.org"},
				},
				{
					Region:    "eu-west-1",
					SourceURL: "https://kojipkgs.fedoraproject.org/compose/Fedora-Cloud-Base-40-1.14.x86_64.raw",
					Qualified: true,
				},
			}

			writer := &bytes.Buffer{}
			err = m.Write(writer)
			Expect(err).ToNot(HaveOccurred())

			resultManifest := &manifest.Manifest{}
			err = yaml.Unmarshal(writer.Bytes(), resultManifest)
			Expect(err).ToNot(HaveOccurred())

			Expect(resultManifest.Images).To(HaveLen(2))
			Expect(resultManifest.Qualifications).To(HaveLen(3))

			first := resultManifest.Qualifications[0]
			Expect(first.Region).To(Equal("eu-west-1"))
			Expect(first.Qualified).To(BeTrue())

			second := resultManifest.Qualifications[1]
			Expect(second.Region).To(Equal("us-west-2"))
			Expect(second.ImageName).To(Equal("Fedora-Cloud-Base-40-1-14-x86-64"))
			Expect(second.Visibility).To(Equal("private"))
			Expect(second.SharedWith).To(ConsistOf("user-releng@fedoraproject.org"))

			third := resultManifest.Qualifications[2]
			Expect(third.Qualified).To(BeFalse())
			Expect(third.Error).To(ContainSubstring("Cannot SSH to test instance"))

			Expect(m.Qualifications[0].Region).To(Equal("us-west-2"), "Write must not reorder the caller's reports")
		})

		Context("given an invalid manifest", func() {
			It("NewFromReader returns an error", func() {
				manifestReader := bytes.NewReader([]byte("key: key: value"))
				_, err := manifest.NewFromReader(manifestReader)
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("unmarshaling YAML to manifest: "))
			})

			It("requires at least one image", func() {
				_, err := manifest.NewFromReader(bytes.NewReader([]byte("share_with: [allUsers]")))
				Expect(err).To(MatchError("images must be specified in the manifest"))
			})

			It("requires absolute http(s) image URLs", func() {
				_, err := manifest.NewFromReader(bytes.NewReader([]byte("images:\n- url: /tmp/disk.raw")))
				Expect(err).To(MatchError(`image url "/tmp/disk.raw" must be an absolute http(s) URL`))
			})

			It("rejects duplicate image URLs", func() {
				_, err := manifest.NewFromReader(bytes.NewReader([]byte("images:\n- url: https://example.com/a.raw\n- url: https://example.com/a.raw")))
				Expect(err).To(MatchError(`image url "https://example.com/a.raw" listed more than once`))
			})
		})

		It("returns an error if no qualifications are set", func() {
			manifestStruct, err := manifest.NewFromReader(bytes.NewReader(manifestBytes))
			Expect(err).ToNot(HaveOccurred())

			outputManifest := &bytes.Buffer{}
			err = manifestStruct.Write(outputManifest)
			Expect(err).To(MatchError("no qualifications have been added to the manifest"))
		})
	})
})
