package driverset_test

import (
	"image-qualifier/config"
	"image-qualifier/driver"
	"image-qualifier/driverset"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("RegionDriverSet", func() {
	var (
		c      config.Config
		region config.Region
	)

	BeforeEach(func() {
		region = config.Region{
			RegionName:       "us-east-2",
			BucketName:       "fake-bucket",
			InstancePrices:   map[string]float64{"t3.nano": 0.0052},
			SubnetID:         "subnet-fake",
			SecurityGroupIDs: []string{"sg-fake"},
			Credentials: config.Credentials{
				AccessKey: "fake-access-key",
				SecretKey: "fake-secret-key",
				Region:    "us-east-2",
			},
		}

		c = config.Config{
			ImageConfiguration: config.ImageConfiguration{
				RunID:       "qualify-fake",
				Description: "Fedora cloud image",
				EFI:         true,
				Tags:        map[string]string{"compose": "Fedora-Cloud-40"},
			},
			Qualification: config.Qualification{
				KeyPairName: "fake-key-pair",
			},
			Regions: []config.Region{region},
		}
	})

	It("builds the storage, compute and shell drivers for the region", func() {
		ds, err := driverset.NewRegionDriverSet(GinkgoWriter, c, region)
		Expect(err).ToNot(HaveOccurred())

		Expect(ds.Region()).To(Equal("us-east-2"))
		Expect(ds.StorageDriver()).To(BeAssignableToTypeOf(&driver.SDKStorageDriver{}))
		Expect(ds.ComputeDriver()).To(BeAssignableToTypeOf(&driver.SDKComputeDriver{}))
		Expect(ds.RemoteShell()).To(BeAssignableToTypeOf(&driver.SSHRemoteShell{}))
	})

	It("passes the image, qualification and region settings to the compute driver", func() {
		Expect(driverset.ComputeDriverConfig(c, region)).To(Equal(driver.ComputeDriverConfig{
			RunID:            "qualify-fake",
			Description:      "Fedora cloud image",
			EFI:              true,
			Tags:             map[string]string{"compose": "Fedora-Cloud-40"},
			KeyPairName:      "fake-key-pair",
			SubnetID:         "subnet-fake",
			SecurityGroupIDs: []string{"sg-fake"},
			InstancePrices:   map[string]float64{"t3.nano": 0.0052},
		}))
	})
})
