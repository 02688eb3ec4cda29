package driverset

// You only need **one** of these per package!
//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

import (
	"io"
	"time"

	"image-qualifier/config"
	"image-qualifier/driver"
	"image-qualifier/resources"
)

const sshDialTimeout = 30 * time.Second

//counterfeiter:generate . RegionDriverSet
type RegionDriverSet interface {
	Region() string
	StorageDriver() resources.StorageDriver
	ComputeDriver() resources.ComputeDriver
	RemoteShell() resources.RemoteShell
}

type regionDriverSet struct {
	region        string
	storageDriver *driver.SDKStorageDriver
	computeDriver *driver.SDKComputeDriver
	remoteShell   *driver.SSHRemoteShell
}

// NewRegionDriverSet builds the drivers used to qualify images in one region,
// all sharing a single AWS session
func NewRegionDriverSet(logDest io.Writer, c config.Config, region config.Region) (RegionDriverSet, error) {
	awsRegionSession, err := driver.NewRegionSession(region.Credentials)
	if err != nil {
		return nil, err
	}

	return &regionDriverSet{
		region:        region.RegionName,
		storageDriver: driver.NewStorageDriver(logDest, awsRegionSession, region.UploadRetries),
		computeDriver: driver.NewComputeDriver(logDest, awsRegionSession, ComputeDriverConfig(c, region)),
		remoteShell:   driver.NewSSHRemoteShell(logDest, sshDialTimeout),
	}, nil
}

// ComputeDriverConfig collects the compute settings for region from c
func ComputeDriverConfig(c config.Config, region config.Region) driver.ComputeDriverConfig {
	return driver.ComputeDriverConfig{
		RunID:            c.ImageConfiguration.RunID,
		Description:      c.ImageConfiguration.Description,
		EFI:              c.ImageConfiguration.EFI,
		Tags:             c.ImageConfiguration.Tags,
		KeyPairName:      c.Qualification.KeyPairName,
		SubnetID:         region.SubnetID,
		SecurityGroupIDs: region.SecurityGroupIDs,
		InstancePrices:   region.InstancePrices,
	}
}

func (s *regionDriverSet) Region() string {
	return s.region
}

func (s *regionDriverSet) StorageDriver() resources.StorageDriver {
	return s.storageDriver
}

func (s *regionDriverSet) ComputeDriver() resources.ComputeDriver {
	return s.computeDriver
}

func (s *regionDriverSet) RemoteShell() resources.RemoteShell {
	return s.remoteShell
}
