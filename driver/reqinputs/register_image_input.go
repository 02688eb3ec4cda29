package reqinputs

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/ec2"
)

const (
	ImageArchitecture      = "x86_64"
	HVMImageVirtualization = "hvm"

	firstDeviceNameHVMImage = "/dev/xvda"

	legacyBIOSBootMode = "legacy-bios"
	uefiBootMode       = "uefi"
)

// NewHVMAmiRequestInput builds the required input to register an HVM image
// backed by a single imported snapshot
func NewHVMAmiRequestInput(imageName string, imageDescription string, snapshotID string, efi bool) *ec2.RegisterImageInput {
	bootMode := legacyBIOSBootMode
	if efi {
		bootMode = uefiBootMode
	}

	return &ec2.RegisterImageInput{
		SriovNetSupport:    aws.String("simple"),
		Architecture:       aws.String(ImageArchitecture),
		Description:        aws.String(imageDescription),
		VirtualizationType: aws.String(HVMImageVirtualization),
		Name:               aws.String(imageName),
		BootMode:           aws.String(bootMode),
		RootDeviceName:     aws.String(firstDeviceNameHVMImage),
		EnaSupport:         aws.Bool(true),
		BlockDeviceMappings: []*ec2.BlockDeviceMapping{
			{
				DeviceName: aws.String(firstDeviceNameHVMImage),
				Ebs: &ec2.EbsBlockDevice{
					DeleteOnTermination: aws.Bool(true),
					SnapshotId:          aws.String(snapshotID),
				},
			},
		},
	}
}
