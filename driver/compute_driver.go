package driver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"sort"
	"time"

	"image-qualifier/driver/reqinputs"
	"image-qualifier/resources"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/ec2"
	"github.com/charmbracelet/log"
	uuid "github.com/satori/go.uuid"
)

const (
	importTaskMaxAttempts = 60
	importTaskPollDelay   = 60 * time.Second

	runTagKey = "qualification-run"

	// bounds lookups made after a create call failed, which run detached from
	// the caller's context
	recoveryTimeout = time.Minute
)

// ComputeDriverConfig holds the account specific values used when
// registering images and launching test instances
type ComputeDriverConfig struct {
	RunID            string
	Description      string
	EFI              bool
	Tags             map[string]string
	KeyPairName      string
	SubnetID         string
	SecurityGroupIDs []string
	// InstancePrices is the hourly price of each instance type a test instance may use
	InstancePrices map[string]float64
	// ImportTaskPollDelay defaults to one minute
	ImportTaskPollDelay time.Duration
}

var _ resources.ComputeDriver = &SDKComputeDriver{}

// SDKComputeDriver registers images and runs test instances in EC2
type SDKComputeDriver struct {
	ec2Client    *ec2.EC2
	driverConfig ComputeDriverConfig
	logger       *log.Logger
}

// NewComputeDriver creates a SDKComputeDriver for the region of awsRegionSession
func NewComputeDriver(logDest io.Writer, awsRegionSession *session.Session, driverConfig ComputeDriverConfig) *SDKComputeDriver {
	logger := log.NewWithOptions(logDest, log.Options{
		Prefix:          "SDKComputeDriver",
		ReportTimestamp: true,
	})

	if driverConfig.ImportTaskPollDelay <= 0 {
		driverConfig.ImportTaskPollDelay = importTaskPollDelay
	}

	ec2Client := ec2.New(awsRegionSession, aws.NewConfig().WithLogger(newDriverLogger(logger)))

	return &SDKComputeDriver{
		ec2Client:    ec2Client,
		driverConfig: driverConfig,
		logger:       logger,
	}
}

// CreateImage imports the object at driverConfig.SourceURL as a snapshot and
// registers an HVM image backed by it. When registration fails the image may
// still exist, so it is looked up by name and run tag; if it is not found the
// snapshot is removed again. Once an image ID exists it is returned even
// alongside an error.
func (d *SDKComputeDriver) CreateImage(ctx context.Context, driverConfig resources.ImageDriverConfig) (resources.CandidateImage, error) {
	createStartTime := time.Now()
	defer func(startTime time.Time) {
		d.logger.Infof("completed CreateImage() in %f minutes", time.Since(startTime).Minutes())
	}(createStartTime)

	image := resources.CandidateImage{
		Name:   driverConfig.Name,
		Object: driverConfig.Object,
	}

	snapshotID, err := d.importSnapshot(ctx, driverConfig)
	if err != nil {
		return image, err
	}

	reqInput := reqinputs.NewHVMAmiRequestInput(driverConfig.Name, d.description(driverConfig), snapshotID, d.driverConfig.EFI)
	reqInput.SetTagSpecifications(d.tagSpecifications(ec2.ResourceTypeImage, driverConfig.Name))

	d.logger.Infof("registering image %s from snapshot %s", driverConfig.Name, snapshotID)
	reqOutput, err := d.ec2Client.RegisterImageWithContext(ctx, reqInput)
	if err != nil {
		registerErr := fmt.Errorf("registering image %s: %w", driverConfig.Name, err)

		image.ID = d.findRegisteredImage(ctx, driverConfig.Name)
		if image.ID == "" {
			d.deleteOrphanedSnapshot(snapshotID)
			return image, registerErr
		}

		d.logger.Warnf("image %s was registered as %s despite: %s", driverConfig.Name, image.ID, err)
		image.SnapshotID = snapshotID
		return image, registerErr
	}

	image.ID = aws.StringValue(reqOutput.ImageId)
	image.SnapshotID = snapshotID

	if !driverConfig.WaitForCompletion {
		return image, nil
	}

	d.logger.Infof("waiting for image %s to be available", image.ID)
	err = d.ec2Client.WaitUntilImageAvailableWithContext(ctx, &ec2.DescribeImagesInput{
		ImageIds: []*string{aws.String(image.ID)},
	})
	if err != nil {
		return image, fmt.Errorf("waiting for image %s to be available: %w", image.ID, err)
	}

	d.logger.Infof("image %s is available", image.ID)

	return image, nil
}

func (d *SDKComputeDriver) importSnapshot(ctx context.Context, driverConfig resources.ImageDriverConfig) (string, error) {
	format, err := diskFormat(driverConfig)
	if err != nil {
		return "", err
	}

	d.logger.Infof("initiating ImportSnapshot task from %s image: %s", format, driverConfig.SourceURL)
	reqOutput, err := d.ec2Client.ImportSnapshotWithContext(ctx, &ec2.ImportSnapshotInput{
		Description: aws.String(d.description(driverConfig)),
		DiskContainer: &ec2.SnapshotDiskContainer{
			Url:    aws.String(driverConfig.SourceURL),
			Format: aws.String(format),
		},
		TagSpecifications: d.tagSpecifications(ec2.ResourceTypeImportSnapshotTask, driverConfig.Name),
	})
	if err != nil {
		return "", fmt.Errorf("creating import snapshot task: %w", err)
	}

	importTaskID := aws.StringValue(reqOutput.ImportTaskId)
	d.logger.Infof("waiting on ImportSnapshot task %s", importTaskID)

	taskFilter := &ec2.DescribeImportSnapshotTasksInput{
		ImportTaskIds: []*string{reqOutput.ImportTaskId},
	}

	waitStartTime := time.Now()
	err = d.waitUntilImportSnapshotTaskCompleted(ctx, taskFilter)
	if err != nil {
		d.cancelImportTask(importTaskID)
		return "", fmt.Errorf("waiting for snapshot to become available: %w", err)
	}

	d.logger.Infof("waited on import task %s for %f minutes", importTaskID, time.Since(waitStartTime).Minutes())

	describeOutput, err := d.ec2Client.DescribeImportSnapshotTasksWithContext(ctx, taskFilter)
	if err != nil {
		return "", fmt.Errorf("describing snapshot from import snapshot task %s: %w", importTaskID, err)
	}

	if len(describeOutput.ImportSnapshotTasks) == 0 || describeOutput.ImportSnapshotTasks[0].SnapshotTaskDetail == nil {
		return "", fmt.Errorf("import snapshot task %s not found", importTaskID)
	}

	snapshotID := aws.StringValue(describeOutput.ImportSnapshotTasks[0].SnapshotTaskDetail.SnapshotId)
	if snapshotID == "" {
		return "", fmt.Errorf("snapshot ID empty for import task: %s", importTaskID)
	}

	d.logger.Infof("created snapshot %s", snapshotID)

	return snapshotID, nil
}

func (d *SDKComputeDriver) waitUntilImportSnapshotTaskCompleted(ctx context.Context, input *ec2.DescribeImportSnapshotTasksInput) error {
	w := request.Waiter{
		Name:        "WaitUntilImportSnapshotTasksCompleted",
		MaxAttempts: importTaskMaxAttempts,
		Delay:       request.ConstantWaiterDelay(d.driverConfig.ImportTaskPollDelay),
		Acceptors: []request.WaiterAcceptor{
			{
				State:    request.SuccessWaiterState,
				Matcher:  request.PathAllWaiterMatch,
				Argument: "ImportSnapshotTasks[].SnapshotTaskDetail.Status",
				Expected: "completed",
			},
			{
				State:    request.FailureWaiterState,
				Matcher:  request.PathAnyWaiterMatch,
				Argument: "ImportSnapshotTasks[].SnapshotTaskDetail.Status",
				Expected: "deleted",
			},
			{
				State:    request.FailureWaiterState,
				Matcher:  request.PathAnyWaiterMatch,
				Argument: "ImportSnapshotTasks[].SnapshotTaskDetail.Status",
				Expected: "deleting",
			},
		},
		Logger: d.ec2Client.Config.Logger,
		NewRequest: func(opts []request.Option) (*request.Request, error) {
			var inCpy *ec2.DescribeImportSnapshotTasksInput
			if input != nil {
				tmp := *input
				inCpy = &tmp
			}
			req, _ := d.ec2Client.DescribeImportSnapshotTasksRequest(inCpy)
			req.SetContext(ctx)
			req.ApplyOptions(opts...)
			return req, nil
		},
	}

	return w.WaitWithContext(ctx)
}

func (d *SDKComputeDriver) cancelImportTask(importTaskID string) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	_, err := d.ec2Client.CancelImportTaskWithContext(ctx, &ec2.CancelImportTaskInput{
		ImportTaskId: aws.String(importTaskID),
	})
	if err != nil {
		d.logger.Warnf("failed to cancel import task %s: %s", importTaskID, err)
	}
}

func (d *SDKComputeDriver) deleteOrphanedSnapshot(snapshotID string) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	_, err := d.ec2Client.DeleteSnapshotWithContext(ctx, &ec2.DeleteSnapshotInput{
		SnapshotId: aws.String(snapshotID),
	})
	if err != nil {
		d.logger.Warnf("failed to delete snapshot %s: %s", snapshotID, err)
	}
}

// findRegisteredImage looks for an image this run registered under name even
// though RegisterImage did not report it, returning "" when there is none
func (d *SDKComputeDriver) findRegisteredImage(ctx context.Context, name string) string {
	if d.driverConfig.RunID == "" {
		return ""
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), recoveryTimeout)
	defer cancel()

	described, err := d.ec2Client.DescribeImagesWithContext(ctx, &ec2.DescribeImagesInput{
		Owners: []*string{aws.String("self")},
		Filters: []*ec2.Filter{
			{Name: aws.String("name"), Values: []*string{aws.String(name)}},
			{Name: aws.String("tag:" + runTagKey), Values: []*string{aws.String(d.driverConfig.RunID)}},
		},
	})
	if err != nil {
		d.logger.Warnf("failed to look up image %s after registration failed: %s", name, err)
		return ""
	}

	for _, image := range described.Images {
		if id := aws.StringValue(image.ImageId); id != "" {
			return id
		}
	}
	return ""
}

// findLaunchedInstance looks for an instance started with clientToken even
// though RunInstances did not report it, returning "" when there is none
func (d *SDKComputeDriver) findLaunchedInstance(ctx context.Context, clientToken string) string {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), recoveryTimeout)
	defer cancel()

	described, err := d.ec2Client.DescribeInstancesWithContext(ctx, &ec2.DescribeInstancesInput{
		Filters: []*ec2.Filter{
			{Name: aws.String("client-token"), Values: []*string{aws.String(clientToken)}},
		},
	})
	if err != nil {
		d.logger.Warnf("failed to look up instance with client token %s after launch failed: %s", clientToken, err)
		return ""
	}

	instance := firstInstance(described)
	if instance == nil {
		return ""
	}
	return aws.StringValue(instance.InstanceId)
}

// ListLocations returns the available zones of the region, or only the zone
// of the configured subnet
func (d *SDKComputeDriver) ListLocations(ctx context.Context) ([]resources.Location, error) {
	if d.driverConfig.SubnetID != "" {
		subnets, err := d.ec2Client.DescribeSubnetsWithContext(ctx, &ec2.DescribeSubnetsInput{
			SubnetIds: []*string{aws.String(d.driverConfig.SubnetID)},
		})
		if err != nil {
			return nil, fmt.Errorf("describing subnet %s: %w", d.driverConfig.SubnetID, notFound(err))
		}

		locations := []resources.Location{}
		for _, subnet := range subnets.Subnets {
			locations = append(locations, resources.Location{Name: aws.StringValue(subnet.AvailabilityZone)})
		}
		return locations, nil
	}

	zones, err := d.ec2Client.DescribeAvailabilityZonesWithContext(ctx, &ec2.DescribeAvailabilityZonesInput{
		Filters: []*ec2.Filter{
			{
				Name:   aws.String("state"),
				Values: []*string{aws.String(ec2.AvailabilityZoneStateAvailable)},
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("describing availability zones: %w", err)
	}

	locations := []resources.Location{}
	for _, zone := range zones.AvailabilityZones {
		if aws.StringValue(zone.State) != ec2.AvailabilityZoneStateAvailable {
			continue
		}
		locations = append(locations, resources.Location{Name: aws.StringValue(zone.ZoneName)})
	}

	return locations, nil
}

// ListSizes returns the instance types offered in location that have a
// configured price, ordered by name
func (d *SDKComputeDriver) ListSizes(ctx context.Context, location resources.Location) ([]resources.Size, error) {
	sizes := []resources.Size{}

	err := d.ec2Client.DescribeInstanceTypeOfferingsPagesWithContext(ctx, &ec2.DescribeInstanceTypeOfferingsInput{
		LocationType: aws.String(ec2.LocationTypeAvailabilityZone),
		Filters: []*ec2.Filter{
			{
				Name:   aws.String("location"),
				Values: []*string{aws.String(location.Name)},
			},
		},
	}, func(page *ec2.DescribeInstanceTypeOfferingsOutput, lastPage bool) bool {
		for _, offering := range page.InstanceTypeOfferings {
			instanceType := aws.StringValue(offering.InstanceType)
			price, ok := d.driverConfig.InstancePrices[instanceType]
			if !ok {
				continue
			}
			sizes = append(sizes, resources.Size{Name: instanceType, Price: price})
		}
		return true
	})
	if err != nil {
		return nil, fmt.Errorf("describing instance type offerings in %s: %w", location.Name, err)
	}

	sort.Slice(sizes, func(i, j int) bool {
		return sizes[i].Name < sizes[j].Name
	})

	return sizes, nil
}

// CreateNode runs a single instance of driverConfig.Image with a public
// address and the configured key pair
func (d *SDKComputeDriver) CreateNode(ctx context.Context, driverConfig resources.NodeDriverConfig) (resources.TestInstance, error) {
	networkInterface := &ec2.InstanceNetworkInterfaceSpecification{
		DeviceIndex:              aws.Int64(0),
		AssociatePublicIpAddress: aws.Bool(true),
		DeleteOnTermination:      aws.Bool(true),
	}
	if d.driverConfig.SubnetID != "" {
		networkInterface.SubnetId = aws.String(d.driverConfig.SubnetID)
	}
	if len(d.driverConfig.SecurityGroupIDs) > 0 {
		networkInterface.Groups = aws.StringSlice(d.driverConfig.SecurityGroupIDs)
	}

	reqInput := &ec2.RunInstancesInput{
		ClientToken:       aws.String(uuid.NewV4().String()),
		ImageId:           aws.String(driverConfig.Image.ID),
		InstanceType:      aws.String(driverConfig.Size.Name),
		KeyName:           aws.String(d.driverConfig.KeyPairName),
		MinCount:          aws.Int64(1),
		MaxCount:          aws.Int64(1),
		NetworkInterfaces: []*ec2.InstanceNetworkInterfaceSpecification{networkInterface},
		TagSpecifications: d.tagSpecifications(ec2.ResourceTypeInstance, driverConfig.Name),
	}
	if d.driverConfig.SubnetID == "" {
		reqInput.Placement = &ec2.Placement{AvailabilityZone: aws.String(driverConfig.Location.Name)}
	}

	node := resources.TestInstance{
		Name:     driverConfig.Name,
		Size:     driverConfig.Size,
		Location: driverConfig.Location,
	}

	reservation, err := d.ec2Client.RunInstancesWithContext(ctx, reqInput)
	if err != nil {
		node.ID = d.findLaunchedInstance(ctx, aws.StringValue(reqInput.ClientToken))
		if node.ID != "" {
			d.logger.Warnf("instance %s (%s) was launched despite: %s", node.ID, node.Name, err)
		}
		return node, fmt.Errorf("running instance of %s: %w", driverConfig.Image.ID, err)
	}

	if len(reservation.Instances) == 0 {
		return node, fmt.Errorf("running instance of %s: no instance in reservation %s", driverConfig.Image.ID, aws.StringValue(reservation.ReservationId))
	}

	node.ID = aws.StringValue(reservation.Instances[0].InstanceId)
	d.logger.Infof("launched instance %s (%s)", node.ID, node.Name)

	return node, nil
}

// WaitUntilRunning polls every pollInterval until all nodes are running or
// timeout has passed, then returns the nodes with their public addresses
func (d *SDKComputeDriver) WaitUntilRunning(ctx context.Context, nodes []resources.TestInstance, pollInterval time.Duration, timeout time.Duration) ([]resources.TestInstance, error) {
	if len(nodes) == 0 {
		return nodes, nil
	}

	if pollInterval <= 0 {
		pollInterval = time.Second
	}
	maxAttempts := int(timeout / pollInterval)
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	input := &ec2.DescribeInstancesInput{}
	for _, node := range nodes {
		input.InstanceIds = append(input.InstanceIds, aws.String(node.ID))
	}

	err := d.ec2Client.WaitUntilInstanceRunningWithContext(ctx, input,
		request.WithWaiterDelay(request.ConstantWaiterDelay(pollInterval)),
		request.WithWaiterMaxAttempts(maxAttempts),
	)
	if err != nil {
		return nodes, fmt.Errorf("waiting %s for instances to be running: %w", timeout, err)
	}

	described, err := d.ec2Client.DescribeInstancesWithContext(ctx, input)
	if err != nil {
		return nodes, fmt.Errorf("describing running instances: %w", err)
	}

	addresses := map[string][]string{}
	for _, reservation := range described.Reservations {
		for _, instance := range reservation.Instances {
			addresses[aws.StringValue(instance.InstanceId)] = publicAddresses(instance)
		}
	}

	running := make([]resources.TestInstance, 0, len(nodes))
	for _, node := range nodes {
		node.PublicAddresses = addresses[node.ID]
		running = append(running, node)
	}

	return running, nil
}

func publicAddresses(instance *ec2.Instance) []string {
	addresses := []string{}
	if ip := aws.StringValue(instance.PublicIpAddress); ip != "" {
		addresses = append(addresses, ip)
	}
	if ip := aws.StringValue(instance.Ipv6Address); ip != "" {
		addresses = append(addresses, ip)
	}
	return addresses
}

// DestroyNode terminates the instance. With destroyBootDisk the root volume
// is marked for deletion on termination first. An instance that no longer
// exists or is already terminated yields resources.ErrNotFound.
func (d *SDKComputeDriver) DestroyNode(ctx context.Context, node resources.TestInstance, destroyBootDisk bool) (bool, error) {
	described, err := d.ec2Client.DescribeInstancesWithContext(ctx, &ec2.DescribeInstancesInput{
		InstanceIds: []*string{aws.String(node.ID)},
	})
	if err != nil {
		return false, fmt.Errorf("describing instance %s: %w", node.ID, notFound(err))
	}

	instance := firstInstance(described)
	if instance == nil {
		return false, fmt.Errorf("instance %s: %w", node.ID, resources.ErrNotFound)
	}

	if instance.State != nil && aws.StringValue(instance.State.Name) == ec2.InstanceStateNameTerminated {
		return false, fmt.Errorf("instance %s already terminated: %w", node.ID, resources.ErrNotFound)
	}

	// termination proceeds even when the root volume could not be marked
	var bootDiskErr error
	if destroyBootDisk {
		bootDiskErr = d.deleteRootVolumeOnTermination(ctx, instance)
		if bootDiskErr != nil {
			d.logger.Warnf("terminating %s without deleting its root volume: %s", node.ID, bootDiskErr)
		}
	}

	terminated, err := d.ec2Client.TerminateInstancesWithContext(ctx, &ec2.TerminateInstancesInput{
		InstanceIds: []*string{aws.String(node.ID)},
	})
	if err != nil {
		return false, errors.Join(fmt.Errorf("terminating instance %s: %w", node.ID, notFound(err)), bootDiskErr)
	}

	destroyed := false
	for _, change := range terminated.TerminatingInstances {
		if aws.StringValue(change.InstanceId) != node.ID || change.CurrentState == nil {
			continue
		}

		switch aws.StringValue(change.CurrentState.Name) {
		case ec2.InstanceStateNameShuttingDown, ec2.InstanceStateNameTerminated:
			destroyed = true
		}
	}

	if bootDiskErr != nil {
		return destroyed, fmt.Errorf("instance %s terminated but its root volume may remain: %w", node.ID, bootDiskErr)
	}

	return destroyed, nil
}

func (d *SDKComputeDriver) deleteRootVolumeOnTermination(ctx context.Context, instance *ec2.Instance) error {
	rootDevice := aws.StringValue(instance.RootDeviceName)

	for _, mapping := range instance.BlockDeviceMappings {
		if aws.StringValue(mapping.DeviceName) != rootDevice || mapping.Ebs == nil {
			continue
		}
		if aws.BoolValue(mapping.Ebs.DeleteOnTermination) {
			return nil
		}

		_, err := d.ec2Client.ModifyInstanceAttributeWithContext(ctx, &ec2.ModifyInstanceAttributeInput{
			InstanceId: instance.InstanceId,
			BlockDeviceMappings: []*ec2.InstanceBlockDeviceMappingSpecification{
				{
					DeviceName: aws.String(rootDevice),
					Ebs: &ec2.EbsInstanceBlockDeviceSpecification{
						DeleteOnTermination: aws.Bool(true),
					},
				},
			},
		})
		if err != nil {
			return fmt.Errorf("marking root volume of %s for deletion: %w", aws.StringValue(instance.InstanceId), err)
		}
		return nil
	}

	return nil
}

func firstInstance(described *ec2.DescribeInstancesOutput) *ec2.Instance {
	for _, reservation := range described.Reservations {
		if len(reservation.Instances) > 0 {
			return reservation.Instances[0]
		}
	}
	return nil
}

// DeleteImage deregisters the image and deletes its snapshot. If neither
// exists any more the result wraps resources.ErrNotFound.
func (d *SDKComputeDriver) DeleteImage(ctx context.Context, image resources.CandidateImage) (bool, error) {
	imageGone := image.ID == ""
	snapshotGone := image.SnapshotID == ""

	if !imageGone {
		_, err := d.ec2Client.DeregisterImageWithContext(ctx, &ec2.DeregisterImageInput{
			ImageId: aws.String(image.ID),
		})
		err = notFound(err)
		switch {
		case errors.Is(err, resources.ErrNotFound):
			imageGone = true
		case err != nil:
			return false, fmt.Errorf("deregistering image %s: %w", image.ID, err)
		default:
			d.logger.Infof("deregistered image %s", image.ID)
		}
	}

	if !snapshotGone {
		_, err := d.ec2Client.DeleteSnapshotWithContext(ctx, &ec2.DeleteSnapshotInput{
			SnapshotId: aws.String(image.SnapshotID),
		})
		err = notFound(err)
		switch {
		case errors.Is(err, resources.ErrNotFound):
			snapshotGone = true
		case err != nil:
			return false, fmt.Errorf("deleting snapshot %s of image %s: %w", image.SnapshotID, image.ID, err)
		default:
			d.logger.Infof("deleted snapshot %s", image.SnapshotID)
		}
	}

	if imageGone && snapshotGone {
		return false, fmt.Errorf("image %s: %w", image.Name, resources.ErrNotFound)
	}

	return true, nil
}

func (d *SDKComputeDriver) description(driverConfig resources.ImageDriverConfig) string {
	if d.driverConfig.Description != "" {
		return d.driverConfig.Description
	}
	return fmt.Sprintf("Qualification candidate %s", driverConfig.Name)
}

func (d *SDKComputeDriver) tagSpecifications(resourceType string, name string) []*ec2.TagSpecification {
	tags := []*ec2.Tag{
		{Key: aws.String("Name"), Value: aws.String(name)},
	}
	if d.driverConfig.RunID != "" {
		tags = append(tags, &ec2.Tag{Key: aws.String(runTagKey), Value: aws.String(d.driverConfig.RunID)})
	}

	keys := make([]string, 0, len(d.driverConfig.Tags))
	for key := range d.driverConfig.Tags {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		tags = append(tags, &ec2.Tag{Key: aws.String(key), Value: aws.String(d.driverConfig.Tags[key])})
	}

	return []*ec2.TagSpecification{
		{
			ResourceType: aws.String(resourceType),
			Tags:         tags,
		},
	}
}

// diskFormat prefers the format recorded when the object was staged. Without
// one the object name decides, and an archive is refused since ImportSnapshot
// reads the object as a bare disk.
func diskFormat(driverConfig resources.ImageDriverConfig) (string, error) {
	if driverConfig.Object.DiskFormat != "" {
		return driverConfig.Object.DiskFormat, nil
	}

	name := driverConfig.Object.Name
	if name == "" {
		name = path.Base(driverConfig.SourceURL)
	}
	if suffix := resources.ArchiveSuffix(name); suffix != "" {
		return "", fmt.Errorf("cannot import %s: %s archives must be unpacked when staged", name, suffix)
	}

	return resources.DiskFormatOf(name), nil
}
