package driver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"image-qualifier/resources"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/charmbracelet/log"
)

const (
	allUsersGroupURI           = "http://acs.amazonaws.com/groups/global/AllUsers"
	authenticatedUsersGroupURI = "http://acs.amazonaws.com/groups/global/AuthenticatedUsers"

	// buckets in us-east-1 must be created without a location constraint
	defaultBucketRegion = "us-east-1"
)

var rolePermissions = map[string]string{
	resources.ReaderRole: s3.PermissionRead,
	resources.WriterRole: s3.PermissionWrite,
	resources.OwnerRole:  s3.PermissionFullControl,
}

var _ resources.StorageDriver = &SDKStorageDriver{}

// SDKStorageDriver stages images into S3 buckets and grants access to them
type SDKStorageDriver struct {
	s3Client *s3.S3
	region   string
	logger   *log.Logger
}

// NewStorageDriver creates a SDKStorageDriver for the region of awsRegionSession.
// Every request, including each uploaded part, is retried up to uploadRetries times.
func NewStorageDriver(logDest io.Writer, awsRegionSession *session.Session, uploadRetries int) *SDKStorageDriver {
	logger := log.NewWithOptions(logDest, log.Options{
		Prefix:          "SDKStorageDriver",
		ReportTimestamp: true,
	})

	awsConfig := request.WithRetryer(
		aws.NewConfig().WithLogger(newDriverLogger(logger)),
		NewUploadRetryer(uploadRetries),
	)

	s3Client := s3.New(awsRegionSession, awsConfig)

	return &SDKStorageDriver{
		s3Client: s3Client,
		region:   aws.StringValue(s3Client.Config.Region),
		logger:   logger,
	}
}

// GetContainer returns the named bucket, wrapping resources.ErrNotFound when it does not exist
func (d *SDKStorageDriver) GetContainer(ctx context.Context, name string) (resources.Container, error) {
	_, err := d.s3Client.HeadBucketWithContext(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(name),
	})
	if err != nil {
		return resources.Container{}, fmt.Errorf("looking up bucket %s: %w", name, notFound(err))
	}

	return resources.Container{Name: name}, nil
}

// CreateContainer creates a bucket in the driver's region
func (d *SDKStorageDriver) CreateContainer(ctx context.Context, name string) (resources.Container, error) {
	input := &s3.CreateBucketInput{
		Bucket: aws.String(name),
	}
	if d.region != "" && d.region != defaultBucketRegion {
		input.CreateBucketConfiguration = &s3.CreateBucketConfiguration{
			LocationConstraint: aws.String(d.region),
		}
	}

	_, err := d.s3Client.CreateBucketWithContext(ctx, input)
	if err != nil {
		return resources.Container{}, fmt.Errorf("creating bucket %s: %w", name, err)
	}

	d.logger.Infof("created bucket %s in %s", name, d.region)

	return resources.Container{Name: name}, nil
}

// UploadStream copies driverConfig.Body into the container in parts of
// driverConfig.ChunkSize bytes
func (d *SDKStorageDriver) UploadStream(ctx context.Context, driverConfig resources.UploadDriverConfig) (resources.StagedObject, error) {
	uploadStartTime := time.Now()
	defer func(startTime time.Time) {
		d.logger.Infof("completed UploadStream() in %f minutes", time.Since(startTime).Minutes())
	}(uploadStartTime)

	uploader := s3manager.NewUploaderWithClient(d.s3Client, func(u *s3manager.Uploader) {
		if driverConfig.ChunkSize >= s3manager.MinUploadPartSize {
			u.PartSize = driverConfig.ChunkSize
		}
	})

	d.logger.Infof("uploading %s to s3://%s/%s", driverConfig.SourceURL, driverConfig.Container.Name, driverConfig.ObjectName)
	uploadOutput, err := uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Body:   driverConfig.Body,
		Bucket: aws.String(driverConfig.Container.Name),
		Key:    aws.String(driverConfig.ObjectName),
	})
	if err != nil {
		return resources.StagedObject{}, fmt.Errorf("uploading %s: %w", driverConfig.ObjectName, err)
	}

	d.logger.Infof("finished uploading object to %s", uploadOutput.Location)

	return resources.StagedObject{
		Container: driverConfig.Container.Name,
		Name:      driverConfig.ObjectName,
		SourceURL: driverConfig.SourceURL,
	}, nil
}

// SetPermission adds a grant for driverConfig.Entity to the object's ACL,
// keeping the grants already present
func (d *SDKStorageDriver) SetPermission(ctx context.Context, driverConfig resources.PermissionDriverConfig) error {
	grantee, err := granteeForEntity(driverConfig.Entity)
	if err != nil {
		return err
	}

	permission, ok := rolePermissions[driverConfig.Role]
	if !ok {
		return fmt.Errorf("unsupported role %q", driverConfig.Role)
	}

	objectACL, err := d.s3Client.GetObjectAclWithContext(ctx, &s3.GetObjectAclInput{
		Bucket: aws.String(driverConfig.Container),
		Key:    aws.String(driverConfig.ObjectName),
	})
	if err != nil {
		return fmt.Errorf("getting ACL of %s/%s: %w", driverConfig.Container, driverConfig.ObjectName, notFound(err))
	}

	for _, existing := range objectACL.Grants {
		if sameGrantee(existing.Grantee, grantee) && aws.StringValue(existing.Permission) == permission {
			d.logger.Debugf("%s already has %s on %s/%s", driverConfig.Entity, permission, driverConfig.Container, driverConfig.ObjectName)
			return nil
		}
	}

	grants := append(objectACL.Grants, &s3.Grant{
		Grantee:    grantee,
		Permission: aws.String(permission),
	})

	_, err = d.s3Client.PutObjectAclWithContext(ctx, &s3.PutObjectAclInput{
		Bucket: aws.String(driverConfig.Container),
		Key:    aws.String(driverConfig.ObjectName),
		AccessControlPolicy: &s3.AccessControlPolicy{
			Owner:  objectACL.Owner,
			Grants: grants,
		},
	})
	if err != nil {
		return fmt.Errorf("putting ACL of %s/%s: %w", driverConfig.Container, driverConfig.ObjectName, notFound(err))
	}

	d.logger.Infof("granted %s %s on %s/%s", driverConfig.Entity, permission, driverConfig.Container, driverConfig.ObjectName)

	return nil
}

// granteeForEntity maps an entity identifier onto an S3 grantee:
// allUsers, allAuthenticatedUsers, user-<email>, user-<canonical id>,
// id-<canonical id> or group-<uri>
func granteeForEntity(entity string) (*s3.Grantee, error) {
	switch {
	case entity == resources.AllUsersEntity:
		return groupGrantee(allUsersGroupURI), nil
	case entity == resources.AllAuthenticatedUsersEntity:
		return groupGrantee(authenticatedUsersGroupURI), nil
	case strings.HasPrefix(entity, "user-") && len(entity) > len("user-"):
		user := strings.TrimPrefix(entity, "user-")
		if strings.Contains(user, "@") {
			return &s3.Grantee{
				Type:         aws.String(s3.TypeAmazonCustomerByEmail),
				EmailAddress: aws.String(user),
			}, nil
		}
		return canonicalGrantee(user), nil
	case strings.HasPrefix(entity, "id-") && len(entity) > len("id-"):
		return canonicalGrantee(strings.TrimPrefix(entity, "id-")), nil
	case strings.HasPrefix(entity, "group-") && len(entity) > len("group-"):
		return groupGrantee(strings.TrimPrefix(entity, "group-")), nil
	}

	return nil, errors.New("unsupported entity " + entity)
}

func groupGrantee(uri string) *s3.Grantee {
	return &s3.Grantee{
		Type: aws.String(s3.TypeGroup),
		URI:  aws.String(uri),
	}
}

func canonicalGrantee(id string) *s3.Grantee {
	return &s3.Grantee{
		Type: aws.String(s3.TypeCanonicalUser),
		ID:   aws.String(id),
	}
}

func sameGrantee(a, b *s3.Grantee) bool {
	if a == nil || b == nil {
		return false
	}

	return aws.StringValue(a.URI) == aws.StringValue(b.URI) &&
		aws.StringValue(a.ID) == aws.StringValue(b.ID) &&
		strings.EqualFold(aws.StringValue(a.EmailAddress), aws.StringValue(b.EmailAddress))
}
