package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/credentials/ec2rolecreds"
	"github.com/aws/aws-sdk-go/aws/credentials/stscreds"
	"github.com/aws/aws-sdk-go/aws/ec2metadata"
	"github.com/aws/aws-sdk-go/aws/session"
	uuid "github.com/satori/go.uuid"
)

const (
	PublicVisibility  = "public"
	PrivateVisibility = "private"
)

const (
	defaultPollIntervalSeconds   = 10
	defaultRunningTimeoutSeconds = 600
	defaultProbeAttempts         = 60
	defaultProbeIntervalSeconds  = 60
	defaultCleanupTimeoutSeconds = 900
	defaultChunkSizeBytes        = 5 * 1024 * 1024
	minimumChunkSizeBytes        = 5 * 1024 * 1024
	defaultUploadRetries         = 3
)

// Convention:
// 1. required
// 2. optional, defaulted
// 3. optional
type ImageConfiguration struct {
	Description string            `json:"description"`
	RunID       string            `json:"run_id"`
	Visibility  string            `json:"visibility"`
	EFI         bool              `json:"efi"`
	ShareWith   []string          `json:"share_with,omitempty"`
	Tags        map[string]string `json:"tags,omitempty"`
}

type Qualification struct {
	SSHIdentity    string `json:"ssh_identity"`
	SSHKeyPath     string `json:"ssh_private_key_path"`
	KeyPairName    string `json:"key_pair_name"`
	PollInterval   int    `json:"poll_interval_seconds"`
	RunningTimeout int    `json:"running_timeout_seconds"`
	ProbeAttempts  int    `json:"probe_attempts"`
	ProbeInterval  int    `json:"probe_interval_seconds"`
	CleanupTimeout int    `json:"cleanup_timeout_seconds"`
}

type Region struct {
	RegionName       string             `json:"name"`
	Credentials      Credentials        `json:"credentials"`
	BucketName       string             `json:"bucket_name"`
	InstancePrices   map[string]float64 `json:"instance_prices"`
	StorageURL       string             `json:"storage_url"`
	ChunkSize        int64              `json:"chunk_size_bytes"`
	UploadRetries    int                `json:"upload_retries"`
	SubnetID         string             `json:"subnet_id"`
	SecurityGroupIDs []string           `json:"security_group_ids,omitempty"`
}

type Credentials struct {
	AccessKey    string `json:"access_key"`
	SecretKey    string `json:"secret_key"`
	SessionToken string `json:"session_token"`
	RoleArn      string `json:"role_arn"`
	Region       string `json:"-"`
}

type Config struct {
	ImageConfiguration ImageConfiguration `json:"image_configuration"`
	Qualification      Qualification      `json:"qualification"`
	Regions            []Region           `json:"regions"`
}

func NewFromReader(r io.Reader) (Config, error) {
	c := Config{}

	b, err := io.ReadAll(r)
	if err != nil {
		return Config{}, err
	}

	err = json.Unmarshal(b, &c)
	if err != nil {
		return Config{}, err
	}

	if c.ImageConfiguration.RunID == "" {
		c.ImageConfiguration.RunID = fmt.Sprintf("qualify-%s", uuid.NewV4().String())
	}

	if c.ImageConfiguration.Visibility == "" {
		c.ImageConfiguration.Visibility = PrivateVisibility
	}

	c.Qualification.setDefaults()

	for i := range c.Regions {
		region := &c.Regions[i]
		region.Credentials.Region = region.RegionName

		if region.StorageURL == "" && region.RegionName != "" {
			region.StorageURL = fmt.Sprintf("https://s3.%s.amazonaws.com", region.RegionName)
		}

		if region.ChunkSize == 0 {
			region.ChunkSize = defaultChunkSizeBytes
		}

		if region.UploadRetries == 0 {
			region.UploadRetries = defaultUploadRetries
		}
	}

	err = c.validate()
	if err != nil {
		return Config{}, err
	}

	return c, nil
}

func (q *Qualification) setDefaults() {
	if q.PollInterval == 0 {
		q.PollInterval = defaultPollIntervalSeconds
	}
	if q.RunningTimeout == 0 {
		q.RunningTimeout = defaultRunningTimeoutSeconds
	}
	if q.ProbeAttempts == 0 {
		q.ProbeAttempts = defaultProbeAttempts
	}
	if q.ProbeInterval == 0 {
		q.ProbeInterval = defaultProbeIntervalSeconds
	}
	if q.CleanupTimeout == 0 {
		q.CleanupTimeout = defaultCleanupTimeoutSeconds
	}
}

func (config *Config) validate() error {
	validVisibility := map[string]bool{
		PublicVisibility:  true,
		PrivateVisibility: true,
	}
	if !validVisibility[config.ImageConfiguration.Visibility] {
		return errors.New("visibility must be one of: ['public', 'private']")
	}

	for _, entity := range config.ImageConfiguration.ShareWith {
		if strings.TrimSpace(entity) == "" {
			return errors.New("share_with entries must not be empty")
		}
	}

	err := config.Qualification.validate()
	if err != nil {
		return err
	}

	regions := config.Regions
	if len(regions) == 0 {
		return errors.New("regions must be specified")
	}

	seen := map[string]bool{}
	for i := range regions {
		err := regions[i].validate()
		if err != nil {
			return err
		}

		if seen[regions[i].RegionName] {
			return fmt.Errorf("%s specified more than once in regions", regions[i].RegionName)
		}
		seen[regions[i].RegionName] = true
	}

	return nil
}

func (q *Qualification) validate() error {
	if q.SSHIdentity == "" {
		return errors.New("ssh_identity must be specified for qualification")
	}

	if q.LoginUser() == "" {
		return fmt.Errorf("ssh_identity %q does not name a login user", q.SSHIdentity)
	}

	if q.SSHKeyPath == "" {
		return errors.New("ssh_private_key_path must be specified for qualification")
	}

	if q.KeyPairName == "" {
		return errors.New("key_pair_name must be specified for qualification")
	}

	if q.PollInterval < 0 || q.RunningTimeout < 0 || q.ProbeInterval < 0 || q.CleanupTimeout < 0 {
		return errors.New("qualification intervals and timeouts must not be negative")
	}

	if q.ProbeAttempts < 0 {
		return errors.New("probe_attempts must not be negative")
	}

	if q.RunningTimeout < q.PollInterval {
		return errors.New("running_timeout_seconds must be at least poll_interval_seconds")
	}

	return nil
}

// LoginUser is the remote user probed on test instances: the part of the
// SSH identity before "@"
func (q *Qualification) LoginUser() string {
	user, _, _ := strings.Cut(q.SSHIdentity, "@")
	return strings.TrimSpace(user)
}

func (q *Qualification) PollIntervalDuration() time.Duration {
	return time.Duration(q.PollInterval) * time.Second
}

func (q *Qualification) RunningTimeoutDuration() time.Duration {
	return time.Duration(q.RunningTimeout) * time.Second
}

func (q *Qualification) ProbeIntervalDuration() time.Duration {
	return time.Duration(q.ProbeInterval) * time.Second
}

func (q *Qualification) CleanupTimeoutDuration() time.Duration {
	return time.Duration(q.CleanupTimeout) * time.Second
}

func (r *Region) validate() error {
	if r.RegionName == "" {
		return errors.New("name must be specified for regions entries")
	}

	if r.BucketName == "" {
		return errors.New("bucket_name must be specified for regions entries")
	}

	if r.Credentials.Region == "" {
		return errors.New("region must be specified for credentials")
	}

	if len(r.InstancePrices) == 0 {
		return fmt.Errorf("instance_prices must be specified for region %s", r.RegionName)
	}

	for instanceType, price := range r.InstancePrices {
		if price < 0 {
			return fmt.Errorf("instance_prices for %s in %s must not be negative", instanceType, r.RegionName)
		}
	}

	if r.ChunkSize < minimumChunkSizeBytes {
		return fmt.Errorf("chunk_size_bytes for %s must be at least %d", r.RegionName, minimumChunkSizeBytes)
	}

	if r.UploadRetries < 0 {
		return fmt.Errorf("upload_retries for %s must not be negative", r.RegionName)
	}

	return nil
}

func (configCredentials *Credentials) GetAwsConfig() *aws.Config {
	var awsCredentials *credentials.Credentials

	if configCredentials.AccessKey != "" && configCredentials.SecretKey != "" {
		awsCredentials = credentials.NewStaticCredentialsFromCreds(
			credentials.Value{
				AccessKeyID:     configCredentials.AccessKey,
				SecretAccessKey: configCredentials.SecretKey,
				SessionToken:    configCredentials.SessionToken,
			},
		)

		if configCredentials.RoleArn != "" {
			staticConfig := aws.NewConfig().WithRegion(configCredentials.Region).WithCredentials(awsCredentials)
			awsCredentials = stscreds.NewCredentials(
				session.Must(session.NewSession(staticConfig)),
				configCredentials.RoleArn,
			)
		}
	} else {
		awsCredentials = credentials.NewCredentials(&ec2rolecreds.EC2RoleProvider{
			Client: ec2metadata.New(session.Must(session.NewSession())),
		})
	}

	return aws.NewConfig().WithRegion(configCredentials.Region).WithCredentials(awsCredentials)
}
