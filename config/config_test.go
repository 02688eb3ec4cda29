package config_test

import (
	"bytes"
	"encoding/json"
	"time"

	"image-qualifier/config"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type configModifier func(*config.Config)

func identityModifier(_ *config.Config) {}

func parseConfig(s string, modify configModifier) (config.Config, error) {
	configJSON := []byte(s)
	configReader := bytes.NewBuffer(configJSON)
	c, err := config.NewFromReader(configReader)
	Expect(err).ToNot(HaveOccurred())

	modify(&c)
	modifiedBytes, err := json.Marshal(c)
	if err != nil {
		return config.Config{}, err
	}

	modifiedConfigReader := bytes.NewBuffer(modifiedBytes)
	return config.NewFromReader(modifiedConfigReader)
}

var _ = Describe("Config", func() {
	baseJSON := `
    {
      "image_configuration": {
        "description": "Fedora cloud image"
      },
      "qualification": {
        "ssh_identity": "fedora@fedoraproject.org",
        "ssh_private_key_path": "/etc/image-qualifier/id_ed25519",
        "key_pair_name": "image-qualifier"
      },
      "regions": [
        {
          "name": "us-east-2",
          "bucket_name": "image-bucket",
          "instance_prices": {
            "t3.micro": 0.0104,
            "t3.nano": 0.0052
          },
          "credentials": {
            "access_key": "access-key",
            "secret_key": "secret-key"
          }
        }
      ]
    }
  `

	Describe("NewFromReader", func() {
		It("returns a Config, with run id, visibility and qualification policy defaulted", func() {
			c, err := parseConfig(baseJSON, identityModifier)
			Expect(err).ToNot(HaveOccurred())
			Expect(c.ImageConfiguration.RunID).To(MatchRegexp("qualify-.+"))
			Expect(c.ImageConfiguration.Visibility).To(Equal(config.PrivateVisibility))

			Expect(c.Qualification.PollIntervalDuration()).To(Equal(10 * time.Second))
			Expect(c.Qualification.RunningTimeoutDuration()).To(Equal(600 * time.Second))
			Expect(c.Qualification.ProbeAttempts).To(Equal(60))
			Expect(c.Qualification.ProbeIntervalDuration()).To(Equal(60 * time.Second))
			Expect(c.Qualification.CleanupTimeoutDuration()).To(Equal(15 * time.Minute))
		})

		It("defaults the storage URL and chunk size of each region", func() {
			c, err := parseConfig(baseJSON, identityModifier)
			Expect(err).ToNot(HaveOccurred())
			Expect(c.Regions[0].StorageURL).To(Equal("https://s3.us-east-2.amazonaws.com"))
			Expect(c.Regions[0].ChunkSize).To(Equal(int64(5 * 1024 * 1024)))
			Expect(c.Regions[0].UploadRetries).To(Equal(3))
			Expect(c.Regions[0].Credentials.Region).To(Equal("us-east-2"))
		})

		It("keeps the upload retries configured for a region", func() {
			c, err := parseConfig(baseJSON, func(c *config.Config) {
				c.Regions[0].UploadRetries = 8
			})
			Expect(err).ToNot(HaveOccurred())
			Expect(c.Regions[0].UploadRetries).To(Equal(8))
		})

		It("sets the run id if provided", func() {
			c, err := parseConfig(baseJSON, func(c *config.Config) {
				c.ImageConfiguration.RunID = "fake-run"
			})
			Expect(err).ToNot(HaveOccurred())
			Expect(c.ImageConfiguration.RunID).To(Equal("fake-run"))
		})

		It("keeps an explicit storage URL", func() {
			c, err := parseConfig(baseJSON, func(c *config.Config) {
				c.Regions[0].StorageURL = "https://fake-bucket-host.example.com"
			})
			Expect(err).ToNot(HaveOccurred())
			Expect(c.Regions[0].StorageURL).To(Equal("https://fake-bucket-host.example.com"))
		})

		Context("with an invalid 'image_configuration' specified", func() {
			It("returns an error when 'visibility' is not valid", func() {
				_, err := parseConfig(baseJSON, func(c *config.Config) {
					c.ImageConfiguration.Visibility = "bogus"
				})
				Expect(err).To(HaveOccurred())
				Expect(err).To(MatchError("visibility must be one of: ['public', 'private']"))
			})

			It("returns an error when a 'share_with' entry is blank", func() {
				_, err := parseConfig(baseJSON, func(c *config.Config) {
					c.ImageConfiguration.ShareWith = []string{"user-someone@example.com", " "}
				})
				Expect(err).To(MatchError("share_with entries must not be empty"))
			})
		})

		Context("with an invalid 'qualification' specified", func() {
			It("returns an error when 'ssh_identity' is missing", func() {
				_, err := parseConfig(baseJSON, func(c *config.Config) {
					c.Qualification.SSHIdentity = ""
				})
				Expect(err).To(MatchError("ssh_identity must be specified for qualification"))
			})

			It("returns an error when 'ssh_identity' has no user part", func() {
				_, err := parseConfig(baseJSON, func(c *config.Config) {
					c.Qualification.SSHIdentity = "@fedoraproject.org"
				})
				Expect(err).To(MatchError(`ssh_identity "@fedoraproject.org" does not name a login user`))
			})

			It("returns an error when 'ssh_private_key_path' is missing", func() {
				_, err := parseConfig(baseJSON, func(c *config.Config) {
					c.Qualification.SSHKeyPath = ""
				})
				Expect(err).To(MatchError("ssh_private_key_path must be specified for qualification"))
			})

			It("returns an error when 'key_pair_name' is missing", func() {
				_, err := parseConfig(baseJSON, func(c *config.Config) {
					c.Qualification.KeyPairName = ""
				})
				Expect(err).To(MatchError("key_pair_name must be specified for qualification"))
			})

			It("returns an error when the running timeout is shorter than the poll interval", func() {
				_, err := parseConfig(baseJSON, func(c *config.Config) {
					c.Qualification.PollInterval = 30
					c.Qualification.RunningTimeout = 20
				})
				Expect(err).To(MatchError("running_timeout_seconds must be at least poll_interval_seconds"))
			})

			It("returns an error when probe attempts are negative", func() {
				_, err := parseConfig(baseJSON, func(c *config.Config) {
					c.Qualification.ProbeAttempts = -1
				})
				Expect(err).To(MatchError("probe_attempts must not be negative"))
			})
		})

		Describe("LoginUser", func() {
			It("uses the part of the identity before '@'", func() {
				c, err := parseConfig(baseJSON, identityModifier)
				Expect(err).ToNot(HaveOccurred())
				Expect(c.Qualification.LoginUser()).To(Equal("fedora"))
			})

			It("uses the whole identity when there is no '@'", func() {
				q := config.Qualification{SSHIdentity: "centos"}
				Expect(q.LoginUser()).To(Equal("centos"))
			})
		})

		Context("with an empty 'regions' specified", func() {
			It("returns an error", func() {
				_, err := parseConfig(baseJSON, func(c *config.Config) {
					c.Regions = []config.Region{}
				})
				Expect(err).To(MatchError("regions must be specified"))
			})
		})

		Context("given a 'region' config without 'name'", func() {
			It("returns an error", func() {
				_, err := parseConfig(baseJSON, func(c *config.Config) {
					c.Regions[0].RegionName = ""
				})
				Expect(err).To(MatchError("name must be specified for regions entries"))
			})
		})

		Context("given a 'region' config without 'bucket_name'", func() {
			It("returns an error", func() {
				_, err := parseConfig(baseJSON, func(c *config.Config) {
					c.Regions[0].BucketName = ""
				})
				Expect(err).To(MatchError("bucket_name must be specified for regions entries"))
			})
		})

		Context("given a 'region' config without 'instance_prices'", func() {
			It("returns an error", func() {
				_, err := parseConfig(baseJSON, func(c *config.Config) {
					c.Regions[0].InstancePrices = nil
				})
				Expect(err).To(MatchError("instance_prices must be specified for region us-east-2"))
			})
		})

		Context("given a chunk size below the multipart minimum", func() {
			It("returns an error", func() {
				_, err := parseConfig(baseJSON, func(c *config.Config) {
					c.Regions[0].ChunkSize = 1024
				})
				Expect(err).To(MatchError("chunk_size_bytes for us-east-2 must be at least 5242880"))
			})
		})

		Context("given negative upload retries", func() {
			It("returns an error", func() {
				_, err := parseConfig(baseJSON, func(c *config.Config) {
					c.Regions[0].UploadRetries = -1
				})
				Expect(err).To(MatchError("upload_retries for us-east-2 must not be negative"))
			})
		})

		Context("when a region is listed twice", func() {
			It("returns an error", func() {
				_, err := parseConfig(baseJSON, func(c *config.Config) {
					c.Regions = append(c.Regions, c.Regions[0])
				})
				Expect(err).To(MatchError("us-east-2 specified more than once in regions"))
			})
		})
	})

	Describe("GetAwsConfig", func() {
		var keyID = "test-key-id"
		var keyValue = "test-key-value"
		var token = "test-token"
		var region = "us-east-1"
		var roleArn = "arn:aws:iam::123456789012:role/TestRole"

		Context("when both key fields are provided", func() {
			It("returns static credentials with correct values", func() {
				creds := config.Credentials{
					AccessKey: keyID,
					SecretKey: keyValue,
					Region:    region,
				}

				awsCfg := creds.GetAwsConfig()

				Expect(*awsCfg.Region).To(Equal(region))

				v, err := awsCfg.Credentials.Get()
				Expect(err).NotTo(HaveOccurred())
				Expect(v.AccessKeyID).To(Equal(keyID))
				Expect(v.SecretAccessKey).To(Equal(keyValue))
				Expect(v.SessionToken).To(BeEmpty())
				Expect(v.ProviderName).To(Equal("StaticProvider"))
			})
		})

		Context("when session token is also provided", func() {
			It("includes the token in static credentials", func() {
				creds := config.Credentials{
					AccessKey:    keyID,
					SecretKey:    keyValue,
					SessionToken: token,
					Region:       region,
				}

				awsCfg := creds.GetAwsConfig()

				v, err := awsCfg.Credentials.Get()
				Expect(err).NotTo(HaveOccurred())
				Expect(v.AccessKeyID).To(Equal(keyID))
				Expect(v.SecretAccessKey).To(Equal(keyValue))
				Expect(v.SessionToken).To(Equal(token))
				Expect(v.ProviderName).To(Equal("StaticProvider"))
			})
		})

		Context("when no key fields are provided", func() {
			It("does not use static credentials", func() {
				creds := config.Credentials{
					Region: region,
				}

				awsCfg := creds.GetAwsConfig()

				Expect(*awsCfg.Region).To(Equal(region))
				Expect(awsCfg.Credentials).NotTo(BeNil())
				Expect(awsCfg.Credentials.IsExpired()).To(BeTrue())

				v, err := awsCfg.Credentials.Get()
				if err == nil {
					Expect(v.ProviderName).NotTo(Equal("StaticProvider"))
				}
			})
		})

		Context("when only access key is provided", func() {
			It("does not use static credentials", func() {
				creds := config.Credentials{
					AccessKey: keyID,
					Region:    region,
				}

				awsCfg := creds.GetAwsConfig()

				Expect(awsCfg.Credentials).NotTo(BeNil())
				Expect(awsCfg.Credentials.IsExpired()).To(BeTrue())

				v, err := awsCfg.Credentials.Get()
				if err == nil {
					Expect(v.ProviderName).NotTo(Equal("StaticProvider"))
				}
			})
		})

		Context("when only secret key is provided", func() {
			It("does not use static credentials", func() {
				creds := config.Credentials{
					SecretKey: keyValue,
					Region:    region,
				}

				awsCfg := creds.GetAwsConfig()

				Expect(awsCfg.Credentials).NotTo(BeNil())
				Expect(awsCfg.Credentials.IsExpired()).To(BeTrue())

				v, err := awsCfg.Credentials.Get()
				if err == nil {
					Expect(v.ProviderName).NotTo(Equal("StaticProvider"))
				}
			})
		})

		Context("when role ARN is provided with both key fields", func() {
			It("does not use static credentials directly", func() {
				creds := config.Credentials{
					AccessKey: keyID,
					SecretKey: keyValue,
					RoleArn:   roleArn,
					Region:    region,
				}

				awsCfg := creds.GetAwsConfig()

				Expect(*awsCfg.Region).To(Equal(region))
				Expect(awsCfg.Credentials.IsExpired()).To(BeTrue())

				// STS wraps the static creds, so provider is no longer StaticProvider
				v, err := awsCfg.Credentials.Get()
				if err == nil {
					Expect(v.ProviderName).NotTo(Equal("StaticProvider"))
				}
			})
		})

		Context("when role ARN is provided without key fields", func() {
			It("does not use static credentials", func() {
				creds := config.Credentials{
					RoleArn: roleArn,
					Region:  region,
				}

				awsCfg := creds.GetAwsConfig()

				Expect(*awsCfg.Region).To(Equal(region))
				Expect(awsCfg.Credentials.IsExpired()).To(BeTrue())

				v, err := awsCfg.Credentials.Get()
				if err == nil {
					Expect(v.ProviderName).NotTo(Equal("StaticProvider"))
				}
			})
		})

		Context("when region is set", func() {
			It("always propagates region to the config", func() {
				creds := config.Credentials{
					Region: "eu-west-1",
				}

				awsCfg := creds.GetAwsConfig()

				Expect(*awsCfg.Region).To(Equal("eu-west-1"))
			})
		})
	})
})
