package integration_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"image-qualifier/manifest"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/ec2"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gexec"
)

var _ = Describe("Main", func() {
	var (
		configPath   string
		manifestPath string
		metricsPath  string
		runID        string
	)

	BeforeEach(func() {
		runID = fmt.Sprintf("qualify-integration-%d", time.Now().Unix())
		runConfig := cfg
		runConfig.ImageConfiguration.RunID = runID

		integrationConfig, err := json.Marshal(runConfig)
		Expect(err).ToNot(HaveOccurred())

		dir := GinkgoT().TempDir()

		configPath = filepath.Join(dir, "integration-config.json")
		Expect(os.WriteFile(configPath, integrationConfig, 0o600)).To(Succeed())

		manifestPath = filepath.Join(dir, "images.yml")
		Expect(os.WriteFile(manifestPath, []byte(fmt.Sprintf("images:\n- url: %s\n", imageURL)), 0o600)).To(Succeed())

		metricsPath = filepath.Join(dir, "image_qualifier.prom")
	})

	It("qualifies the image, reports it on stdout and leaves nothing running", func() {
		pathToBinary, err := gexec.Build("image-qualifier")
		defer gexec.CleanupBuildArtifacts()
		Expect(err).ToNot(HaveOccurred())

		command := exec.Command(pathToBinary,
			fmt.Sprintf("-c=%s", configPath),
			fmt.Sprintf("--manifest=%s", manifestPath),
			fmt.Sprintf("--metrics-file=%s", metricsPath),
		)

		gexecSession, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
		Expect(err).ToNot(HaveOccurred())

		gexecSession.Wait(120 * time.Minute)
		Expect(gexecSession.ExitCode()).To(BeZero())

		stdout := bytes.NewReader(gexecSession.Out.Contents())
		m, err := manifest.NewFromReader(stdout)
		Expect(err).ToNot(HaveOccurred())

		Expect(m.Qualifications).To(HaveLen(1))
		Expect(m.Qualifications[0].Qualified).To(BeTrue())
		Expect(m.Qualifications[0].Region).To(Equal(cfg.Regions[0].RegionName))

		metrics, err := os.ReadFile(metricsPath)
		Expect(err).ToNot(HaveOccurred())
		Expect(string(metrics)).To(ContainSubstring(`result="qualified"} 1`))

		region := cfg.Regions[0]
		awsSession, err := session.NewSession(aws.NewConfig().
			WithCredentials(credentials.NewStaticCredentials(region.Credentials.AccessKey, region.Credentials.SecretKey, "")).
			WithRegion(region.RegionName))
		Expect(err).ToNot(HaveOccurred())
		ec2Client := ec2.New(awsSession)

		runFilter := []*ec2.Filter{
			{Name: aws.String("tag:qualification-run"), Values: []*string{aws.String(runID)}},
		}

		images, err := ec2Client.DescribeImages(&ec2.DescribeImagesInput{
			Owners:  []*string{aws.String("self")},
			Filters: runFilter,
		})
		Expect(err).ToNot(HaveOccurred())
		Expect(images.Images).To(BeEmpty())

		instances, err := ec2Client.DescribeInstances(&ec2.DescribeInstancesInput{
			Filters: append(runFilter, &ec2.Filter{
				Name:   aws.String("instance-state-name"),
				Values: aws.StringSlice([]string{"pending", "running", "stopping", "stopped"}),
			}),
		})
		Expect(err).ToNot(HaveOccurred())
		for _, reservation := range instances.Reservations {
			Expect(reservation.Instances).To(BeEmpty())
		}
	})
})
