package metrics_test

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"image-qualifier/metrics"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Recorder", func() {
	var (
		recorder *metrics.Recorder
		path     string
	)

	BeforeEach(func() {
		recorder = metrics.NewRecorder()
		path = filepath.Join(GinkgoT().TempDir(), "image_qualifier.prom")
	})

	textfile := func() string {
		Expect(recorder.WriteToTextfile(path)).To(Succeed())
		contents, err := os.ReadFile(path)
		Expect(err).ToNot(HaveOccurred())
		return string(contents)
	}

	It("counts qualifications by region and result", func() {
		recorder.RecordQualification("us-east-2", metrics.ResultQualified, 5*time.Minute)
		recorder.RecordQualification("us-east-2", metrics.ResultQualified, 6*time.Minute)
		recorder.RecordQualification("us-east-2", metrics.ResultUnreachable, time.Hour)

		contents := textfile()
		Expect(contents).To(ContainSubstring(`image_qualifier_workflow_qualifications_total{region="us-east-2",result="qualified"} 2`))
		Expect(contents).To(ContainSubstring(`image_qualifier_workflow_qualifications_total{region="us-east-2",result="unreachable"} 1`))
		Expect(contents).To(ContainSubstring(`image_qualifier_workflow_qualify_duration_seconds_count{region="us-east-2"} 3`))
	})

	It("does not observe a qualify duration when staging failed", func() {
		recorder.RecordQualification("eu-west-1", metrics.ResultStagingFailed, time.Second)

		contents := textfile()
		Expect(contents).To(ContainSubstring(`result="staging_failed"} 1`))
		Expect(contents).ToNot(ContainSubstring(`image_qualifier_workflow_qualify_duration_seconds_count{region="eu-west-1"}`))
	})

	It("records stage durations, reaped resources and grants", func() {
		recorder.RecordStage("us-east-2", 90*time.Second)
		recorder.RecordReaped("us-east-2", "instance", "deleted")
		recorder.RecordReaped("us-east-2", "image", "gone")
		recorder.RecordGrant("us-east-2", metrics.OperationPublish, nil)
		recorder.RecordGrant("us-east-2", metrics.OperationShare, errors.New("access denied"))

		contents := textfile()
		Expect(contents).To(ContainSubstring(`image_qualifier_storage_stage_duration_seconds_count{region="us-east-2"} 1`))
		Expect(contents).To(ContainSubstring(`image_qualifier_compute_reaped_resources_total{kind="instance",outcome="deleted",region="us-east-2"} 1`))
		Expect(contents).To(ContainSubstring(`image_qualifier_compute_reaped_resources_total{kind="image",outcome="gone",region="us-east-2"} 1`))
		Expect(contents).To(ContainSubstring(`image_qualifier_storage_grants_total{operation="publish",region="us-east-2",result="success"} 1`))
		Expect(contents).To(ContainSubstring(`image_qualifier_storage_grants_total{operation="share",region="us-east-2",result="error"} 1`))
	})
})
