package driver_test

import (
	"net/http"

	"image-qualifier/driver"

	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/request"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("UploadRetryer", func() {
	failedRequest := func(code string, status int) *request.Request {
		return &request.Request{
			Error:        awserr.New(code, "fake failure", nil),
			HTTPResponse: &http.Response{StatusCode: status},
		}
	}

	It("uses the configured number of retries", func() {
		Expect(driver.NewUploadRetryer(7).MaxRetries()).To(Equal(7))
	})

	It("falls back to the default number of retries", func() {
		Expect(driver.NewUploadRetryer(0).MaxRetries()).To(Equal(driver.DefaultUploadRetries))
	})

	DescribeTable("decides whether a failed part upload is retried",
		func(code string, status int, retried bool) {
			Expect(driver.NewUploadRetryer(3).ShouldRetry(failedRequest(code, status))).To(Equal(retried))
		},
		Entry("an interrupted body", request.ErrCodeSerialization, http.StatusOK, true),
		Entry("a stalled part body", "RequestTimeout", http.StatusBadRequest, true),
		Entry("a cancelled context", request.CanceledErrorCode, 0, false),
		Entry("a throttled request", "SlowDown", http.StatusServiceUnavailable, true),
		Entry("a denied request", "AccessDenied", http.StatusForbidden, false),
	)
})
