package driver

import (
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/client"
	"github.com/aws/aws-sdk-go/aws/request"
)

// DefaultUploadRetries is used when a region does not configure upload_retries
const DefaultUploadRetries = 3

// s3RequestTimeout is returned by S3 when a part body stops arriving, which
// happens when the image source stalls mid-stream
const s3RequestTimeout = "RequestTimeout"

// UploadRetryer retries the part uploads of a staged image. Besides what the
// default retryer covers it retries interrupted bodies and S3 request
// timeouts, but never a request whose context was cancelled.
type UploadRetryer struct {
	client.DefaultRetryer
}

func NewUploadRetryer(maxRetries int) UploadRetryer {
	if maxRetries <= 0 {
		maxRetries = DefaultUploadRetries
	}
	return UploadRetryer{client.DefaultRetryer{NumMaxRetries: maxRetries}}
}

func (r UploadRetryer) ShouldRetry(req *request.Request) bool {
	if aerr, ok := req.Error.(awserr.Error); ok {
		switch aerr.Code() {
		case request.CanceledErrorCode:
			return false
		case request.ErrCodeSerialization, s3RequestTimeout:
			return true
		}
	}
	return r.DefaultRetryer.ShouldRetry(req)
}
