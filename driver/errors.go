package driver

import (
	"errors"
	"fmt"
	"strings"

	"image-qualifier/resources"

	"github.com/aws/aws-sdk-go/aws/awserr"
)

var notFoundCodes = map[string]bool{
	"NotFound":                  true,
	"NoSuchBucket":              true,
	"NoSuchKey":                 true,
	"InvalidAMIID.Unavailable":  true,
	"InvalidInstanceID.Missing": true,
}

// notFound marks AWS "does not exist" errors with resources.ErrNotFound and
// leaves every other error untouched
func notFound(err error) error {
	var awsErr awserr.Error
	if !errors.As(err, &awsErr) {
		return err
	}

	if notFoundCodes[awsErr.Code()] || strings.HasSuffix(awsErr.Code(), ".NotFound") {
		return fmt.Errorf("%w: %w", resources.ErrNotFound, err)
	}

	return err
}
