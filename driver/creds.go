package driver

import (
	"fmt"

	"image-qualifier/config"

	"github.com/aws/aws-sdk-go/aws/session"
)

// NewRegionSession builds the shared AWS session every driver in a region is
// created from
func NewRegionSession(creds config.Credentials) (*session.Session, error) {
	awsRegionSession, err := session.NewSession(creds.GetAwsConfig())
	if err != nil {
		return nil, fmt.Errorf("creating AWS session for %s: %w", creds.Region, err)
	}

	return awsRegionSession, nil
}
