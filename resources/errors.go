package resources

import (
	"errors"
	"fmt"
)

// ErrNotFound is wrapped by drivers when a container, image or instance does not exist
var ErrNotFound = errors.New("resource not found")

// ImageSourceError is returned when the source image URL cannot be fetched.
// StatusCode is -1 when no response was received.
type ImageSourceError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *ImageSourceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("GET request to image failed (%s). The server response code was %d: %s", e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("GET request to image failed (%s). The server response code was %d", e.URL, e.StatusCode)
}

func (e *ImageSourceError) Unwrap() error {
	return e.Err
}

// ConnectivityFailure is a retryable failure to open a remote shell session
type ConnectivityFailure struct {
	Address string
	Err     error
}

func (e *ConnectivityFailure) Error() string {
	return fmt.Sprintf("connecting to %s: %s", e.Address, e.Err)
}

func (e *ConnectivityFailure) Unwrap() error {
	return e.Err
}

// SSHConnectionError is returned when every reachability attempt against an instance failed
type SSHConnectionError struct {
	Instance string
}

func (e *SSHConnectionError) Error() string {
	return fmt.Sprintf("Cannot SSH to test instance %s. Perhaps the image is improperly configured for the provider.", e.Instance)
}

// ServiceError is a provider-side failure of Op
type ServiceError struct {
	Op  string
	Err error
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Err)
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

// IsRetryable reports whether err is a connection-level failure worth another attempt
func IsRetryable(err error) bool {
	var connErr *ConnectivityFailure
	return errors.As(err, &connErr)
}
