package reachability

import (
	"context"
	"fmt"
	"io"
	"time"

	"image-qualifier/resources"

	"github.com/charmbracelet/log"
)

// RetryPolicy bounds the number of probe attempts and the delay between them
type RetryPolicy struct {
	Attempts int
	Interval time.Duration
}

// Sleeper waits for d or until ctx is done
type Sleeper func(ctx context.Context, d time.Duration) error

// ContextSleep is the Sleeper used outside of tests
func ContextSleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Checker confirms that a host accepts an authenticated shell session
type Checker struct {
	shell  resources.RemoteShell
	sleep  Sleeper
	logger *log.Logger
}

func NewChecker(logDest io.Writer, shell resources.RemoteShell, sleep Sleeper) *Checker {
	if sleep == nil {
		sleep = ContextSleep
	}

	return &Checker{
		shell: shell,
		sleep: sleep,
		logger: log.NewWithOptions(logDest, log.Options{
			Prefix:          "ReachabilityChecker",
			ReportTimestamp: true,
			Level:           log.DebugLevel,
		}),
	}
}

// Probe opens a fresh session per attempt and reports whether any attempt
// succeeded. Connectivity failures are retried up to policy.Attempts; any
// other error is returned immediately.
func (c *Checker) Probe(ctx context.Context, username string, address string, credentialPath string, policy RetryPolicy) (bool, error) {
	attempts := policy.Attempts
	if attempts < 1 {
		attempts = 1
	}

	c.logger.Infof("testing SSH connectivity to %s@%s", username, address)

	sessionConfig := resources.SessionConfig{
		Username:       username,
		Address:        address,
		CredentialPath: credentialPath,
	}

	for attempt := 1; ; attempt++ {
		ok, err := c.attempt(ctx, sessionConfig)
		if ok {
			c.logger.Infof("SSH connection successful to %s@%s after %d attempt(s)", username, address, attempt)
			return true, nil
		}
		if !resources.IsRetryable(err) {
			return false, fmt.Errorf("probing %s: %w", address, err)
		}

		c.logger.Debugf("SSH connection attempt %d/%d failed with %q", attempt, attempts, err)
		if attempt >= attempts {
			return false, nil
		}

		if err := c.sleep(ctx, policy.Interval); err != nil {
			return false, fmt.Errorf("waiting between SSH attempts to %s: %w", address, err)
		}
	}
}

func (c *Checker) attempt(ctx context.Context, sessionConfig resources.SessionConfig) (bool, error) {
	session, err := c.shell.Open(ctx, sessionConfig)
	if err != nil {
		return false, err
	}

	if closeErr := session.Close(); closeErr != nil {
		c.logger.Debugf("closing SSH session to %s: %s", sessionConfig.Address, closeErr)
	}

	return true, nil
}
