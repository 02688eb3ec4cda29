package driver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"time"

	"image-qualifier/resources"

	"github.com/charmbracelet/log"
	"golang.org/x/crypto/ssh"
)

const (
	defaultSSHPort        = "22"
	defaultSSHDialTimeout = 30 * time.Second
)

var _ resources.RemoteShell = &SSHRemoteShell{}

// SSHRemoteShell opens key authenticated SSH sessions. Host keys are accepted
// on first contact; test instances are fresh and have no known key.
type SSHRemoteShell struct {
	dialTimeout time.Duration
	logger      *log.Logger
}

func NewSSHRemoteShell(logDest io.Writer, dialTimeout time.Duration) *SSHRemoteShell {
	if dialTimeout <= 0 {
		dialTimeout = defaultSSHDialTimeout
	}

	return &SSHRemoteShell{
		dialTimeout: dialTimeout,
		logger: log.NewWithOptions(logDest, log.Options{
			Prefix:          "SSHRemoteShell",
			ReportTimestamp: true,
		}),
	}
}

// Open dials sessionConfig.Address and opens a session. Failing to read or
// parse the private key is returned as is; failures to connect, handshake,
// authenticate or open the session are a *resources.ConnectivityFailure.
func (s *SSHRemoteShell) Open(ctx context.Context, sessionConfig resources.SessionConfig) (resources.Session, error) {
	signer, err := loadSigner(sessionConfig.CredentialPath)
	if err != nil {
		return nil, err
	}

	address := sessionConfig.Address
	if _, _, splitErr := net.SplitHostPort(address); splitErr != nil {
		address = net.JoinHostPort(address, defaultSSHPort)
	}

	clientConfig := &ssh.ClientConfig{
		User:            sessionConfig.Username,
		Auth:            []ssh.AuthMethod{ssh.PublicKeys(signer)},
		HostKeyCallback: ssh.InsecureIgnoreHostKey(), //nolint:gosec
		Timeout:         s.dialTimeout,
	}

	dialer := net.Dialer{Timeout: s.dialTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", address)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("dialing %s: %w", address, ctx.Err())
		}
		return nil, &resources.ConnectivityFailure{Address: address, Err: err}
	}

	// the handshake itself does not watch ctx
	stop := context.AfterFunc(ctx, func() {
		conn.Close() //nolint:errcheck
	})
	defer stop()

	err = conn.SetDeadline(time.Now().Add(s.dialTimeout))
	if err != nil {
		conn.Close() //nolint:errcheck
		return nil, &resources.ConnectivityFailure{Address: address, Err: err}
	}

	clientConn, chans, reqs, err := ssh.NewClientConn(conn, address, clientConfig)
	if err != nil {
		conn.Close() //nolint:errcheck
		if ctx.Err() != nil {
			return nil, fmt.Errorf("handshaking with %s: %w", address, ctx.Err())
		}
		return nil, &resources.ConnectivityFailure{Address: address, Err: err}
	}

	client := ssh.NewClient(clientConn, chans, reqs)

	session, err := client.NewSession()
	if err != nil {
		client.Close() //nolint:errcheck
		if ctx.Err() != nil {
			return nil, fmt.Errorf("opening session on %s: %w", address, ctx.Err())
		}
		return nil, &resources.ConnectivityFailure{Address: address, Err: err}
	}

	err = conn.SetDeadline(time.Time{})
	if err != nil {
		session.Close() //nolint:errcheck
		client.Close()  //nolint:errcheck
		return nil, &resources.ConnectivityFailure{Address: address, Err: err}
	}

	s.logger.Debugf("opened session to %s as %s", address, sessionConfig.Username)

	return &sshSession{client: client, session: session}, nil
}

func loadSigner(credentialPath string) (ssh.Signer, error) {
	key, err := os.ReadFile(credentialPath)
	if err != nil {
		return nil, fmt.Errorf("reading private key %s: %w", credentialPath, err)
	}

	signer, err := ssh.ParsePrivateKey(key)
	if err != nil {
		return nil, fmt.Errorf("parsing private key %s: %w", credentialPath, err)
	}

	return signer, nil
}

type sshSession struct {
	client  *ssh.Client
	session *ssh.Session
}

func (s *sshSession) Close() error {
	sessionErr := s.session.Close()
	if errors.Is(sessionErr, io.EOF) {
		sessionErr = nil
	}

	return errors.Join(sessionErr, s.client.Close())
}
