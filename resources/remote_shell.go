package resources

import "context"

// RemoteShell opens authenticated shell sessions. Implementations accept any
// host key on first contact and report connection-level failures as
// *ConnectivityFailure.
//
//counterfeiter:generate . RemoteShell
type RemoteShell interface {
	Open(ctx context.Context, sessionConfig SessionConfig) (Session, error)
}

//counterfeiter:generate . Session
type Session interface {
	Close() error
}

type SessionConfig struct {
	Username       string
	Address        string
	CredentialPath string
}
