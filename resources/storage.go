package resources

// You only need **one** of these per package!
//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

import (
	"context"
	"io"
)

// Permission entities and roles understood by every StorageDriver
const (
	AllUsersEntity              = "allUsers"
	AllAuthenticatedUsersEntity = "allAuthenticatedUsers"
	ReaderRole                  = "READER"
	WriterRole                  = "WRITER"
	OwnerRole                   = "OWNER"
)

// StorageDriver abstracts the object storage calls required to stage an image
//
//counterfeiter:generate . StorageDriver
type StorageDriver interface {
	GetContainer(ctx context.Context, name string) (Container, error)
	CreateContainer(ctx context.Context, name string) (Container, error)
	UploadStream(ctx context.Context, driverConfig UploadDriverConfig) (StagedObject, error)
	SetPermission(ctx context.Context, driverConfig PermissionDriverConfig) error
}

// Container is a named bucket of objects
type Container struct {
	Name string
}

// StagedObject identifies a blob copied into a container from SourceURL.
// DiskFormat describes the stored bytes, which are the unpacked disk when the
// source was an archive.
type StagedObject struct {
	Container  string
	Name       string
	SourceURL  string
	DiskFormat string
}

// UploadDriverConfig describes a streamed upload. Body is consumed in ChunkSize pieces.
type UploadDriverConfig struct {
	Container  Container
	ObjectName string
	SourceURL  string
	Body       io.Reader
	ChunkSize  int64
}

// PermissionDriverConfig grants Role on an object to Entity
type PermissionDriverConfig struct {
	Container  string
	ObjectName string
	Entity     string
	Role       string
}
