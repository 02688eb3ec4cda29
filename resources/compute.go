package resources

import (
	"context"
	"time"
)

// ComputeDriver abstracts the compute calls required to register and boot a candidate image
//
//counterfeiter:generate . ComputeDriver
type ComputeDriver interface {
	CreateImage(ctx context.Context, driverConfig ImageDriverConfig) (CandidateImage, error)
	ListLocations(ctx context.Context) ([]Location, error)
	ListSizes(ctx context.Context, location Location) ([]Size, error)
	CreateNode(ctx context.Context, driverConfig NodeDriverConfig) (TestInstance, error)
	WaitUntilRunning(ctx context.Context, nodes []TestInstance, pollInterval time.Duration, timeout time.Duration) ([]TestInstance, error)
	DestroyNode(ctx context.Context, node TestInstance, destroyBootDisk bool) (bool, error)
	DeleteImage(ctx context.Context, image CandidateImage) (bool, error)
}

// CandidateImage is a registered bootable image backed by a StagedObject.
// SnapshotID is set by providers that back images with a separate snapshot.
type CandidateImage struct {
	Name       string
	ID         string
	SnapshotID string
	Object     StagedObject
}

// TestInstance is a transient instance launched from a CandidateImage
type TestInstance struct {
	Name            string
	ID              string
	Size            Size
	Location        Location
	PublicAddresses []string
}

type Location struct {
	Name string
}

// Size is an instance type offered in a location, Price is per hour
type Size struct {
	Name  string
	Price float64
}

type ImageDriverConfig struct {
	Name              string
	SourceURL         string
	Object            StagedObject
	WaitForCompletion bool
}

type NodeDriverConfig struct {
	Name     string
	Size     Size
	Image    CandidateImage
	Location Location
}

// QualificationResult is the outcome of a single qualification run
type QualificationResult struct {
	Qualified bool
	Image     CandidateImage
	Instance  TestInstance
}
