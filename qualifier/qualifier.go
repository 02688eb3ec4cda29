package qualifier

// You only need **one** of these per package!
//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"image-qualifier/collection"
	"image-qualifier/reachability"
	"image-qualifier/resources"

	"github.com/charmbracelet/log"
)

// ErrAlreadyQualified is returned when Qualify is called twice on the same Qualifier
var ErrAlreadyQualified = errors.New("qualifier has already run")

// Prober confirms remote shell reachability
//
//counterfeiter:generate . Prober
type Prober interface {
	Probe(ctx context.Context, username string, address string, credentialPath string, policy reachability.RetryPolicy) (bool, error)
}

// Policy holds the timing and identity values used during a qualification run
type Policy struct {
	// StorageURL is the base URL objects are reachable under, as <StorageURL>/<container>/<object>
	StorageURL string

	PollInterval   time.Duration
	RunningTimeout time.Duration

	Username       string
	CredentialPath string
	Probe          reachability.RetryPolicy
}

// Qualifier registers a staged object as an image, boots it and probes it.
// Every image and instance it creates is recorded in Resources before the
// next step starts. A Qualifier performs a single run.
type Qualifier struct {
	compute   resources.ComputeDriver
	prober    Prober
	policy    Policy
	resources *collection.Resources
	logger    *log.Logger

	mu    sync.Mutex
	state State
	used  bool
}

func New(logDest io.Writer, compute resources.ComputeDriver, prober Prober, policy Policy) *Qualifier {
	return &Qualifier{
		compute:   compute,
		prober:    prober,
		policy:    policy,
		resources: &collection.Resources{},
		logger: log.NewWithOptions(logDest, log.Options{
			Prefix:          "ImageQualifier",
			ReportTimestamp: true,
		}),
	}
}

// Resources returns the transient resources created so far, for reaping
func (q *Qualifier) Resources() *collection.Resources {
	return q.resources
}

func (q *Qualifier) State() State {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.state
}

func (q *Qualifier) transition(s State) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.logger.Debugf("%s -> %s", q.state, s)
	q.state = s
}

// Qualify runs Registering, Launching, WaitingRunning and Probing in order.
// On any error the qualifier ends in Failed; the caller is responsible for
// reaping Resources whatever the outcome.
func (q *Qualifier) Qualify(ctx context.Context, object resources.StagedObject) (resources.QualificationResult, error) {
	q.mu.Lock()
	if q.used {
		q.mu.Unlock()
		return resources.QualificationResult{}, ErrAlreadyQualified
	}
	q.used = true
	q.mu.Unlock()

	qualifyStartTime := time.Now()
	defer func(startTime time.Time) {
		q.logger.Infof("completed Qualify() in %f minutes", time.Since(startTime).Minutes())
	}(qualifyStartTime)

	result, err := q.qualify(ctx, object)
	if err != nil {
		q.transition(Failed)
		return result, err
	}

	q.transition(Qualified)
	result.Qualified = true
	q.logger.Infof("image %s passed a basic sanity test", object.Name)

	return result, nil
}

func (q *Qualifier) qualify(ctx context.Context, object resources.StagedObject) (resources.QualificationResult, error) {
	result := resources.QualificationResult{}

	q.transition(Registering)
	image, err := q.register(ctx, object)
	if err != nil {
		return result, err
	}
	result.Image = image

	q.transition(Launching)
	node, err := q.launch(ctx, image)
	if err != nil {
		return result, err
	}
	result.Instance = node

	q.transition(WaitingRunning)
	node, err = q.waitRunning(ctx, node)
	if err != nil {
		return result, err
	}
	result.Instance = node

	q.transition(Probing)
	err = q.probe(ctx, node)

	return result, err
}

func (q *Qualifier) register(ctx context.Context, object resources.StagedObject) (resources.CandidateImage, error) {
	imageName := ImageName(object.Name)
	imageURL := fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(q.policy.StorageURL, "/"), object.Container, object.Name)

	q.logger.Infof("creating image %q from image object %q", imageName, imageURL)
	image, err := q.compute.CreateImage(ctx, resources.ImageDriverConfig{
		Name:              imageName,
		SourceURL:         imageURL,
		Object:            object,
		WaitForCompletion: true,
	})
	image.Object = object
	// the provider may hand back an identifier alongside an error, which still needs reaping
	if image.ID != "" {
		q.resources.AddImage(image)
	}
	if err != nil {
		return image, &resources.ServiceError{Op: fmt.Sprintf("creating image %s", imageName), Err: err}
	}

	return image, nil
}

func (q *Qualifier) launch(ctx context.Context, image resources.CandidateImage) (resources.TestInstance, error) {
	locations, err := q.compute.ListLocations(ctx)
	if err != nil {
		return resources.TestInstance{}, &resources.ServiceError{Op: "listing locations", Err: err}
	}
	if len(locations) == 0 {
		return resources.TestInstance{}, &resources.ServiceError{Op: "listing locations", Err: errors.New("no locations available")}
	}
	location := locations[0]

	sizes, err := q.compute.ListSizes(ctx, location)
	if err != nil {
		return resources.TestInstance{}, &resources.ServiceError{Op: fmt.Sprintf("listing sizes in %s", location.Name), Err: err}
	}
	size, ok := CheapestSize(sizes)
	if !ok {
		return resources.TestInstance{}, &resources.ServiceError{Op: fmt.Sprintf("listing sizes in %s", location.Name), Err: errors.New("no sizes offered")}
	}

	q.logger.Infof("launching test instance %s (%s in %s)", image.Name, size.Name, location.Name)
	node, err := q.compute.CreateNode(ctx, resources.NodeDriverConfig{
		Name:     image.Name,
		Size:     size,
		Image:    image,
		Location: location,
	})
	if node.ID != "" {
		q.resources.AddInstance(node)
	}
	if err != nil {
		return node, &resources.ServiceError{Op: fmt.Sprintf("launching test instance %s", image.Name), Err: err}
	}

	return node, nil
}

func (q *Qualifier) waitRunning(ctx context.Context, node resources.TestInstance) (resources.TestInstance, error) {
	q.logger.Infof("waiting until instance %s is running...", node.Name)
	nodes, err := q.compute.WaitUntilRunning(ctx, []resources.TestInstance{node}, q.policy.PollInterval, q.policy.RunningTimeout)
	if err != nil {
		return node, &resources.ServiceError{Op: fmt.Sprintf("waiting for instance %s to be running", node.Name), Err: err}
	}

	for _, running := range nodes {
		if running.ID == node.ID {
			node = running
			q.resources.UpdateInstance(node)
			break
		}
	}
	q.logger.Infof("instance %s is now running", node.Name)

	return node, nil
}

func (q *Qualifier) probe(ctx context.Context, node resources.TestInstance) error {
	if len(node.PublicAddresses) == 0 {
		return &resources.ServiceError{Op: fmt.Sprintf("probing instance %s", node.Name), Err: errors.New("instance has no public address")}
	}

	q.logger.Infof("testing SSH connectivity to the instance...")
	ok, err := q.prober.Probe(ctx, q.policy.Username, node.PublicAddresses[0], q.policy.CredentialPath, q.policy.Probe)
	if err != nil {
		return err
	}
	if !ok {
		return &resources.SSHConnectionError{Instance: node.Name}
	}

	return nil
}

// CheapestSize returns the lowest priced size, ties going to the earliest in sizes
func CheapestSize(sizes []resources.Size) (resources.Size, bool) {
	if len(sizes) == 0 {
		return resources.Size{}, false
	}

	sorted := append([]resources.Size(nil), sizes...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Price < sorted[j].Price
	})

	return sorted[0], true
}
