package reaper

import (
	"context"
	"errors"
	"io"
	"time"

	"image-qualifier/collection"
	"image-qualifier/resources"

	"github.com/charmbracelet/log"
)

const defaultCleanupTimeout = 15 * time.Minute

// Outcome labels reported to an Observer
const (
	OutcomeDeleted  = "deleted"
	OutcomeGone     = "gone"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

// Observer is told about each destroy/delete request the Reaper issues
type Observer func(kind string, outcome string)

// Reaper destroys every instance and image recorded in a resource set. It
// never returns an error: failures are logged and the remaining resources are
// still processed.
type Reaper struct {
	compute        resources.ComputeDriver
	cleanupTimeout time.Duration
	observe        Observer
	logger         *log.Logger
}

func New(logDest io.Writer, compute resources.ComputeDriver) *Reaper {
	return &Reaper{
		compute:        compute,
		cleanupTimeout: defaultCleanupTimeout,
		observe:        func(string, string) {},
		logger: log.NewWithOptions(logDest, log.Options{
			Prefix:          "ResourceReaper",
			ReportTimestamp: true,
			Level:           log.DebugLevel,
		}),
	}
}

func (r *Reaper) WithCleanupTimeout(timeout time.Duration) *Reaper {
	r.cleanupTimeout = timeout
	return r
}

func (r *Reaper) WithObserver(observe Observer) *Reaper {
	r.observe = observe
	return r
}

// Reap empties set. Cancellation of ctx does not stop cleanup; it runs under
// its own timeout instead.
func (r *Reaper) Reap(ctx context.Context, set *collection.Resources) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.cleanupTimeout)
	defer cancel()

	defer set.Clear()

	for _, node := range set.Instances() {
		r.logger.Infof("deleting test instance: %s", node.Name)
		destroyed, err := r.compute.DestroyNode(ctx, node, true)
		r.report("instance", node.ID, destroyed, err)
	}

	for _, image := range set.Images() {
		r.logger.Infof("deleting test image: %s", image.Name)
		deleted, err := r.compute.DeleteImage(ctx, image)
		r.report("image", image.ID, deleted, err)
	}
}

func (r *Reaper) report(kind string, id string, ok bool, err error) {
	switch {
	case errors.Is(err, resources.ErrNotFound):
		r.logger.Debugf("no test %s %s to delete", kind, id)
		r.observe(kind, OutcomeGone)
	case err != nil:
		r.logger.Warnf("failed to delete test %s %s: %s", kind, id, err)
		r.observe(kind, OutcomeFailed)
	case !ok:
		r.logger.Warnf("failed to delete test %s %s", kind, id)
		r.observe(kind, OutcomeRejected)
	default:
		r.observe(kind, OutcomeDeleted)
	}
}
