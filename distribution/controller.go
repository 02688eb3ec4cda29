package distribution

import (
	"context"
	"fmt"
	"io"

	"image-qualifier/resources"

	"github.com/charmbracelet/log"
)

// Controller adjusts who may read the storage object backing a candidate image
type Controller struct {
	storage resources.StorageDriver
	logger  *log.Logger
}

func NewController(logDest io.Writer, storage resources.StorageDriver) *Controller {
	return &Controller{
		storage: storage,
		logger: log.NewWithOptions(logDest, log.Options{
			Prefix:          "DistributionController",
			ReportTimestamp: true,
		}),
	}
}

// Share grants read access to each entity in order. It stops at the first
// grant that fails; entities before it keep their access.
func (c *Controller) Share(ctx context.Context, image resources.CandidateImage, entities []string) error {
	for _, entity := range entities {
		c.logger.Infof("sharing image %s with %s", image.Object.Name, entity)
		if err := c.grantReader(ctx, image, entity); err != nil {
			return err
		}
	}

	return nil
}

// Publish grants read access to everyone
func (c *Controller) Publish(ctx context.Context, image resources.CandidateImage) error {
	c.logger.Infof("publishing image %s publicly", image.Object.Name)
	return c.grantReader(ctx, image, resources.AllUsersEntity)
}

func (c *Controller) grantReader(ctx context.Context, image resources.CandidateImage, entity string) error {
	err := c.storage.SetPermission(ctx, resources.PermissionDriverConfig{
		Container:  image.Object.Container,
		ObjectName: image.Object.Name,
		Entity:     entity,
		Role:       resources.ReaderRole,
	})
	if err != nil {
		return &resources.ServiceError{Op: fmt.Sprintf("granting %s read access to %s", entity, image.Object.Name), Err: err}
	}

	return nil
}
