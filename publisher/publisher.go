package publisher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"image-qualifier/config"
	"image-qualifier/distribution"
	"image-qualifier/driverset"
	"image-qualifier/manifest"
	"image-qualifier/metrics"
	"image-qualifier/qualifier"
	"image-qualifier/reachability"
	"image-qualifier/reaper"
	"image-qualifier/resources"
	"image-qualifier/stager"

	"github.com/charmbracelet/log"
)

type Config struct {
	config.Region
	config.ImageConfiguration
	config.Qualification
}

// ImagePublisher stages, qualifies and distributes one image in one region.
// Whatever happens after staging, every resource the qualification created is
// reaped before Publish returns.
type ImagePublisher struct {
	config   Config
	recorder *metrics.Recorder
	sleep    reachability.Sleeper
	logDest  io.Writer
	logger   *log.Logger
}

func NewImagePublisher(logDest io.Writer, c Config, recorder *metrics.Recorder) *ImagePublisher {
	return &ImagePublisher{
		config:   c,
		recorder: recorder,
		logDest:  logDest,
		logger: log.NewWithOptions(logDest, log.Options{
			Prefix:          "ImagePublisher",
			ReportTimestamp: true,
		}),
	}
}

// WithSleeper replaces the wait between reachability probes
func (p *ImagePublisher) WithSleeper(sleep reachability.Sleeper) *ImagePublisher {
	p.sleep = sleep
	return p
}

func (p *ImagePublisher) Publish(ctx context.Context, ds driverset.RegionDriverSet, sourceURL string) (manifest.ImageReport, error) {
	publishStartTime := time.Now()
	defer func(startTime time.Time) {
		p.logger.Infof("completed Publish() in %f minutes", time.Since(startTime).Minutes())
	}(publishStartTime)

	region := ds.Region()
	report := manifest.ImageReport{
		Region:     region,
		SourceURL:  sourceURL,
		Visibility: config.PrivateVisibility,
	}

	stageStartTime := time.Now()
	objectStager := stager.New(p.logDest, ds.StorageDriver(), nil, p.config.ChunkSize)
	object, err := objectStager.Stage(ctx, sourceURL, p.config.BucketName)
	if err != nil {
		p.recorder.RecordQualification(region, metrics.ResultStagingFailed, time.Since(stageStartTime))
		report.Error = err.Error()
		return report, fmt.Errorf("staging %s: %w", sourceURL, err)
	}
	p.recorder.RecordStage(region, time.Since(stageStartTime))

	report.Container = object.Container
	report.Object = object.Name
	report.DiskFormat = object.DiskFormat

	checker := reachability.NewChecker(p.logDest, ds.RemoteShell(), p.sleep)
	imageQualifier := qualifier.New(p.logDest, ds.ComputeDriver(), checker, qualifier.Policy{
		StorageURL:     p.config.StorageURL,
		PollInterval:   p.config.PollIntervalDuration(),
		RunningTimeout: p.config.RunningTimeoutDuration(),
		Username:       p.config.LoginUser(),
		CredentialPath: p.config.SSHKeyPath,
		Probe: reachability.RetryPolicy{
			Attempts: p.config.ProbeAttempts,
			Interval: p.config.ProbeIntervalDuration(),
		},
	})

	resourceReaper := reaper.New(p.logDest, ds.ComputeDriver()).
		WithCleanupTimeout(p.config.CleanupTimeoutDuration()).
		WithObserver(func(kind string, outcome string) {
			p.recorder.RecordReaped(region, kind, outcome)
		})
	defer resourceReaper.Reap(ctx, imageQualifier.Resources())

	qualifyStartTime := time.Now()
	result, err := imageQualifier.Qualify(ctx, object)
	p.recorder.RecordQualification(region, qualificationResult(err), time.Since(qualifyStartTime))
	report.ImageName = result.Image.Name
	if err != nil {
		report.Error = err.Error()
		return report, fmt.Errorf("qualifying %s: %w", object.Name, err)
	}
	report.Qualified = true

	err = p.distribute(ctx, ds, result.Image, &report)
	if err != nil {
		report.Error = err.Error()
		return report, err
	}

	return report, nil
}

func (p *ImagePublisher) distribute(ctx context.Context, ds driverset.RegionDriverSet, image resources.CandidateImage, report *manifest.ImageReport) error {
	controller := distribution.NewController(p.logDest, ds.StorageDriver())

	if len(p.config.ShareWith) > 0 {
		err := controller.Share(ctx, image, p.config.ShareWith)
		p.recorder.RecordGrant(ds.Region(), metrics.OperationShare, err)
		if err != nil {
			return fmt.Errorf("sharing %s: %w", image.Object.Name, err)
		}
		report.SharedWith = p.config.ShareWith
	}

	if p.config.Visibility != config.PublicVisibility {
		return nil
	}

	err := controller.Publish(ctx, image)
	p.recorder.RecordGrant(ds.Region(), metrics.OperationPublish, err)
	if err != nil {
		return fmt.Errorf("publishing %s: %w", image.Object.Name, err)
	}
	report.Visibility = config.PublicVisibility

	return nil
}

func qualificationResult(err error) string {
	var sshErr *resources.SSHConnectionError
	switch {
	case err == nil:
		return metrics.ResultQualified
	case errors.As(err, &sshErr):
		return metrics.ResultUnreachable
	default:
		return metrics.ResultFailed
	}
}
