package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"image-qualifier/collection"
	"image-qualifier/config"
	"image-qualifier/driverset"
	"image-qualifier/manifest"
	"image-qualifier/metrics"
	"image-qualifier/publisher"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func main() {
	sharedWriter := &logWriter{
		writer: os.Stderr,
	}

	logger := log.NewWithOptions(sharedWriter, log.Options{
		ReportTimestamp: true,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err := newRootCommand(sharedWriter, logger).ExecuteContext(ctx)
	if err != nil {
		stop()
		logger.Fatal(err)
	}
}

func newRootCommand(sharedWriter io.Writer, logger *log.Logger) *cobra.Command {
	var configPath, manifestPath, metricsPath string

	rootCmd := &cobra.Command{
		Use:          "image-qualifier",
		Short:        "Stage, boot-test and distribute cloud disk images",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), sharedWriter, logger, configPath, manifestPath, metricsPath, cmd.OutOrStdout())
		},
	}

	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to the JSON configuration file")
	rootCmd.Flags().StringVar(&manifestPath, "manifest", "", "Path to the YAML manifest listing the images to qualify")
	rootCmd.Flags().StringVar(&metricsPath, "metrics-file", "", "Write Prometheus metrics to this textfile when done")
	_ = rootCmd.MarkFlagRequired("config")
	_ = rootCmd.MarkFlagRequired("manifest")

	return rootCmd
}

func run(ctx context.Context, sharedWriter io.Writer, logger *log.Logger, configPath, manifestPath, metricsPath string, out io.Writer) error {
	configFile, err := os.Open(configPath)
	if err != nil {
		return fmt.Errorf("opening config file: %w", err)
	}
	defer configFile.Close() //nolint:errcheck

	c, err := config.NewFromReader(configFile)
	if err != nil {
		return fmt.Errorf("parsing config file: %s. Message: %w", configPath, err)
	}

	manifestBytes, err := os.ReadFile(manifestPath)
	if err != nil {
		return fmt.Errorf("opening manifest: %w", err)
	}

	m, err := manifest.NewFromReader(bytes.NewReader(manifestBytes))
	if err != nil {
		return fmt.Errorf("reading manifest: %w", err)
	}

	c.ImageConfiguration.ShareWith = mergeEntities(c.ImageConfiguration.ShareWith, m.ShareWith)

	logger.Infof("qualification run %s: %d images in %d regions", c.ImageConfiguration.RunID, len(m.Images), len(c.Regions))

	recorder := metrics.NewRecorder()
	errCollection := collection.Error{}

	var reportsMu sync.Mutex
	reports := []manifest.ImageReport{}

	var wg sync.WaitGroup

	for i := range c.Regions {
		regionConfig := c.Regions[i]

		ds, err := driverset.NewRegionDriverSet(sharedWriter, c, regionConfig)
		if err != nil {
			errCollection.Add(fmt.Errorf("building drivers for %s: %w", regionConfig.RegionName, err))
			continue
		}

		p := publisher.NewImagePublisher(sharedWriter, publisher.Config{
			Region:             regionConfig,
			ImageConfiguration: c.ImageConfiguration,
			Qualification:      c.Qualification,
		}, recorder)

		for _, image := range m.Images {
			wg.Add(1)
			go func(sourceURL string) {
				defer wg.Done()

				report, err := p.Publish(ctx, ds, sourceURL)
				if err != nil {
					errCollection.Add(fmt.Errorf("qualifying %s in %s: %w", sourceURL, regionConfig.RegionName, err))
				}

				reportsMu.Lock()
				reports = append(reports, report)
				reportsMu.Unlock()
			}(image.URL)
		}
	}

	logger.Info("Waiting for publishers to finish...")
	wg.Wait()

	if metricsPath != "" {
		err = recorder.WriteToTextfile(metricsPath)
		if err != nil {
			errCollection.Add(fmt.Errorf("writing metrics: %w", err))
		}
	}

	if len(reports) > 0 {
		m.Qualifications = reports
		err = m.Write(out)
		if err != nil {
			errCollection.Add(fmt.Errorf("writing manifest: %w", err))
		}
	}

	combinedErr := errCollection.Error()
	if combinedErr != nil {
		return combinedErr
	}

	logger.Info("Qualification finished successfully")
	return nil
}

func mergeEntities(lists ...[]string) []string {
	seen := map[string]bool{}
	merged := []string{}
	for _, list := range lists {
		for _, entity := range list {
			if seen[entity] {
				continue
			}
			seen[entity] = true
			merged = append(merged, entity)
		}
	}
	return merged
}

type logWriter struct {
	sync.Mutex
	writer io.Writer
}

func (l *logWriter) Write(message []byte) (int, error) {
	l.Lock()
	defer l.Unlock()

	return l.writer.Write(message)
}
