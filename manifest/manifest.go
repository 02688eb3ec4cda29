package manifest

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"sort"

	"gopkg.in/yaml.v2"
)

// ImageSource is a disk image to qualify
type ImageSource struct {
	URL string `yaml:"url"`
}

// ImageReport is the outcome of qualifying one image in one region
type ImageReport struct {
	Region     string   `yaml:"region"`
	SourceURL  string   `yaml:"source_url"`
	Container  string   `yaml:"container,omitempty"`
	Object     string   `yaml:"object,omitempty"`
	DiskFormat string   `yaml:"disk_format,omitempty"`
	ImageName  string   `yaml:"image_name,omitempty"`
	Qualified  bool     `yaml:"qualified"`
	Visibility string   `yaml:"visibility,omitempty"`
	SharedWith []string `yaml:"shared_with,omitempty"`
	Error      string   `yaml:"error,omitempty"`
}

// Manifest lists the images to qualify and, once written, how each went
type Manifest struct {
	Images         []ImageSource `yaml:"images"`
	ShareWith      []string      `yaml:"share_with,omitempty"`
	Qualifications []ImageReport `yaml:"qualifications,omitempty"`
}

// NewFromReader creates a new manifest from the YAML stored in the reader
func NewFromReader(reader io.Reader) (*Manifest, error) {
	manifestBytes, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	m := &Manifest{}
	err = yaml.Unmarshal(manifestBytes, m)
	if err != nil {
		return nil, fmt.Errorf("unmarshaling YAML to manifest: %w", err)
	}

	err = m.validate()
	if err != nil {
		return nil, err
	}

	return m, nil
}

func (m *Manifest) validate() error {
	if len(m.Images) == 0 {
		return errors.New("images must be specified in the manifest")
	}

	seen := map[string]bool{}
	for _, image := range m.Images {
		parsed, err := url.Parse(image.URL)
		if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
			return fmt.Errorf("image url %q must be an absolute http(s) URL", image.URL)
		}

		if seen[image.URL] {
			return fmt.Errorf("image url %q listed more than once", image.URL)
		}
		seen[image.URL] = true
	}

	return nil
}

// Write writes the manifest with its qualifications, ordered by source URL
// and region, as YAML
func (m *Manifest) Write(writer io.Writer) error {
	if len(m.Qualifications) == 0 {
		return errors.New("no qualifications have been added to the manifest")
	}

	out := *m
	out.Qualifications = append([]ImageReport(nil), m.Qualifications...)
	sort.SliceStable(out.Qualifications, func(i, j int) bool {
		if out.Qualifications[i].SourceURL != out.Qualifications[j].SourceURL {
			return out.Qualifications[i].SourceURL < out.Qualifications[j].SourceURL
		}
		return out.Qualifications[i].Region < out.Qualifications[j].Region
	})

	output, err := yaml.Marshal(out)
	if err != nil {
		return fmt.Errorf("marshaling manifest to YAML: %w", err)
	}

	_, err = writer.Write(output)
	if err != nil {
		return fmt.Errorf("writing YAML: %w", err)
	}

	return nil
}
