package config

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// UsageGuideLabel is the directory label for the general usage-guide page.
// The matcher appends this entry when a query mentions hours, fees, or
// closing days without naming a specific page.
const UsageGuideLabel = "이용안내"

// SiteMapPath is the site-map page path, used in no-match guidance messages.
const SiteMapPath = "/scipia/introduce/siteMap"

//go:embed data/pages.yml
var defaultPagesYAML []byte

// Entry is a single page directory entry: a human-readable label and the
// site path it points to.
type Entry struct {
	// Label is the unique human-readable key (e.g. "천체투영관 예약").
	Label string `yaml:"label"`

	// Path is the URL path (plus optional query/fragment) relative to the
	// site origin.
	Path string `yaml:"path"`
}

// Section groups directory entries by site area. Sections exist for
// presentation; matching iterates entries across all sections in order.
type Section struct {
	// Name is the section heading (e.g. "상설전시관").
	Name string `yaml:"name"`

	// Pages are the entries in this section, in presentation order.
	Pages []Entry `yaml:"pages"`
}

// directoryFile is the on-disk YAML structure of a page directory.
type directoryFile struct {
	Sections []Section `yaml:"sections"`
}

// Directory is the immutable, order-preserving mapping from page labels to
// site URLs. It is loaded once at startup; labels are guaranteed unique.
//
// Design decision: We keep an ordered entry slice plus a lookup map rather
// than a plain map because match priority depends on directory iteration
// order, which Go maps do not preserve.
type Directory struct {
	baseURL  string
	sections []Section
	entries  []Entry
	byLabel  map[string]string
}

// NewDirectory builds a Directory from the embedded default page data.
func NewDirectory(baseURL string) (*Directory, error) {
	return parseDirectory(defaultPagesYAML, baseURL)
}

// LoadDirectory builds a Directory from a user-supplied YAML file.
// The file uses the same structure as the embedded default.
func LoadDirectory(path, baseURL string) (*Directory, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided directory path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}
	return parseDirectory(data, baseURL)
}

// parseDirectory decodes directory YAML and validates label uniqueness.
func parseDirectory(data []byte, baseURL string) (*Directory, error) {
	var df directoryFile
	if err := yaml.Unmarshal(data, &df); err != nil {
		return nil, fmt.Errorf("failed to parse page directory: %w", err)
	}

	d := &Directory{
		baseURL:  strings.TrimRight(baseURL, "/"),
		sections: df.Sections,
		byLabel:  make(map[string]string),
	}
	for _, sec := range df.Sections {
		for _, e := range sec.Pages {
			if _, ok := d.byLabel[e.Label]; ok {
				return nil, fmt.Errorf("%w: %q", ErrDuplicateLabel, e.Label)
			}
			d.byLabel[e.Label] = e.Path
			d.entries = append(d.entries, e)
		}
	}
	if len(d.entries) == 0 {
		return nil, ErrEmptyDirectory
	}
	return d, nil
}

// BaseURL returns the site origin the directory resolves against.
func (d *Directory) BaseURL() string {
	return d.baseURL
}

// Len returns the number of directory entries.
func (d *Directory) Len() int {
	return len(d.entries)
}

// Entries returns all entries in directory order.
// The returned slice must not be modified.
func (d *Directory) Entries() []Entry {
	return d.entries
}

// Sections returns the directory grouped by site section, in order.
func (d *Directory) Sections() []Section {
	return d.sections
}

// Labels returns all labels in directory order.
func (d *Directory) Labels() []string {
	labels := make([]string, 0, len(d.entries))
	for _, e := range d.entries {
		labels = append(labels, e.Label)
	}
	return labels
}

// URL returns the absolute URL for a label, and whether the label exists.
func (d *Directory) URL(label string) (string, bool) {
	path, ok := d.byLabel[label]
	if !ok {
		return "", false
	}
	return d.Resolve(path), true
}

// Resolve joins a site path with the directory's base URL. Absolute URLs
// pass through unchanged.
func (d *Directory) Resolve(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return d.baseURL + path
}
