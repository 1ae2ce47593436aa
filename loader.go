package datefmt

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// BundleLoader assembles a BundleSet from the generated defaults, an
// optional bundle file, and per-locale override files.
type BundleLoader struct {
	defaultPath string
	overrides   map[string]string
}

// NewBundleLoader creates a loader. defaultPath may be empty, in which case
// only the generated bundles and any overrides apply.
func NewBundleLoader(defaultPath string) *BundleLoader {
	return &BundleLoader{
		defaultPath: defaultPath,
		overrides:   make(map[string]string),
	}
}

// AddOverride registers a single-locale bundle file merged over the data for
// that locale.
func (l *BundleLoader) AddOverride(locale, path string) {
	if locale == "" || path == "" {
		return
	}
	l.overrides[canonicalTag(locale)] = path
}

// Load builds the immutable bundle snapshot.
func (l *BundleLoader) Load() (*BundleSet, error) {
	bundles := make(map[string]*Bundle)
	for _, bundle := range defaultBundles() {
		bundles[canonicalTag(bundle.Locale)] = bundle.clone()
	}

	if l.defaultPath != "" {
		loaded, err := loadBundleFile(l.defaultPath)
		if err != nil {
			return nil, err
		}
		for locale, bundle := range loaded {
			tag := canonicalTag(locale)
			if bundle.Locale == "" {
				bundle.Locale = tag
			}
			mergeBundle(bundles, tag, bundle)
		}
	}

	for locale, path := range l.overrides {
		bundle, err := loadSingleBundle(path)
		if err != nil {
			return nil, err
		}
		bundle.Locale = locale
		mergeBundle(bundles, locale, bundle)
	}

	flattened := make([]*Bundle, 0, len(bundles))
	for _, bundle := range bundles {
		flattened = append(flattened, bundle)
	}
	return NewBundleSet(flattened...), nil
}

func loadBundleFile(path string) (map[string]*Bundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("datefmt: read %s: %w", path, err)
	}

	out := make(map[string]*Bundle)
	if err := decodeByExtension(path, data, &out); err != nil {
		return nil, fmt.Errorf("datefmt: decode %s: %w", path, err)
	}
	return out, nil
}

func loadSingleBundle(path string) (*Bundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("datefmt: read %s: %w", path, err)
	}

	var bundle Bundle
	if err := decodeByExtension(path, data, &bundle); err != nil {
		return nil, fmt.Errorf("datefmt: decode %s: %w", path, err)
	}
	return &bundle, nil
}

func decodeByExtension(path string, data []byte, target any) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, target)
	case ".json":
		return json.Unmarshal(data, target)
	default:
		return fmt.Errorf("unsupported bundle file extension %q", filepath.Ext(path))
	}
}

// mergeBundle overlays src onto the existing bundle for tag, field by field:
// empty src fields keep the existing data, populated ones replace it.
func mergeBundle(bundles map[string]*Bundle, tag string, src *Bundle) {
	existing, ok := bundles[tag]
	if !ok {
		clone := src.clone()
		clone.Locale = tag
		bundles[tag] = clone
		return
	}

	if len(src.MonthsWide) > 0 {
		existing.MonthsWide = append([]string(nil), src.MonthsWide...)
	}
	if len(src.MonthsAbbrev) > 0 {
		existing.MonthsAbbrev = append([]string(nil), src.MonthsAbbrev...)
	}
	if len(src.DaysWide) > 0 {
		existing.DaysWide = append([]string(nil), src.DaysWide...)
	}
	if len(src.DaysAbbrev) > 0 {
		existing.DaysAbbrev = append([]string(nil), src.DaysAbbrev...)
	}
	if len(src.Eras) > 0 {
		existing.Eras = append([]string(nil), src.Eras...)
	}
	if src.Periods.AM != "" {
		existing.Periods.AM = src.Periods.AM
	}
	if src.Periods.PM != "" {
		existing.Periods.PM = src.Periods.PM
	}
	if src.PreferredHour != "" {
		existing.PreferredHour = src.PreferredHour
	}

	mergeStylePatterns(&existing.DateFormats, src.DateFormats)
	mergeStylePatterns(&existing.TimeFormats, src.TimeFormats)
	mergeStylePatterns(&existing.DateTimeFormats, src.DateTimeFormats)

	if len(src.AvailableFormats) > 0 {
		if existing.AvailableFormats == nil {
			existing.AvailableFormats = make(map[string]string, len(src.AvailableFormats))
		}
		for skeleton, pattern := range src.AvailableFormats {
			existing.AvailableFormats[skeleton] = pattern
		}
	}
}

func mergeStylePatterns(dst *StylePatterns, src StylePatterns) {
	if src.Short != "" {
		dst.Short = src.Short
	}
	if src.Medium != "" {
		dst.Medium = src.Medium
	}
	if src.Long != "" {
		dst.Long = src.Long
	}
	if src.Full != "" {
		dst.Full = src.Full
	}
}
