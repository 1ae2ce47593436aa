package datefmt

type cacheConfig struct {
	bundles    *BundleSet
	bundlePath string
	overrides  map[string]string
	hooks      []Hook
}

// Option mutates the cache configuration during construction.
type Option func(*cacheConfig) error

// WithBundles replaces the embedded locale bundles with a caller-provided
// set.
func WithBundles(set *BundleSet) Option {
	return func(cfg *cacheConfig) error {
		cfg.bundles = set
		return nil
	}
}

// WithBundleFile merges bundle data from a YAML or JSON file over the
// embedded defaults.
func WithBundleFile(path string) Option {
	return func(cfg *cacheConfig) error {
		cfg.bundlePath = path
		return nil
	}
}

// WithBundleOverride merges a single-locale bundle file over the data for
// that locale.
func WithBundleOverride(locale, path string) Option {
	return func(cfg *cacheConfig) error {
		if locale == "" || path == "" {
			return nil
		}
		if cfg.overrides == nil {
			cfg.overrides = make(map[string]string)
		}
		cfg.overrides[locale] = path
		return nil
	}
}

// WithHooks registers build observers.
func WithHooks(hooks ...Hook) Option {
	return func(cfg *cacheConfig) error {
		for _, hook := range hooks {
			if hook == nil {
				continue
			}
			cfg.hooks = append(cfg.hooks, hook)
		}
		return nil
	}
}
