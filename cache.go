// Package datefmt provides locale-aware date/time formatting behind a
// thread-safe formatter cache. Formatters are expensive to resolve, so the
// cache memoizes them per (locale, descriptor, hour-cycle) and guarantees
// at most one construction per key under concurrent access.
package datefmt

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Cache maps canonical formatter keys to lazily constructed, immutable
// formatters. Construct one with New and share the handle; entries persist
// until Clear or RemoveForLocale evicts them.
type Cache struct {
	mu      sync.RWMutex
	entries map[Key]*Formatter
	group   singleflight.Group
	bundles *BundleSet
	hooks   []Hook
}

// New builds a cache. With no options it serves the embedded locale bundles.
func New(opts ...Option) (*Cache, error) {
	cfg := cacheConfig{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	set := cfg.bundles
	if set == nil {
		loader := NewBundleLoader(cfg.bundlePath)
		for locale, path := range cfg.overrides {
			loader.AddOverride(locale, path)
		}
		loaded, err := loader.Load()
		if err != nil {
			return nil, err
		}
		set = loaded
	}

	return &Cache{
		entries: make(map[Key]*Formatter),
		bundles: set,
		hooks:   cfg.hooks,
	}, nil
}

// FromSkeleton returns a formatter for a field skeleton such as "yMMMd" or
// "jm". Skeletons request fields, not layout: every hour field (j, H, h, K,
// k) resolves to one effective cycle. When hour is HourCycle12 or
// HourCycle24 that cycle is forced; when unspecified the locale's
// conventional cycle applies, explicit H and h fields included, so "Hm" in
// a 12-hour locale still renders a 12-hour clock.
func (c *Cache) FromSkeleton(locale, skeleton string, hour HourCycle) (*Formatter, error) {
	if strings.TrimSpace(skeleton) == "" {
		return nil, fmt.Errorf("%w: empty skeleton", ErrInvalidDescriptor)
	}
	return c.lookup(newKey(locale, Skeleton(skeleton), hour))
}

// LocalizedDate returns a date-only formatter at the given style.
func (c *Cache) LocalizedDate(locale string, style Style) (*Formatter, error) {
	return c.lookup(newKey(locale, LocalizedDate(style), HourCycleUnspecified))
}

// LocalizedTime returns a time-only formatter at the given style.
func (c *Cache) LocalizedTime(locale string, style Style) (*Formatter, error) {
	return c.lookup(newKey(locale, LocalizedTime(style), HourCycleUnspecified))
}

// LocalizedDateTime returns a combined formatter. The (dateStyle, timeStyle)
// pair is ordered: (SHORT, LONG) and (LONG, SHORT) are distinct entries.
func (c *Cache) LocalizedDateTime(locale string, dateStyle, timeStyle Style) (*Formatter, error) {
	return c.lookup(newKey(locale, LocalizedDateTime(dateStyle, timeStyle), HourCycleUnspecified))
}

// FromPattern returns a formatter for a literal pattern. The pattern bypasses
// locale-adaptive field ordering; prefer FromSkeleton for user-facing text.
func (c *Cache) FromPattern(locale, pattern string) (*Formatter, error) {
	if strings.TrimSpace(pattern) == "" {
		return nil, fmt.Errorf("%w: empty pattern", ErrInvalidDescriptor)
	}
	return c.lookup(newKey(locale, ExplicitPattern(pattern), HourCycleUnspecified))
}

// Clear removes every entry. Safe to call concurrently with in-flight gets;
// a construction racing the clear may repopulate its key, and the next
// access simply reuses or rebuilds it.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.entries = make(map[Key]*Formatter)
	c.mu.Unlock()
}

// RemoveForLocale removes every entry whose locale equals the canonical tag
// of the given locale. The match is strict tag identity: removing "en" does
// not touch "en-US" entries. Callers wanting language-level invalidation
// must remove each tag they populated.
func (c *Cache) RemoveForLocale(locale string) {
	tag := canonicalTag(locale)

	c.mu.Lock()
	for key := range c.entries {
		if key.Locale == tag {
			delete(c.entries, key)
		}
	}
	c.mu.Unlock()
}

// Len reports the number of cached formatters.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *Cache) lookup(key Key) (*Formatter, error) {
	c.mu.RLock()
	cached, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		return cached, nil
	}

	// Collapse concurrent first accesses per key; different keys build
	// independently. Construction errors propagate to every waiter and are
	// never stored, so a failed key can be retried.
	value, err, _ := c.group.Do(key.flightKey(), func() (any, error) {
		c.mu.RLock()
		existing, ok := c.entries[key]
		c.mu.RUnlock()
		if ok {
			return existing, nil
		}

		start := time.Now()
		built, buildErr := c.build(key)
		c.notify(BuildEvent{Key: key, Duration: time.Since(start), Err: buildErr})
		if buildErr != nil {
			return nil, buildErr
		}

		c.mu.Lock()
		c.entries[key] = built
		c.mu.Unlock()
		return built, nil
	})
	if err != nil {
		return nil, err
	}
	return value.(*Formatter), nil
}

func (c *Cache) build(key Key) (*Formatter, error) {
	bundle := c.bundles.Resolve(key.Locale)

	pattern, err := patternFor(bundle, key.Descriptor, key.Hour)
	if err != nil {
		return nil, err
	}

	return newFormatter(key.Locale, pattern, bundle)
}

func (c *Cache) notify(event BuildEvent) {
	for _, hook := range c.hooks {
		hook.FormatterBuilt(event)
	}
}

func patternFor(bundle *Bundle, descriptor Descriptor, hour HourCycle) (string, error) {
	switch descriptor.kind {
	case kindSkeleton:
		return resolveSkeleton(bundle, descriptor.text, hour)
	case kindLocalizedDate:
		return stylePattern(bundle.DateFormats, descriptor.dateStyle, fallbackDateFormats), nil
	case kindLocalizedTime:
		return stylePattern(bundle.TimeFormats, descriptor.timeStyle, fallbackTimeFormats), nil
	case kindLocalizedDateTime:
		date := stylePattern(bundle.DateFormats, descriptor.dateStyle, fallbackDateFormats)
		clock := stylePattern(bundle.TimeFormats, descriptor.timeStyle, fallbackTimeFormats)
		glue := bundle.DateTimeFormats.For(descriptor.dateStyle)
		if glue == "" {
			glue = "{1} {0}"
		}
		return applyGlue(glue, date, clock), nil
	case kindExplicitPattern:
		return descriptor.text, nil
	default:
		return "", fmt.Errorf("%w: unknown descriptor", ErrInvalidDescriptor)
	}
}

// Fallback style patterns for bundles that carry no pattern data at all,
// such as a caller-provided set without a root bundle.
var (
	fallbackDateFormats = StylePatterns{
		Short:  "y-MM-dd",
		Medium: "y MMM d",
		Long:   "y MMMM d",
		Full:   "y MMMM d, EEEE",
	}
	fallbackTimeFormats = StylePatterns{
		Short:  "HH:mm",
		Medium: "HH:mm:ss",
		Long:   "HH:mm:ss z",
		Full:   "HH:mm:ss z",
	}
)

func stylePattern(patterns StylePatterns, style Style, fallback StylePatterns) string {
	if pattern := patterns.For(style); pattern != "" {
		return pattern
	}
	return fallback.For(style)
}
