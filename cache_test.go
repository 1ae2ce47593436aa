package datefmt

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

var referenceTime = time.Date(2024, 1, 15, 14, 30, 45, 0, time.UTC)

func newTestCache(t *testing.T, opts ...Option) *Cache {
	t.Helper()
	cache, err := New(opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return cache
}

func TestCacheDeterminism(t *testing.T) {
	cache := newTestCache(t)

	first, err := cache.FromSkeleton("en-US", "yMMMd", HourCycleUnspecified)
	if err != nil {
		t.Fatalf("FromSkeleton error = %v", err)
	}
	second, err := cache.FromSkeleton("en-US", "yMMMd", HourCycleUnspecified)
	if err != nil {
		t.Fatalf("FromSkeleton error = %v", err)
	}

	if first != second {
		t.Fatal("repeated lookups should return the cached instance")
	}
	if got, want := first.Format(referenceTime), second.Format(referenceTime); got != want {
		t.Fatalf("outputs diverged: %q vs %q", got, want)
	}
}

func TestCacheAtMostOnceConstruction(t *testing.T) {
	var builds int32
	cache := newTestCache(t, WithHooks(HookFuncs{
		Built: func(BuildEvent) { atomic.AddInt32(&builds, 1) },
	}))

	const callers = 32
	results := make([]*Formatter, callers)

	var start sync.WaitGroup
	start.Add(1)
	var done sync.WaitGroup
	done.Add(callers)

	for i := 0; i < callers; i++ {
		go func(idx int) {
			defer done.Done()
			start.Wait()
			formatter, err := cache.FromSkeleton("en-US", "yMMMddHmss", HourCycleUnspecified)
			if err != nil {
				t.Errorf("FromSkeleton error = %v", err)
				return
			}
			results[idx] = formatter
		}(i)
	}

	start.Done()
	done.Wait()

	if got := atomic.LoadInt32(&builds); got != 1 {
		t.Fatalf("construction ran %d times, want 1", got)
	}
	for i := 1; i < callers; i++ {
		if results[i] != results[0] {
			t.Fatalf("caller %d received a different instance", i)
		}
	}
}

func TestCacheConcurrentDistinctKeys(t *testing.T) {
	var builds int32
	cache := newTestCache(t, WithHooks(HookFuncs{
		Built: func(BuildEvent) { atomic.AddInt32(&builds, 1) },
	}))

	locales := []string{"en-US", "vi-VN", "es", "fr", "de", "ja"}

	var wg sync.WaitGroup
	for _, locale := range locales {
		for i := 0; i < 4; i++ {
			wg.Add(1)
			go func(locale string) {
				defer wg.Done()
				if _, err := cache.FromSkeleton(locale, "yMMMd", HourCycleUnspecified); err != nil {
					t.Errorf("FromSkeleton(%q) error = %v", locale, err)
				}
			}(locale)
		}
	}
	wg.Wait()

	if got, want := atomic.LoadInt32(&builds), int32(len(locales)); got != want {
		t.Fatalf("constructions = %d, want %d", got, want)
	}
	if got := cache.Len(); got != len(locales) {
		t.Fatalf("Len() = %d, want %d", got, len(locales))
	}
}

func TestCacheKeyDiscrimination(t *testing.T) {
	cache := newTestCache(t)

	shortLong, err := cache.LocalizedDateTime("en", StyleShort, StyleLong)
	if err != nil {
		t.Fatalf("LocalizedDateTime error = %v", err)
	}
	longShort, err := cache.LocalizedDateTime("en", StyleLong, StyleShort)
	if err != nil {
		t.Fatalf("LocalizedDateTime error = %v", err)
	}

	if shortLong == longShort {
		t.Fatal("(SHORT, LONG) and (LONG, SHORT) should populate distinct entries")
	}
	if got := cache.Len(); got != 2 {
		t.Fatalf("Len() = %d, want 2", got)
	}
	if shortLong.Pattern() == longShort.Pattern() {
		t.Fatalf("style pairs resolved to the same pattern %q", shortLong.Pattern())
	}
}

func TestCacheHourCycleKeyed(t *testing.T) {
	cache := newTestCache(t)

	forced, err := cache.FromSkeleton("en", "jm", HourCycle24)
	if err != nil {
		t.Fatalf("FromSkeleton error = %v", err)
	}
	conventional, err := cache.FromSkeleton("en", "jm", HourCycleUnspecified)
	if err != nil {
		t.Fatalf("FromSkeleton error = %v", err)
	}

	if forced == conventional {
		t.Fatal("hour-cycle preference must participate in the cache key")
	}
	if got := cache.Len(); got != 2 {
		t.Fatalf("Len() = %d, want 2", got)
	}
}

func TestCacheRemoveForLocale(t *testing.T) {
	cache := newTestCache(t)

	english, err := cache.FromSkeleton("en-US", "yMMMd", HourCycleUnspecified)
	if err != nil {
		t.Fatalf("FromSkeleton error = %v", err)
	}
	vietnamese, err := cache.FromSkeleton("vi-VN", "yMMMd", HourCycleUnspecified)
	if err != nil {
		t.Fatalf("FromSkeleton error = %v", err)
	}

	cache.RemoveForLocale("en-US")

	keptVietnamese, err := cache.FromSkeleton("vi-VN", "yMMMd", HourCycleUnspecified)
	if err != nil {
		t.Fatalf("FromSkeleton error = %v", err)
	}
	if keptVietnamese != vietnamese {
		t.Fatal("removing en-US must not evict the vi-VN entry")
	}

	rebuilt, err := cache.FromSkeleton("en-US", "yMMMd", HourCycleUnspecified)
	if err != nil {
		t.Fatalf("FromSkeleton error = %v", err)
	}
	if rebuilt == english {
		t.Fatal("en-US entry should have been evicted and rebuilt")
	}
}

func TestCacheRemoveForLocaleStrictMatch(t *testing.T) {
	cache := newTestCache(t)

	regional, err := cache.FromSkeleton("en-US", "yMMMd", HourCycleUnspecified)
	if err != nil {
		t.Fatalf("FromSkeleton error = %v", err)
	}

	// Strict tag identity: the base language does not clear region-qualified
	// entries.
	cache.RemoveForLocale("en")

	kept, err := cache.FromSkeleton("en-US", "yMMMd", HourCycleUnspecified)
	if err != nil {
		t.Fatalf("FromSkeleton error = %v", err)
	}
	if kept != regional {
		t.Fatal("removing \"en\" must not evict the \"en-US\" entry")
	}
}

func TestCacheRemoveForLocaleNormalizesTag(t *testing.T) {
	cache := newTestCache(t)

	if _, err := cache.FromSkeleton("en-US", "yMMMd", HourCycleUnspecified); err != nil {
		t.Fatalf("FromSkeleton error = %v", err)
	}

	cache.RemoveForLocale("en_us")

	if got := cache.Len(); got != 0 {
		t.Fatalf("Len() = %d after removal, want 0", got)
	}
}

func TestCacheClear(t *testing.T) {
	cache := newTestCache(t)

	before, err := cache.LocalizedDate("en", StyleMedium)
	if err != nil {
		t.Fatalf("LocalizedDate error = %v", err)
	}

	cache.Clear()

	if got := cache.Len(); got != 0 {
		t.Fatalf("Len() = %d after Clear, want 0", got)
	}

	after, err := cache.LocalizedDate("en", StyleMedium)
	if err != nil {
		t.Fatalf("LocalizedDate error = %v", err)
	}
	if after == before {
		t.Fatal("Clear should force fresh construction on next access")
	}
	if got, want := after.Format(referenceTime), before.Format(referenceTime); got != want {
		t.Fatalf("rebuilt formatter output = %q, want %q", got, want)
	}
}

func TestCacheFailedConstructionNotCached(t *testing.T) {
	var attempts int32
	cache := newTestCache(t, WithHooks(HookFuncs{
		Built: func(BuildEvent) { atomic.AddInt32(&attempts, 1) },
	}))

	for i := 0; i < 2; i++ {
		if _, err := cache.FromSkeleton("en", "yQd", HourCycleUnspecified); !errors.Is(err, ErrInvalidDescriptor) {
			t.Fatalf("FromSkeleton error = %v, want ErrInvalidDescriptor", err)
		}
	}

	// Both calls must reach the construction path: failures are never stored.
	if got := atomic.LoadInt32(&attempts); got != 2 {
		t.Fatalf("construction attempts = %d, want 2", got)
	}
	if got := cache.Len(); got != 0 {
		t.Fatalf("Len() = %d after failures, want 0", got)
	}

	if _, err := cache.FromSkeleton("en", "yMd", HourCycleUnspecified); err != nil {
		t.Fatalf("valid skeleton after failures error = %v", err)
	}
}

func TestCacheEmptyDescriptors(t *testing.T) {
	cache := newTestCache(t)

	if _, err := cache.FromSkeleton("en", "  ", HourCycleUnspecified); !errors.Is(err, ErrInvalidDescriptor) {
		t.Fatalf("empty skeleton error = %v, want ErrInvalidDescriptor", err)
	}
	if _, err := cache.FromPattern("en", ""); !errors.Is(err, ErrInvalidDescriptor) {
		t.Fatalf("empty pattern error = %v, want ErrInvalidDescriptor", err)
	}
}

func TestCacheScenarioSkeletonFormatting(t *testing.T) {
	cache := newTestCache(t)

	tests := []struct {
		locale   string
		expected string
	}{
		{locale: "en-US", expected: "Jan 15, 2024, 2:30:45 PM"},
		{locale: "vi-VN", expected: "15 thg 1, 2024 14:30:45"},
	}

	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			formatter, err := cache.FromSkeleton(tt.locale, "yMMMddHmss", HourCycleUnspecified)
			if err != nil {
				t.Fatalf("FromSkeleton error = %v", err)
			}
			if got := formatter.FormatIn(referenceTime, time.UTC); got != tt.expected {
				t.Errorf("FormatIn = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestCacheLocalizedStyles(t *testing.T) {
	cache := newTestCache(t)

	tests := []struct {
		name     string
		build    func() (*Formatter, error)
		expected string
	}{
		{
			name:     "en medium date",
			build:    func() (*Formatter, error) { return cache.LocalizedDate("en", StyleMedium) },
			expected: "Jan 15, 2024",
		},
		{
			name:     "en full date",
			build:    func() (*Formatter, error) { return cache.LocalizedDate("en", StyleFull) },
			expected: "Monday, January 15, 2024",
		},
		{
			name:     "en short time",
			build:    func() (*Formatter, error) { return cache.LocalizedTime("en", StyleShort) },
			expected: "2:30 PM",
		},
		{
			name:     "en long datetime",
			build:    func() (*Formatter, error) { return cache.LocalizedDateTime("en", StyleLong, StyleShort) },
			expected: "January 15, 2024 at 2:30 PM",
		},
		{
			name:     "es long date",
			build:    func() (*Formatter, error) { return cache.LocalizedDate("es", StyleLong) },
			expected: "15 de enero de 2024",
		},
		{
			name:     "vi medium datetime",
			build:    func() (*Formatter, error) { return cache.LocalizedDateTime("vi", StyleMedium, StyleMedium) },
			expected: "15 thg 1, 2024 14:30:45",
		},
		{
			name:     "de medium date",
			build:    func() (*Formatter, error) { return cache.LocalizedDate("de", StyleMedium) },
			expected: "15.01.2024",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			formatter, err := tt.build()
			if err != nil {
				t.Fatalf("build error = %v", err)
			}
			if got := formatter.Format(referenceTime); got != tt.expected {
				t.Errorf("Format = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestCacheFromPattern(t *testing.T) {
	cache := newTestCache(t)

	formatter, err := cache.FromPattern("en", "y-MM-dd'T'HH:mm:ss")
	if err != nil {
		t.Fatalf("FromPattern error = %v", err)
	}
	if got, want := formatter.Format(referenceTime), "2024-01-15T14:30:45"; got != want {
		t.Fatalf("Format = %q, want %q", got, want)
	}

	again, err := cache.FromPattern("en", "y-MM-dd'T'HH:mm:ss")
	if err != nil {
		t.Fatalf("FromPattern error = %v", err)
	}
	if again != formatter {
		t.Fatal("explicit patterns follow the same caching discipline")
	}
}
