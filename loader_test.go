package datefmt

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeTestFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestBundleLoaderDefaults(t *testing.T) {
	set, err := NewBundleLoader("").Load()
	if err != nil {
		t.Fatalf("Load error = %v", err)
	}

	for _, locale := range []string{"und", "en", "es", "vi"} {
		if got := set.Resolve(locale).Locale; got != locale {
			t.Errorf("Resolve(%q).Locale = %q, want %q", locale, got, locale)
		}
	}
}

func TestBundleLoaderYAMLOverride(t *testing.T) {
	path := writeTestFile(t, "en.yaml", `
periods:
  am: "a.m."
  pm: "p.m."
dateFormats:
  medium: "dd MMM y"
`)

	loader := NewBundleLoader("")
	loader.AddOverride("en", path)

	set, err := loader.Load()
	if err != nil {
		t.Fatalf("Load error = %v", err)
	}

	bundle := set.Resolve("en")
	if bundle.Periods.PM != "p.m." {
		t.Errorf("Periods.PM = %q, want %q", bundle.Periods.PM, "p.m.")
	}
	if bundle.DateFormats.Medium != "dd MMM y" {
		t.Errorf("DateFormats.Medium = %q, want %q", bundle.DateFormats.Medium, "dd MMM y")
	}
	// untouched fields keep the generated defaults
	if bundle.DateFormats.Short != "M/d/yy" {
		t.Errorf("DateFormats.Short = %q, want generated default", bundle.DateFormats.Short)
	}
	if len(bundle.MonthsAbbrev) != 12 || bundle.MonthsAbbrev[0] != "Jan" {
		t.Error("month names should survive a partial override")
	}
}

func TestBundleLoaderJSONBundleFile(t *testing.T) {
	path := writeTestFile(t, "bundles.json", `{
  "xx": {
    "preferredHour": "h23",
    "dateFormats": {"medium": "y/MM/dd"},
    "timeFormats": {"medium": "HH.mm.ss"},
    "dateTimeFormats": {"medium": "{1} {0}"}
  }
}`)

	set, err := NewBundleLoader(path).Load()
	if err != nil {
		t.Fatalf("Load error = %v", err)
	}

	bundle := set.Resolve("xx")
	if bundle.Locale != "xx" {
		t.Fatalf("Resolve(xx).Locale = %q, want %q", bundle.Locale, "xx")
	}
	if bundle.DateFormats.Medium != "y/MM/dd" {
		t.Errorf("DateFormats.Medium = %q, want %q", bundle.DateFormats.Medium, "y/MM/dd")
	}
}

func TestBundleLoaderRejectsUnknownExtension(t *testing.T) {
	path := writeTestFile(t, "bundles.toml", "locale = 'en'")

	if _, err := NewBundleLoader(path).Load(); err == nil {
		t.Fatal("expected error for unsupported extension")
	}
}

func TestBundleLoaderMissingFile(t *testing.T) {
	if _, err := NewBundleLoader(filepath.Join(t.TempDir(), "missing.yaml")).Load(); err == nil {
		t.Fatal("expected error for missing bundle file")
	}
}

func TestCacheWithBundleOverride(t *testing.T) {
	path := writeTestFile(t, "en.yaml", `
dateFormats:
  medium: "dd MMM y"
`)

	cache := newTestCache(t, WithBundleOverride("en", path))

	formatter, err := cache.LocalizedDate("en", StyleMedium)
	if err != nil {
		t.Fatalf("LocalizedDate error = %v", err)
	}
	if got, want := formatter.Format(referenceTime), "15 Jan 2024"; got != want {
		t.Errorf("Format = %q, want %q", got, want)
	}
}

func TestCacheWithCustomBundles(t *testing.T) {
	set := NewBundleSet(&Bundle{
		Locale:        "zz",
		PreferredHour: "h23",
		TimeFormats:   StylePatterns{Medium: "HH!mm!ss"},
	})

	cache := newTestCache(t, WithBundles(set))

	formatter, err := cache.LocalizedTime("zz", StyleMedium)
	if err != nil {
		t.Fatalf("LocalizedTime error = %v", err)
	}
	if got, want := formatter.Format(referenceTime), "14!30!45"; got != want {
		t.Errorf("Format = %q, want %q", got, want)
	}

	// styles the custom bundle leaves empty use the neutral fallback
	date, err := cache.LocalizedDate("zz", StyleMedium)
	if err != nil {
		t.Fatalf("LocalizedDate error = %v", err)
	}
	if got, want := date.Format(referenceTime), "2024 01 15"; got != want {
		t.Errorf("fallback Format = %q, want %q", got, want)
	}
}

func TestFormatterWithOverrideSymbols(t *testing.T) {
	path := writeTestFile(t, "vi.yaml", `
monthsAbbrev: ["T1","T2","T3","T4","T5","T6","T7","T8","T9","T10","T11","T12"]
`)

	cache := newTestCache(t, WithBundleOverride("vi", path))

	formatter, err := cache.FromSkeleton("vi", "yMMMd", HourCycleUnspecified)
	if err != nil {
		t.Fatalf("FromSkeleton error = %v", err)
	}
	if got, want := formatter.FormatIn(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), time.UTC), "15 T1, 2024"; got != want {
		t.Errorf("Format = %q, want %q", got, want)
	}
}
