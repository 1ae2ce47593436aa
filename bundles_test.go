package datefmt

import "testing"

func TestBundleSetResolve(t *testing.T) {
	set := NewBundleSet(defaultBundles()...)

	tests := []struct {
		locale   string
		expected string
	}{
		{locale: "en", expected: "en"},
		{locale: "en-US", expected: "en"},
		{locale: "en_us", expected: "en"},
		{locale: "vi-VN", expected: "vi"},
		{locale: "es-MX", expected: "es"},
		{locale: "xx", expected: "und"},
	}

	for _, tt := range tests {
		if got := set.Resolve(tt.locale).Locale; got != tt.expected {
			t.Errorf("Resolve(%q).Locale = %q, want %q", tt.locale, got, tt.expected)
		}
	}
}

func TestBundleSetResolveNeverNil(t *testing.T) {
	empty := NewBundleSet()
	bundle := empty.Resolve("en-US")
	if bundle == nil {
		t.Fatal("Resolve must not return nil")
	}
	if bundle.Locale != "en-US" {
		t.Errorf("empty-set bundle locale = %q, want %q", bundle.Locale, "en-US")
	}
}

func TestBundleSetSnapshotsInput(t *testing.T) {
	source := &Bundle{
		Locale:       "en",
		MonthsAbbrev: []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
		AvailableFormats: map[string]string{
			"yMMMd": "MMM d, y",
		},
	}

	set := NewBundleSet(source)

	source.MonthsAbbrev[0] = "mutated"
	source.AvailableFormats["yMMMd"] = "mutated"

	bundle := set.Resolve("en")
	if bundle.MonthsAbbrev[0] != "Jan" {
		t.Error("bundle months should be snapshotted at construction")
	}
	if bundle.AvailableFormats["yMMMd"] != "MMM d, y" {
		t.Error("bundle formats should be snapshotted at construction")
	}
}

func TestBundleSetLocales(t *testing.T) {
	set := NewBundleSet(
		&Bundle{Locale: "vi"},
		&Bundle{Locale: "en_us"},
		&Bundle{Locale: "es"},
	)

	got := set.Locales()
	want := []string{"en-US", "es", "vi"}
	if len(got) != len(want) {
		t.Fatalf("Locales() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Locales() = %v, want %v", got, want)
		}
	}
}

func TestStylePatternsFor(t *testing.T) {
	patterns := StylePatterns{Short: "s", Medium: "m", Long: "l", Full: "f"}

	tests := []struct {
		style    Style
		expected string
	}{
		{style: StyleShort, expected: "s"},
		{style: StyleMedium, expected: "m"},
		{style: StyleLong, expected: "l"},
		{style: StyleFull, expected: "f"},
	}

	for _, tt := range tests {
		if got := patterns.For(tt.style); got != tt.expected {
			t.Errorf("For(%v) = %q, want %q", tt.style, got, tt.expected)
		}
	}
}
