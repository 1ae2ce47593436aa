package datefmt

import (
	"sort"
)

// StylePatterns carries the four predefined style patterns for a bundle
// section (date formats, time formats or date-time glue).
type StylePatterns struct {
	Short  string `json:"short" yaml:"short"`
	Medium string `json:"medium" yaml:"medium"`
	Long   string `json:"long" yaml:"long"`
	Full   string `json:"full" yaml:"full"`
}

// For returns the pattern registered for the style.
func (p StylePatterns) For(style Style) string {
	switch style {
	case StyleShort:
		return p.Short
	case StyleLong:
		return p.Long
	case StyleFull:
		return p.Full
	default:
		return p.Medium
	}
}

// DayPeriods holds the localized AM/PM markers.
type DayPeriods struct {
	AM string `json:"am" yaml:"am"`
	PM string `json:"pm" yaml:"pm"`
}

// Bundle holds the CLDR-derived symbols and patterns for a single locale.
// Bundles are data: any field left empty falls back to a neutral numeric
// rendering, so partial override files stay safe to load.
type Bundle struct {
	Locale string `json:"locale" yaml:"locale"`

	MonthsWide   []string `json:"monthsWide" yaml:"monthsWide"`
	MonthsAbbrev []string `json:"monthsAbbrev" yaml:"monthsAbbrev"`
	DaysWide     []string `json:"daysWide" yaml:"daysWide"`
	DaysAbbrev   []string `json:"daysAbbrev" yaml:"daysAbbrev"`
	Eras         []string `json:"eras" yaml:"eras"`

	Periods DayPeriods `json:"periods" yaml:"periods"`

	// PreferredHour is the locale's conventional hour cycle, "h12" or "h23".
	PreferredHour string `json:"preferredHour" yaml:"preferredHour"`

	DateFormats     StylePatterns `json:"dateFormats" yaml:"dateFormats"`
	TimeFormats     StylePatterns `json:"timeFormats" yaml:"timeFormats"`
	DateTimeFormats StylePatterns `json:"dateTimeFormats" yaml:"dateTimeFormats"`

	// AvailableFormats maps normalized skeletons to concrete patterns.
	AvailableFormats map[string]string `json:"availableFormats" yaml:"availableFormats"`
}

func (b *Bundle) preferredHourCycle() HourCycle {
	if b != nil && b.PreferredHour == "h12" {
		return HourCycle12
	}
	return HourCycle24
}

func (b *Bundle) clone() *Bundle {
	if b == nil {
		return nil
	}

	out := &Bundle{
		Locale:          b.Locale,
		Periods:         b.Periods,
		PreferredHour:   b.PreferredHour,
		DateFormats:     b.DateFormats,
		TimeFormats:     b.TimeFormats,
		DateTimeFormats: b.DateTimeFormats,
	}
	out.MonthsWide = append([]string(nil), b.MonthsWide...)
	out.MonthsAbbrev = append([]string(nil), b.MonthsAbbrev...)
	out.DaysWide = append([]string(nil), b.DaysWide...)
	out.DaysAbbrev = append([]string(nil), b.DaysAbbrev...)
	out.Eras = append([]string(nil), b.Eras...)

	if len(b.AvailableFormats) > 0 {
		out.AvailableFormats = make(map[string]string, len(b.AvailableFormats))
		for skeleton, pattern := range b.AvailableFormats {
			out.AvailableFormats[skeleton] = pattern
		}
	}
	return out
}

// BundleSet is an immutable snapshot of locale bundles, read only after
// construction.
type BundleSet struct {
	bundles map[string]*Bundle
	locales []string
}

// NewBundleSet builds an immutable snapshot from the given bundles. Each
// bundle is keyed by the canonical form of its Locale field; later bundles
// with the same tag replace earlier ones.
func NewBundleSet(bundles ...*Bundle) *BundleSet {
	set := &BundleSet{bundles: make(map[string]*Bundle, len(bundles))}

	for _, bundle := range bundles {
		if bundle == nil || bundle.Locale == "" {
			continue
		}
		tag := canonicalTag(bundle.Locale)
		clone := bundle.clone()
		clone.Locale = tag
		set.bundles[tag] = clone
	}

	set.locales = make([]string, 0, len(set.bundles))
	for tag := range set.bundles {
		set.locales = append(set.locales, tag)
	}
	sort.Strings(set.locales)

	return set
}

// Locales returns the locale tags known to the set.
func (s *BundleSet) Locales() []string {
	if s == nil || len(s.locales) == 0 {
		return nil
	}
	out := make([]string, len(s.locales))
	copy(out, s.locales)
	return out
}

// Resolve returns the bundle for the locale, walking the parent chain
// ("vi-VN" falls back to "vi") and finally the "und" root bundle. It never
// returns nil: an unknown locale yields an empty bundle whose symbols render
// numerically.
func (s *BundleSet) Resolve(locale string) *Bundle {
	tag := canonicalTag(locale)
	if s != nil {
		if bundle, ok := s.bundles[tag]; ok {
			return bundle
		}
		for _, parent := range localeParentChain(tag) {
			if bundle, ok := s.bundles[parent]; ok {
				return bundle
			}
		}
		if bundle, ok := s.bundles["und"]; ok {
			return bundle
		}
	}
	return &Bundle{Locale: tag}
}
