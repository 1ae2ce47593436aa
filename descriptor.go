package datefmt

import (
	"fmt"
	"strings"
)

// Style selects one of the predefined locale-conventional verbosity levels
// for rendering dates or times.
type Style int

const (
	StyleShort Style = iota
	StyleMedium
	StyleLong
	StyleFull
)

func (s Style) String() string {
	switch s {
	case StyleShort:
		return "SHORT"
	case StyleMedium:
		return "MEDIUM"
	case StyleLong:
		return "LONG"
	case StyleFull:
		return "FULL"
	default:
		return "MEDIUM"
	}
}

// HourCycle expresses a caller preference for 12 or 24 hour time fields,
// overriding the locale's conventional cycle when specified.
type HourCycle int

const (
	HourCycleUnspecified HourCycle = iota
	HourCycle12
	HourCycle24
)

func (h HourCycle) String() string {
	switch h {
	case HourCycle12:
		return "h12"
	case HourCycle24:
		return "h23"
	default:
		return ""
	}
}

type descriptorKind int

const (
	kindSkeleton descriptorKind = iota
	kindLocalizedDate
	kindLocalizedTime
	kindLocalizedDateTime
	kindExplicitPattern
)

// Descriptor is a tagged value identifying a formatting request. Construct
// one with Skeleton, LocalizedDate, LocalizedTime, LocalizedDateTime or
// ExplicitPattern; the zero value is not a valid descriptor.
type Descriptor struct {
	kind      descriptorKind
	text      string
	dateStyle Style
	timeStyle Style
}

// Skeleton describes a field-skeleton request such as "yMMMd" or "jm".
func Skeleton(pattern string) Descriptor {
	return Descriptor{kind: kindSkeleton, text: pattern}
}

// LocalizedDate describes a date-only request at the given style.
func LocalizedDate(style Style) Descriptor {
	return Descriptor{kind: kindLocalizedDate, dateStyle: style}
}

// LocalizedTime describes a time-only request at the given style.
func LocalizedTime(style Style) Descriptor {
	return Descriptor{kind: kindLocalizedTime, timeStyle: style}
}

// LocalizedDateTime describes a combined request; (dateStyle, timeStyle) is
// an ordered pair and participates in cache equality as such.
func LocalizedDateTime(dateStyle, timeStyle Style) Descriptor {
	return Descriptor{kind: kindLocalizedDateTime, dateStyle: dateStyle, timeStyle: timeStyle}
}

// ExplicitPattern describes a literal pattern request. Explicit patterns
// bypass locale-adaptive field ordering and are discouraged for user-facing
// text; they exist for machine-readable contract formats.
func ExplicitPattern(pattern string) Descriptor {
	return Descriptor{kind: kindExplicitPattern, text: pattern}
}

// String renders the descriptor in its "<tag>:<payload>" debug form.
func (d Descriptor) String() string {
	switch d.kind {
	case kindSkeleton:
		return "skeleton:" + d.text
	case kindLocalizedDate:
		return "date:" + d.dateStyle.String()
	case kindLocalizedTime:
		return "time:" + d.timeStyle.String()
	case kindLocalizedDateTime:
		return "datetime:" + d.dateStyle.String() + "+" + d.timeStyle.String()
	case kindExplicitPattern:
		return "pattern:" + d.text
	default:
		return "unknown:"
	}
}

// Key is the canonical cache identity for a formatter request. Two requests
// are cache-equivalent exactly when their keys compare equal.
type Key struct {
	Locale     string
	Descriptor Descriptor
	Hour       HourCycle
}

func newKey(locale string, descriptor Descriptor, hour HourCycle) Key {
	return Key{
		Locale:     canonicalTag(locale),
		Descriptor: descriptor,
		Hour:       hour,
	}
}

// String renders the key in its textual debug form:
// "<locale-tag>|<descriptor-tag>:<payload>|<hour-cycle-or-absent>". The form
// is for diagnostics; a locale or pattern containing the separator can make
// two distinct keys render alike. Identity is the struct itself.
func (k Key) String() string {
	var b strings.Builder
	b.WriteString(k.Locale)
	b.WriteByte('|')
	b.WriteString(k.Descriptor.String())
	b.WriteByte('|')
	b.WriteString(k.Hour.String())
	return b.String()
}

// flightKey is an injective string encoding of the key. Length prefixes keep
// free-form locale and pattern text from colliding across field boundaries.
func (k Key) flightKey() string {
	return fmt.Sprintf("%d.%s%d.%s%d.%d.%d.%d",
		len(k.Locale), k.Locale,
		len(k.Descriptor.text), k.Descriptor.text,
		k.Descriptor.kind, k.Descriptor.dateStyle, k.Descriptor.timeStyle, k.Hour)
}
