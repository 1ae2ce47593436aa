package datefmt

import "time"

// Formatter renders points in time into locale-appropriate text. Formatters
// are immutable once constructed and safe for unsynchronized concurrent use.
type Formatter struct {
	locale   string
	pattern  string
	segments []segment
	bundle   *Bundle
}

func newFormatter(locale, pattern string, bundle *Bundle) (*Formatter, error) {
	segments, err := compilePattern(pattern)
	if err != nil {
		return nil, err
	}

	return &Formatter{
		locale:   locale,
		pattern:  pattern,
		segments: segments,
		bundle:   bundle,
	}, nil
}

// Format renders t in the location it carries.
func (f *Formatter) Format(t time.Time) string {
	return renderSegments(f.segments, f.bundle, t)
}

// FormatIn renders the instant t in the given location. A nil location
// renders in UTC.
func (f *Formatter) FormatIn(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return f.Format(t.In(loc))
}

// Locale returns the canonical locale tag the formatter was built for.
func (f *Formatter) Locale() string {
	return f.locale
}

// Pattern returns the concrete pattern the descriptor resolved to.
func (f *Formatter) Pattern() string {
	return f.pattern
}
