package datefmt

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// patternFieldLetters lists the CLDR pattern field letters the renderer
// understands. Anything else outside quoted text is rejected.
const patternFieldLetters = "GyMLdEeHhKkmsazZ"

type segmentKind int

const (
	segmentLiteral segmentKind = iota
	segmentField
)

type segment struct {
	kind   segmentKind
	text   string
	letter byte
	count  int
}

// compilePattern parses a CLDR-style date/time pattern into render segments.
// Single quotes delimit literal text, with '' as an escaped quote.
func compilePattern(pattern string) ([]segment, error) {
	var segments []segment
	var literal strings.Builder

	flushLiteral := func() {
		if literal.Len() > 0 {
			segments = append(segments, segment{kind: segmentLiteral, text: literal.String()})
			literal.Reset()
		}
	}

	for i := 0; i < len(pattern); {
		ch := pattern[i]

		if ch == '\'' {
			if i+1 < len(pattern) && pattern[i+1] == '\'' {
				literal.WriteByte('\'')
				i += 2
				continue
			}
			end := quotedRunEnd(pattern, i)
			if end < 0 {
				return nil, fmt.Errorf("%w: unterminated quote in pattern %q", ErrInvalidDescriptor, pattern)
			}
			quoted := pattern[i+1 : end-1]
			literal.WriteString(strings.ReplaceAll(quoted, "''", "'"))
			i = end
			continue
		}

		if isASCIILetter(ch) {
			if strings.IndexByte(patternFieldLetters, ch) < 0 {
				return nil, fmt.Errorf("%w: unsupported pattern field %q in %q", ErrInvalidDescriptor, string(ch), pattern)
			}
			flushLiteral()
			count := 1
			for i+count < len(pattern) && pattern[i+count] == ch {
				count++
			}
			segments = append(segments, segment{kind: segmentField, letter: ch, count: count})
			i += count
			continue
		}

		literal.WriteByte(ch)
		i++
	}

	flushLiteral()

	if len(segments) == 0 {
		return nil, fmt.Errorf("%w: empty pattern", ErrInvalidDescriptor)
	}
	return segments, nil
}

func isASCIILetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

// quotedRunEnd returns the index just past the quoted run opened at
// pattern[start]. A doubled quote inside the run is the CLDR '' escape and
// does not close it. Returns -1 for an unterminated run.
func quotedRunEnd(pattern string, start int) int {
	for i := start + 1; i < len(pattern); i++ {
		if pattern[i] != '\'' {
			continue
		}
		if i+1 < len(pattern) && pattern[i+1] == '\'' {
			i++
			continue
		}
		return i + 1
	}
	return -1
}

func renderSegments(segments []segment, bundle *Bundle, t time.Time) string {
	var b strings.Builder
	for _, seg := range segments {
		if seg.kind == segmentLiteral {
			b.WriteString(seg.text)
			continue
		}
		b.WriteString(renderField(seg, bundle, t))
	}
	return b.String()
}

func renderField(seg segment, bundle *Bundle, t time.Time) string {
	switch seg.letter {
	case 'G':
		return eraName(bundle, t.Year())
	case 'y':
		return renderYear(t.Year(), seg.count)
	case 'M', 'L':
		return renderMonth(bundle, int(t.Month()), seg.count)
	case 'd':
		return padNumber(t.Day(), seg.count)
	case 'E', 'e':
		return weekdayName(bundle, t.Weekday(), seg.count)
	case 'H':
		return padNumber(t.Hour(), seg.count)
	case 'k':
		hour := t.Hour()
		if hour == 0 {
			hour = 24
		}
		return padNumber(hour, seg.count)
	case 'h':
		hour := t.Hour() % 12
		if hour == 0 {
			hour = 12
		}
		return padNumber(hour, seg.count)
	case 'K':
		return padNumber(t.Hour()%12, seg.count)
	case 'm':
		return padNumber(t.Minute(), seg.count)
	case 's':
		return padNumber(t.Second(), seg.count)
	case 'a':
		return dayPeriod(bundle, t.Hour())
	case 'z':
		return t.Format("MST")
	case 'Z':
		return t.Format("-0700")
	default:
		return ""
	}
}

func renderYear(year, count int) string {
	if year < 0 {
		year = -year
	}
	if count == 2 {
		return padNumber(year%100, 2)
	}
	return padNumber(year, count)
}

func renderMonth(bundle *Bundle, month, count int) string {
	switch {
	case count >= 4:
		if name := monthFrom(bundle.MonthsWide, month); name != "" {
			return name
		}
	case count == 3:
		if name := monthFrom(bundle.MonthsAbbrev, month); name != "" {
			return name
		}
	}
	if count > 2 {
		count = 2
	}
	return padNumber(month, count)
}

func monthFrom(names []string, month int) string {
	if month >= 1 && month <= len(names) {
		return names[month-1]
	}
	return ""
}

func weekdayName(bundle *Bundle, day time.Weekday, count int) string {
	idx := int(day)
	if count >= 4 {
		if idx < len(bundle.DaysWide) && bundle.DaysWide[idx] != "" {
			return bundle.DaysWide[idx]
		}
	}
	if idx < len(bundle.DaysAbbrev) && bundle.DaysAbbrev[idx] != "" {
		return bundle.DaysAbbrev[idx]
	}
	// Neutral fallback when the bundle carries no weekday names.
	return day.String()[:3]
}

func dayPeriod(bundle *Bundle, hour int) string {
	if hour < 12 {
		if bundle.Periods.AM != "" {
			return bundle.Periods.AM
		}
		return "AM"
	}
	if bundle.Periods.PM != "" {
		return bundle.Periods.PM
	}
	return "PM"
}

func eraName(bundle *Bundle, year int) string {
	idx := 1
	if year <= 0 {
		idx = 0
	}
	if idx < len(bundle.Eras) && bundle.Eras[idx] != "" {
		return bundle.Eras[idx]
	}
	if idx == 0 {
		return "BC"
	}
	return "AD"
}

func padNumber(value, width int) string {
	text := strconv.Itoa(value)
	for len(text) < width {
		text = "0" + text
	}
	return text
}
