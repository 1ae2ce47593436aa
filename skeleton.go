package datefmt

import (
	"fmt"
	"sort"
	"strings"
)

// Skeleton field letters: date fields, time fields, and the flexible hour
// token "j" which resolves to the effective hour cycle before lookup.
const (
	skeletonDateLetters = "GyMLdEe"
	skeletonTimeLetters = "HhKkjmsa"
)

type skeletonField struct {
	letter byte
	count  int
}

// parseSkeleton splits a field skeleton into per-letter fields. Skeletons are
// field-order independent, so repeated letters accumulate into one field.
// Equivalent letters collapse: L counts as M, e as E.
func parseSkeleton(skeleton string) ([]skeletonField, error) {
	if strings.TrimSpace(skeleton) == "" {
		return nil, fmt.Errorf("%w: empty skeleton", ErrInvalidDescriptor)
	}

	counts := make(map[byte]int, 8)
	for i := 0; i < len(skeleton); i++ {
		ch := skeleton[i]
		switch ch {
		case 'L':
			ch = 'M'
		case 'e':
			ch = 'E'
		}
		if strings.IndexByte(skeletonDateLetters, ch) < 0 && strings.IndexByte(skeletonTimeLetters, ch) < 0 {
			return nil, fmt.Errorf("%w: unsupported skeleton field %q in %q", ErrInvalidDescriptor, string(ch), skeleton)
		}
		counts[ch]++
	}

	fields := make([]skeletonField, 0, len(counts))
	for _, letter := range []byte("GyMdEHhKkjmsa") {
		if count, ok := counts[letter]; ok {
			fields = append(fields, skeletonField{letter: letter, count: count})
		}
	}
	return fields, nil
}

// normalizeHours rewrites every hour field to the effective cycle: "H" for
// 24-hour, "h" for 12-hour. The day period field follows: present exactly
// when the effective cycle is 12-hour.
func normalizeHours(fields []skeletonField, cycle HourCycle) []skeletonField {
	hourCount := 0
	hasHour := false

	out := fields[:0]
	for _, field := range fields {
		switch field.letter {
		case 'H', 'h', 'K', 'k', 'j':
			hasHour = true
			if field.count > hourCount {
				hourCount = field.count
			}
		case 'a':
			// re-derived below
		default:
			out = append(out, field)
		}
	}

	if !hasHour {
		return out
	}

	letter := byte('H')
	if cycle == HourCycle12 {
		letter = 'h'
	}
	out = append(out, skeletonField{letter: letter, count: hourCount})
	if cycle == HourCycle12 {
		out = append(out, skeletonField{letter: 'a', count: 1})
	}

	// keep canonical ordering with the hour slotted before m/s
	sort.SliceStable(out, func(i, j int) bool {
		return canonicalFieldRank(out[i].letter) < canonicalFieldRank(out[j].letter)
	})
	return out
}

func canonicalFieldRank(letter byte) int {
	switch letter {
	case 'G':
		return 0
	case 'y':
		return 1
	case 'M':
		return 2
	case 'd':
		return 3
	case 'E':
		return 4
	case 'H', 'h':
		return 5
	case 'm':
		return 6
	case 's':
		return 7
	case 'a':
		return 8
	default:
		return 9
	}
}

func isTimeField(letter byte) bool {
	return strings.IndexByte(skeletonTimeLetters, letter) >= 0
}

func skeletonString(fields []skeletonField) string {
	var b strings.Builder
	for _, field := range fields {
		for i := 0; i < field.count; i++ {
			b.WriteByte(field.letter)
		}
	}
	return b.String()
}

// resolveSkeleton expands a field skeleton into the best concrete pattern the
// bundle offers. Resolution is a pure function of (bundle, skeleton, cycle).
func resolveSkeleton(bundle *Bundle, skeleton string, pref HourCycle) (string, error) {
	fields, err := parseSkeleton(skeleton)
	if err != nil {
		return "", err
	}

	cycle := pref
	if cycle == HourCycleUnspecified {
		cycle = bundle.preferredHourCycle()
	}
	fields = normalizeHours(fields, cycle)

	var dateFields, timeFields []skeletonField
	for _, field := range fields {
		if isTimeField(field.letter) {
			timeFields = append(timeFields, field)
		} else {
			dateFields = append(dateFields, field)
		}
	}

	var datePattern, timePattern string
	if len(dateFields) > 0 {
		datePattern = resolveDatePart(bundle, dateFields)
	}
	if len(timeFields) > 0 {
		timePattern = resolveTimePart(bundle, timeFields, cycle)
	}

	switch {
	case datePattern == "":
		return timePattern, nil
	case timePattern == "":
		return datePattern, nil
	default:
		glue := bundle.DateTimeFormats.For(glueStyle(dateFields))
		if glue == "" {
			glue = "{1} {0}"
		}
		return applyGlue(glue, datePattern, timePattern), nil
	}
}

// glueStyle picks the date-time glue pattern the way CLDR does: the wider
// the month/weekday fields, the more verbose the glue.
func glueStyle(dateFields []skeletonField) Style {
	var monthCount, weekdayCount int
	for _, field := range dateFields {
		switch field.letter {
		case 'M':
			monthCount = field.count
		case 'E':
			weekdayCount = field.count
		}
	}
	switch {
	case monthCount >= 4 && weekdayCount > 0:
		return StyleFull
	case monthCount >= 4:
		return StyleLong
	case monthCount == 3:
		return StyleMedium
	default:
		return StyleShort
	}
}

func applyGlue(glue, datePattern, timePattern string) string {
	result := strings.ReplaceAll(glue, "{1}", datePattern)
	return strings.ReplaceAll(result, "{0}", timePattern)
}

func resolveDatePart(bundle *Bundle, fields []skeletonField) string {
	if pattern, ok := lookupAvailable(bundle, fields); ok {
		return pattern
	}
	// Neutral synthesis for bundles without a matching entry.
	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, strings.Repeat(string(field.letter), field.count))
	}
	return strings.Join(parts, " ")
}

func resolveTimePart(bundle *Bundle, fields []skeletonField, cycle HourCycle) string {
	if pattern, ok := lookupAvailable(bundle, fields); ok {
		return ensureDayPeriod(pattern, cycle)
	}

	var b strings.Builder
	for _, field := range fields {
		switch field.letter {
		case 'H', 'h':
			b.WriteString(strings.Repeat(string(field.letter), field.count))
		case 'm':
			b.WriteString(":mm")
		case 's':
			b.WriteString(":ss")
		}
	}
	return ensureDayPeriod(b.String(), cycle)
}

// lookupAvailable finds the best AvailableFormats entry for the fields:
// first an exact skeleton hit, then the closest entry covering the same
// field letters, width-adjusted to the request.
func lookupAvailable(bundle *Bundle, fields []skeletonField) (string, bool) {
	available := bundle.AvailableFormats
	if len(available) == 0 {
		return "", false
	}

	key := skeletonString(fields)
	if pattern, ok := available[key]; ok {
		return setFieldWidths(pattern, fields), true
	}

	bestScore := -1
	var bestPattern string
	for entryKey, entryPattern := range available {
		entryFields, err := parseSkeleton(entryKey)
		if err != nil {
			continue
		}
		score, ok := matchScore(fields, entryFields)
		if !ok {
			continue
		}
		if bestScore < 0 || score < bestScore || (score == bestScore && entryPattern < bestPattern) {
			bestScore = score
			bestPattern = entryPattern
		}
	}
	if bestScore < 0 {
		return "", false
	}
	return setFieldWidths(bestPattern, fields), true
}

// matchScore compares a requested skeleton against an entry skeleton. Both
// must cover the same field letters (day period excluded, since entries list
// it in the pattern but not in the key). Width differences cost one point
// each; crossing the numeric/text boundary for months or weekdays costs
// heavily, so "yMMMd" prefers a named-month entry over "yMd".
func matchScore(requested, entry []skeletonField) (int, bool) {
	requestCounts := fieldCounts(requested)
	entryCounts := fieldCounts(entry)
	if len(requestCounts) != len(entryCounts) {
		return 0, false
	}

	score := 0
	for letter, want := range requestCounts {
		have, ok := entryCounts[letter]
		if !ok {
			return 0, false
		}
		diff := want - have
		if diff < 0 {
			diff = -diff
		}
		score += diff
		if letter == 'M' || letter == 'E' {
			if (want >= 3) != (have >= 3) {
				score += 16
			}
		}
	}
	return score, true
}

func fieldCounts(fields []skeletonField) map[byte]int {
	counts := make(map[byte]int, len(fields))
	for _, field := range fields {
		if field.letter == 'a' {
			continue
		}
		counts[field.letter] = field.count
	}
	return counts
}

// widthAdjustable lists the field letters whose run length follows the
// request. Minutes and seconds keep the entry's conventional two-digit runs.
var widthAdjustable = map[byte]bool{
	'G': true, 'y': true, 'M': true, 'L': true, 'd': true,
	'E': true, 'e': true, 'H': true, 'h': true, 'K': true, 'k': true,
}

// setFieldWidths resizes field runs in pattern to the requested counts,
// leaving quoted literal text untouched.
func setFieldWidths(pattern string, fields []skeletonField) string {
	widths := make(map[byte]int, len(fields))
	for _, field := range fields {
		if widthAdjustable[field.letter] {
			widths[field.letter] = field.count
		}
	}

	var b strings.Builder
	for i := 0; i < len(pattern); {
		ch := pattern[i]

		if ch == '\'' {
			end := quotedRunEnd(pattern, i)
			if end < 0 {
				b.WriteString(pattern[i:])
				break
			}
			b.WriteString(pattern[i:end])
			i = end
			continue
		}

		if isASCIILetter(ch) {
			count := 1
			for i+count < len(pattern) && pattern[i+count] == ch {
				count++
			}
			width := count
			if want, ok := widths[ch]; ok {
				width = want
			}
			b.WriteString(strings.Repeat(string(ch), width))
			i += count
			continue
		}

		b.WriteByte(ch)
		i++
	}
	return b.String()
}

// ensureDayPeriod reconciles a resolved time pattern with the effective
// cycle: 12-hour patterns carry a day period field, 24-hour patterns do not.
func ensureDayPeriod(pattern string, cycle HourCycle) string {
	hasPeriod := hasUnquotedField(pattern, 'a')
	switch cycle {
	case HourCycle12:
		if !hasPeriod {
			return pattern + " a"
		}
	case HourCycle24:
		if hasPeriod {
			return stripDayPeriod(pattern)
		}
	}
	return pattern
}

func hasUnquotedField(pattern string, letter byte) bool {
	for i := 0; i < len(pattern); i++ {
		if pattern[i] == '\'' {
			end := quotedRunEnd(pattern, i)
			if end < 0 {
				return false
			}
			i = end - 1
			continue
		}
		if pattern[i] == letter {
			return true
		}
	}
	return false
}

func stripDayPeriod(pattern string) string {
	var b strings.Builder
	for i := 0; i < len(pattern); i++ {
		ch := pattern[i]
		if ch == '\'' {
			end := quotedRunEnd(pattern, i)
			if end < 0 {
				b.WriteString(pattern[i:])
				break
			}
			b.WriteString(pattern[i:end])
			i = end - 1
			continue
		}
		if ch == 'a' {
			continue
		}
		b.WriteByte(ch)
	}
	return strings.TrimSpace(strings.ReplaceAll(b.String(), "  ", " "))
}
