// Command datefmt-gen regenerates bundle_data.go from a CLDR core data
// directory. It extracts the gregorian calendar symbols and patterns for the
// requested locales and emits them as Go data.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"sort"
	"strings"

	cldr "golang.org/x/text/unicode/cldr"
)

type generatorConfig struct {
	pkg      string
	out      string
	cldrPath string
	locales  []string
}

type stylePayload struct {
	Short  string
	Medium string
	Long   string
	Full   string
}

type bundlePayload struct {
	Locale           string
	MonthsWide       []string
	MonthsAbbrev     []string
	DaysWide         []string
	DaysAbbrev       []string
	Eras             []string
	AM               string
	PM               string
	PreferredHour    string
	DateFormats      stylePayload
	TimeFormats      stylePayload
	DateTimeFormats  stylePayload
	AvailableFormats map[string]string
}

type localeFlag struct {
	items []string
}

func (f *localeFlag) String() string {
	return strings.Join(f.items, ",")
}

func (f *localeFlag) Set(value string) error {
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		f.items = append(f.items, part)
	}
	return nil
}

func main() {
	cfg, err := parseFlags()
	if err != nil {
		reportError(err)
	}

	if err := run(cfg); err != nil {
		reportError(err)
	}
}

func reportError(err error) {
	fmt.Fprintf(os.Stderr, "datefmt-gen: %v\n", err)
	os.Exit(1)
}

func parseFlags() (generatorConfig, error) {
	var cfg generatorConfig
	var localeList localeFlag

	flag.StringVar(&cfg.pkg, "pkg", "datefmt", "package name for generated file")
	flag.StringVar(&cfg.out, "out", "bundle_data.go", "path to generated Go file")
	flag.StringVar(&cfg.cldrPath, "cldr", "", "path to CLDR core data directory (expects subdirectories like main/ and supplemental/)")
	flag.Var(&localeList, "locale", "locale to generate. Repeat flag or comma-separate to add more.")

	flag.Parse()

	if len(localeList.items) == 0 {
		return generatorConfig{}, errors.New("at least one -locale value is required")
	}

	for _, locale := range localeList.items {
		cfg.locales = append(cfg.locales, strings.ReplaceAll(locale, "_", "-"))
	}

	if cfg.cldrPath == "" {
		cfg.cldrPath = os.Getenv("CLDR_CORE_DIR")
	}

	if cfg.cldrPath == "" {
		return generatorConfig{}, errors.New("missing CLDR data directory (set -cldr or CLDR_CORE_DIR)")
	}

	return cfg, nil
}

func run(cfg generatorConfig) error {
	data, err := loadCLDR(cfg.cldrPath)
	if err != nil {
		return err
	}

	var bundles []bundlePayload
	for _, locale := range cfg.locales {
		payload, err := buildBundle(data, locale)
		if err != nil {
			return fmt.Errorf("build bundle for %s: %w", locale, err)
		}
		bundles = append(bundles, payload)
	}

	sort.Slice(bundles, func(i, j int) bool {
		return bundles[i].Locale < bundles[j].Locale
	})

	source, err := renderSource(cfg.pkg, bundles)
	if err != nil {
		return err
	}

	if err := ensureDir(cfg.out); err != nil {
		return err
	}

	return os.WriteFile(cfg.out, source, 0o644)
}

func loadCLDR(path string) (*cldr.CLDR, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat CLDR directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("CLDR path %q is not a directory", path)
	}

	var decoder cldr.Decoder
	decoder.SetSectionFilter("main", "supplemental")

	data, err := decoder.DecodePath(path)
	if err != nil {
		return nil, fmt.Errorf("decode CLDR data: %w", err)
	}
	return data, nil
}

func findLDML(data *cldr.CLDR, locale string) *cldr.LDML {
	if data == nil {
		return nil
	}
	candidate := strings.ReplaceAll(locale, "-", "_")
	for candidate != "" {
		if ldml := data.RawLDML(candidate); ldml != nil {
			return ldml
		}
		if idx := strings.LastIndex(candidate, "_"); idx >= 0 {
			candidate = candidate[:idx]
			continue
		}
		break
	}
	return data.RawLDML("root")
}

func buildBundle(data *cldr.CLDR, locale string) (bundlePayload, error) {
	payload := bundlePayload{
		Locale:           locale,
		AvailableFormats: make(map[string]string),
	}

	ldml := findLDML(data, locale)
	if ldml == nil || ldml.Dates == nil || ldml.Dates.Calendars == nil {
		return payload, errors.New("missing calendar data")
	}

	var calendar *cldr.Calendar
	for _, candidate := range ldml.Dates.Calendars.Calendar {
		if candidate != nil && candidate.Type == "gregorian" {
			calendar = candidate
			break
		}
	}
	if calendar == nil {
		return payload, errors.New("missing gregorian calendar")
	}

	extractMonths(calendar, &payload)
	extractDays(calendar, &payload)
	extractDayPeriods(calendar, &payload)
	extractEras(calendar, &payload)
	extractFormats(calendar, &payload)
	payload.PreferredHour = detectPreferredHour(payload.TimeFormats.Short)

	return payload, nil
}

var monthOrder = []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12"}

var dayOrder = []string{"sun", "mon", "tue", "wed", "thu", "fri", "sat"}

func extractMonths(calendar *cldr.Calendar, payload *bundlePayload) {
	if calendar.Months == nil {
		return
	}
	for _, context := range calendar.Months.MonthContext {
		if context == nil || context.Type != "format" {
			continue
		}
		for _, width := range context.MonthWidth {
			if width == nil {
				continue
			}
			names := make([]string, 0, len(monthOrder))
			byType := make(map[string]string, len(width.Month))
			for _, month := range width.Month {
				if month == nil {
					continue
				}
				byType[month.Type] = month.Data()
			}
			for _, key := range monthOrder {
				names = append(names, byType[key])
			}
			switch width.Type {
			case "wide":
				payload.MonthsWide = names
			case "abbreviated":
				payload.MonthsAbbrev = names
			}
		}
	}
}

func extractDays(calendar *cldr.Calendar, payload *bundlePayload) {
	if calendar.Days == nil {
		return
	}
	for _, context := range calendar.Days.DayContext {
		if context == nil || context.Type != "format" {
			continue
		}
		for _, width := range context.DayWidth {
			if width == nil {
				continue
			}
			byType := make(map[string]string, len(width.Day))
			for _, day := range width.Day {
				if day == nil {
					continue
				}
				byType[day.Type] = day.Data()
			}
			names := make([]string, 0, len(dayOrder))
			for _, key := range dayOrder {
				names = append(names, byType[key])
			}
			switch width.Type {
			case "wide":
				payload.DaysWide = names
			case "abbreviated":
				payload.DaysAbbrev = names
			}
		}
	}
}

func extractDayPeriods(calendar *cldr.Calendar, payload *bundlePayload) {
	if calendar.DayPeriods == nil {
		return
	}
	for _, context := range calendar.DayPeriods.DayPeriodContext {
		if context == nil || context.Type != "format" {
			continue
		}
		for _, width := range context.DayPeriodWidth {
			if width == nil || width.Type != "abbreviated" {
				continue
			}
			for _, period := range width.DayPeriod {
				if period == nil {
					continue
				}
				switch period.Type {
				case "am":
					payload.AM = period.Data()
				case "pm":
					payload.PM = period.Data()
				}
			}
		}
	}
}

func extractEras(calendar *cldr.Calendar, payload *bundlePayload) {
	if calendar.Eras == nil || calendar.Eras.EraAbbr == nil {
		return
	}
	byType := make(map[string]string, 2)
	for _, era := range calendar.Eras.EraAbbr.Era {
		if era == nil {
			continue
		}
		byType[era.Type] = era.Data()
	}
	payload.Eras = []string{byType["0"], byType["1"]}
}

func extractFormats(calendar *cldr.Calendar, payload *bundlePayload) {
	if calendar.DateFormats != nil {
		for _, length := range calendar.DateFormats.DateFormatLength {
			if length == nil {
				continue
			}
			for _, item := range length.DateFormat {
				if item == nil {
					continue
				}
				assignStyle(&payload.DateFormats, length.Type, firstPattern(item.Pattern))
			}
		}
	}

	if calendar.TimeFormats != nil {
		for _, length := range calendar.TimeFormats.TimeFormatLength {
			if length == nil {
				continue
			}
			for _, item := range length.TimeFormat {
				if item == nil {
					continue
				}
				assignStyle(&payload.TimeFormats, length.Type, firstPattern(item.Pattern))
			}
		}
	}

	if calendar.DateTimeFormats == nil {
		return
	}

	for _, length := range calendar.DateTimeFormats.DateTimeFormatLength {
		if length == nil {
			continue
		}
		for _, item := range length.DateTimeFormat {
			if item == nil {
				continue
			}
			assignStyle(&payload.DateTimeFormats, length.Type, firstPattern(item.Pattern))
		}
	}

	for _, available := range calendar.DateTimeFormats.AvailableFormats {
		if available == nil {
			continue
		}
		for _, item := range available.DateFormatItem {
			if item == nil || item.Id == "" {
				continue
			}
			if _, exists := payload.AvailableFormats[item.Id]; exists {
				continue
			}
			payload.AvailableFormats[item.Id] = item.Data()
		}
	}
}

func firstPattern(patterns []*struct {
	cldr.Common
	Numbers string `xml:"numbers,attr"`
	Count   string `xml:"count,attr"`
}) string {
	for _, pattern := range patterns {
		if pattern == nil {
			continue
		}
		if value := pattern.Data(); value != "" {
			return value
		}
	}
	return ""
}

func assignStyle(target *stylePayload, length, pattern string) {
	if pattern == "" {
		return
	}
	switch length {
	case "short":
		target.Short = pattern
	case "medium":
		target.Medium = pattern
	case "long":
		target.Long = pattern
	case "full":
		target.Full = pattern
	}
}

// detectPreferredHour infers the conventional hour cycle from the short time
// pattern, which always leads with the locale's preferred hour field.
func detectPreferredHour(shortTime string) string {
	for i := 0; i < len(shortTime); i++ {
		switch shortTime[i] {
		case 'h', 'K':
			return "h12"
		case 'H', 'k':
			return "h23"
		case '\'':
			for i++; i < len(shortTime) && shortTime[i] != '\''; i++ {
			}
		}
	}
	return "h23"
}

func renderSource(pkg string, bundles []bundlePayload) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("// Code generated by datefmt-gen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", pkg)

	buf.WriteString("func defaultBundles() []*Bundle {\n")
	buf.WriteString("\treturn []*Bundle{\n")
	for _, bundle := range bundles {
		buf.WriteString("\t\t{\n")
		fmt.Fprintf(&buf, "\t\t\tLocale: %q,\n", bundle.Locale)
		writeStringSlice(&buf, "MonthsWide", bundle.MonthsWide)
		writeStringSlice(&buf, "MonthsAbbrev", bundle.MonthsAbbrev)
		writeStringSlice(&buf, "DaysWide", bundle.DaysWide)
		writeStringSlice(&buf, "DaysAbbrev", bundle.DaysAbbrev)
		writeStringSlice(&buf, "Eras", bundle.Eras)
		if bundle.AM != "" || bundle.PM != "" {
			fmt.Fprintf(&buf, "\t\t\tPeriods: DayPeriods{AM: %q, PM: %q},\n", bundle.AM, bundle.PM)
		}
		fmt.Fprintf(&buf, "\t\t\tPreferredHour: %q,\n", bundle.PreferredHour)
		writeStylePatterns(&buf, "DateFormats", bundle.DateFormats)
		writeStylePatterns(&buf, "TimeFormats", bundle.TimeFormats)
		writeStylePatterns(&buf, "DateTimeFormats", bundle.DateTimeFormats)

		if len(bundle.AvailableFormats) > 0 {
			buf.WriteString("\t\t\tAvailableFormats: map[string]string{\n")
			keys := make([]string, 0, len(bundle.AvailableFormats))
			for key := range bundle.AvailableFormats {
				keys = append(keys, key)
			}
			sort.Strings(keys)
			for _, key := range keys {
				fmt.Fprintf(&buf, "\t\t\t\t%q: %q,\n", key, bundle.AvailableFormats[key])
			}
			buf.WriteString("\t\t\t},\n")
		}
		buf.WriteString("\t\t},\n")
	}
	buf.WriteString("\t}\n")
	buf.WriteString("}\n")

	return format.Source(buf.Bytes())
}

func writeStringSlice(buf *bytes.Buffer, field string, values []string) {
	if len(values) == 0 {
		return
	}
	fmt.Fprintf(buf, "\t\t\t%s: []string{", field)
	for i, value := range values {
		if i > 0 {
			buf.WriteString(", ")
		}
		fmt.Fprintf(buf, "%q", value)
	}
	buf.WriteString("},\n")
}

func writeStylePatterns(buf *bytes.Buffer, field string, patterns stylePayload) {
	if patterns.Short == "" && patterns.Medium == "" && patterns.Long == "" && patterns.Full == "" {
		return
	}
	fmt.Fprintf(buf, "\t\t\t%s: StylePatterns{\n", field)
	fmt.Fprintf(buf, "\t\t\t\tShort: %q,\n", patterns.Short)
	fmt.Fprintf(buf, "\t\t\t\tMedium: %q,\n", patterns.Medium)
	fmt.Fprintf(buf, "\t\t\t\tLong: %q,\n", patterns.Long)
	fmt.Fprintf(buf, "\t\t\t\tFull: %q,\n", patterns.Full)
	buf.WriteString("\t\t\t},\n")
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
