package datefmt

import (
	"strings"

	"golang.org/x/text/language"
)

// canonicalTag normalizes a locale identifier to its canonical BCP 47 tag
// form. Underscores are treated as hyphens and casing is normalized, so
// "en_us", "EN-US" and "en-US" all canonicalize to the same tag. Inputs the
// tag parser rejects are kept in their trimmed, hyphenated form so they still
// produce stable cache keys.
func canonicalTag(locale string) string {
	normalized := strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
	if normalized == "" {
		return ""
	}

	tag, err := language.Parse(normalized)
	if err != nil {
		return normalized
	}

	value := tag.String()
	if value == "" || value == "und" {
		return normalized
	}
	return value
}

func localeParentTag(locale string) string {
	if locale == "" {
		return ""
	}

	tag, err := language.Parse(locale)
	if err == nil {
		parent := tag.Parent()
		if parent == language.Und {
			return ""
		}
		value := parent.String()
		if value == "" || value == "und" {
			return ""
		}
		return value
	}

	if idx := strings.LastIndex(locale, "-"); idx > 0 {
		return locale[:idx]
	}

	return ""
}

// localeParentChain returns the parent locales for the given tag, ordered
// from closest parent to root. Bundle resolution walks this chain so that
// "en-US" picks up "en" data when no region-specific bundle exists.
func localeParentChain(locale string) []string {
	if locale == "" {
		return nil
	}

	var chain []string
	seen := make(map[string]struct{}, 4)

	if tag, err := language.Parse(locale); err == nil {
		for parent := tag.Parent(); parent != language.Und; parent = parent.Parent() {
			parentValue := parent.String()
			if parentValue == "" || parentValue == "und" {
				break
			}
			if _, exists := seen[parentValue]; exists {
				break
			}
			seen[parentValue] = struct{}{}
			chain = append(chain, parentValue)
		}
	}

	for current := localeParentTag(locale); current != ""; current = localeParentTag(current) {
		if _, exists := seen[current]; exists {
			continue
		}
		seen[current] = struct{}{}
		chain = append(chain, current)
	}

	return chain
}
