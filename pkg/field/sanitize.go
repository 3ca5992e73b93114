package field

import (
	"html"
	"strconv"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	stripPolicyOnce sync.Once
	stripPolicy     *bluemonday.Policy
)

func strictSanitizer() *bluemonday.Policy {
	stripPolicyOnce.Do(func() {
		stripPolicy = bluemonday.StrictPolicy()
	})
	return stripPolicy
}

// StripTags removes every HTML element from raw, keeping only text content.
// Script and style bodies are dropped entirely. The result is plain text with
// entities decoded, so applying StripTags twice yields the same output.
func StripTags(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	cleaned := strictSanitizer().Sanitize(trimmed)
	return strings.TrimSpace(html.UnescapeString(cleaned))
}

// SanitizeNumber parses raw as a decimal number and clamps it to the optional
// bounds. Unparseable or absent input becomes "".
func SanitizeNumber(raw string, min, max *float64) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return ""
	}
	if min != nil && value < *min {
		value = *min
	}
	if max != nil && value > *max {
		value = *max
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// SanitizeCheckbox normalises raw to "1" for truthy submissions and "" for
// everything else, matching how browsers submit checked boxes.
func SanitizeCheckbox(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "on", "yes", "checked":
		return "1"
	default:
		return ""
	}
}

// SanitizeChoice returns raw when it matches one of the permitted choices and
// "" otherwise. Unknown submissions never reach storage.
func SanitizeChoice(raw string, choices []Choice) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	for _, choice := range choices {
		if choice.Value == trimmed {
			return trimmed
		}
	}
	return ""
}
