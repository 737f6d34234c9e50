package store

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/hyperjump/annai/internal/models"
)

var colorPattern = regexp.MustCompile(`['"]color['"]\s*:\s*['"]([^'"]+)['"]`)

// ParseModelInfo extracts structured detail from the vehicle model blob. The
// column mixes JSON-ish dictionaries with free text, so parsing is best
// effort and never fails: a clean JSON object yields its nested colors, and
// anything else falls back to a regex scan for color entries.
func ParseModelInfo(raw string) models.ModelInfo {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return models.ModelInfo{}
	}

	var decoded map[string]any
	if err := json.Unmarshal([]byte(raw), &decoded); err == nil {
		return models.ModelInfo{Colors: nestedColors(decoded)}
	}

	var colors []string
	for _, m := range colorPattern.FindAllStringSubmatch(raw, -1) {
		colors = append(colors, m[1])
	}
	return models.ModelInfo{Colors: colors}
}

func nestedColors(decoded map[string]any) []string {
	var colors []string
	for _, v := range decoded {
		entry, ok := v.(map[string]any)
		if !ok {
			continue
		}
		if c, ok := entry["color"].(string); ok && c != "" {
			colors = append(colors, c)
		}
	}
	return colors
}
