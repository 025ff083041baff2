package business

import (
	"strings"
)

// ParseSKUs splits a comma separated list, trims entries, drops empty ones, left-pads
// with zeros to width (when width > 0) and removes duplicates keeping first occurrence.
func ParseSKUs(raw string, width int) []string {
	parts := strings.Split(raw, ",")
	skus := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))
	for _, p := range parts {
		sku := FormatSKU(p, width)
		if sku == "" {
			continue
		}
		if _, ok := seen[sku]; ok {
			continue
		}
		seen[sku] = struct{}{}
		skus = append(skus, sku)
	}
	return skus
}

// FormatSKU trims sku and left-pads it with zeros to width. Blank input stays blank.
func FormatSKU(sku string, width int) string {
	sku = strings.TrimSpace(sku)
	if sku == "" || len(sku) >= width {
		return sku
	}
	return strings.Repeat("0", width-len(sku)) + sku
}
