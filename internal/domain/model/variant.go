package model

import "strings"

// DefaultVariant is used whenever a requested variant cannot be resolved.
const DefaultVariant = "blue"

// KnownVariants enumerates the five documented USD/ARS variants.
var KnownVariants = []string{
	"blue",
	"oficial",
	"bolsa",
	"contado con liqui",
	"turista",
}

// variantAliases maps short request keys to canonical quote-set keys.
// Everything not listed resolves to itself.
var variantAliases = map[string]string{
	"liqui": "contado con liqui",
}

// displayNames maps request keys to the label used in report headers.
var displayNames = map[string]string{
	"blue":    "Blue",
	"oficial": "Oficial",
	"bolsa":   "Bolsa",
	"liqui":   "CCL",
	"turista": "Turista",
}

// CanonicalVariant lowercases a requested variant and resolves aliases.
func CanonicalVariant(variant string) string {
	key := strings.ToLower(strings.TrimSpace(variant))
	if canonical, ok := variantAliases[key]; ok {
		return canonical
	}
	return key
}

// DisplayName returns the header label for a requested variant, passing
// unknown keys through as-is.
func DisplayName(variant string) string {
	if name, ok := displayNames[strings.ToLower(variant)]; ok {
		return name
	}
	return variant
}
