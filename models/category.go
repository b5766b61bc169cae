// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// Category classifies a macro by the application it automates.
type Category string

const (
	CategoryNone       Category = ""
	CategoryWord       Category = "Word"
	CategoryExcel      Category = "Excel"
	CategoryMultimedia Category = "Multimedia"
	CategoryPDF        Category = "PDF"
	CategoryNetwork    Category = "Network"
	CategoryTools      Category = "Tools"
)

// Categories lists the known categories in display order.
var Categories = []Category{
	CategoryWord,
	CategoryExcel,
	CategoryMultimedia,
	CategoryPDF,
	CategoryNetwork,
	CategoryTools,
}

// categoryAliases maps lower-cased spellings to the canonical category.
var categoryAliases = map[string]Category{
	"word":       CategoryWord,
	"excel":      CategoryExcel,
	"multimedia": CategoryMultimedia,
	"pdf":        CategoryPDF,
	"network":    CategoryNetwork,
	"netzwerk":   CategoryNetwork,
	"tools":      CategoryTools,
}

// ParseCategory normalizes raw into a known category. Unknown values are
// returned trimmed with ok set to false.
func ParseCategory(raw string) (Category, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return CategoryNone, true
	}
	if c, ok := categoryAliases[strings.ToLower(raw)]; ok {
		return c, true
	}
	return Category(raw), false
}

// IsKnown reports whether c is empty or one of [Categories].
func (c Category) IsKnown() bool {
	_, ok := ParseCategory(string(c))
	return ok
}
