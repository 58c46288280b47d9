// Package common holds the constants and helpers shared by every explorer
// builder.
package common

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"explorergen/internal/config"
)

// Params are the tunable constants shared across explorers.
type Params struct {
	Tolerance         int
	ConsumptionSpells int
	IncomeSpells      int
	MapTargetTime     int
}

// Defaults returns the values the published explorers use.
func Defaults() Params {
	return Params{
		Tolerance:         5,
		ConsumptionSpells: 6,
		IncomeSpells:      7,
		MapTargetTime:     2019,
	}
}

// WithOverrides applies the non-zero fields of cfg.
func (p Params) WithOverrides(cfg config.ParamsConfig) Params {
	if cfg.Tolerance > 0 {
		p.Tolerance = cfg.Tolerance
	}
	if cfg.ConsumptionSpells > 0 {
		p.ConsumptionSpells = cfg.ConsumptionSpells
	}
	if cfg.IncomeSpells > 0 {
		p.IncomeSpells = cfg.IncomeSpells
	}
	if cfg.MapTargetTime > 0 {
		p.MapTargetTime = cfg.MapTargetTime
	}
	return p
}

// SpellSlugs lists the consumption then income spell slugs.
func (p Params) SpellSlugs() []string {
	slugs := make([]string, 0, p.ConsumptionSpells+p.IncomeSpells)
	for i := 1; i <= p.ConsumptionSpells; i++ {
		slugs = append(slugs, fmt.Sprintf("consumption_spell_%d", i))
	}
	for i := 1; i <= p.IncomeSpells; i++ {
		slugs = append(slugs, fmt.Sprintf("income_spell_%d", i))
	}
	return slugs
}

// Capitalize upper-cases the first letter and lower-cases the rest.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}

// Unique returns the distinct values in first-seen order.
func Unique(values []string) []string {
	seen := make(map[string]bool, len(values))
	var out []string
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
