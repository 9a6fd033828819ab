// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package retrieve

import (
	"strings"
	"unicode"

	"github.com/poiesic/regulo/core"
)

// AuthorityRule maps a filename fragment to a static score multiplier.
// Rules are checked in order; the first match wins.
type AuthorityRule struct {
	Match      string
	Multiplier float64
}

// BoostRule lifts a document type when the query signals interest in
// it. Only one boost ever applies to a chunk.
type BoostRule struct {
	Match    string
	Keywords []string
	Factor   float64
}

// DefaultAuthorityRules rank regulation documents by how binding they
// are. Binding regulations outrank directives; ranking announcements
// trail everything.
var DefaultAuthorityRules = []AuthorityRule{
	{Match: "EĞİTİM-ÖĞRETİM", Multiplier: 1.25},
	{Match: "YÖNETMELİK", Multiplier: 1.10},
	{Match: "YÖNERGE", Multiplier: 1.0},
	{Match: "SIRALAMASI", Multiplier: 0.85},
}

// DefaultBoostRules promote otherwise low-authority documents when the
// query is clearly about their subject.
var DefaultBoostRules = []BoostRule{
	{
		Match:    "SIRALAMASI",
		Keywords: []string{"sıralama", "derece", "şeref", "onur", "başarı sıralaması", "mezuniyet sıralaması"},
		Factor:   1.5,
	},
	{
		Match:    "YATAY",
		Keywords: []string{"yatay geçiş", "kurumlar arası", "kurum içi geçiş"},
		Factor:   1.5,
	},
}

// authorityMultiplier resolves the final authority factor for a chunk.
// The source filename picks the base multiplier; if the query contains
// a boost keyword for that document type, the boost applies once and
// no further rules are consulted.
func authorityMultiplier(source, query string, rules []AuthorityRule, boosts []BoostRule) float64 {
	upperSource := strings.ToUpperSpecial(unicode.TurkishCase, source)
	normalizedQuery := core.NormalizeQuery(query)

	multiplier := 1.0
	for _, rule := range rules {
		if strings.Contains(upperSource, rule.Match) {
			multiplier = rule.Multiplier
			break
		}
	}

	for _, boost := range boosts {
		if !strings.Contains(upperSource, boost.Match) {
			continue
		}
		for _, keyword := range boost.Keywords {
			if strings.Contains(normalizedQuery, keyword) {
				return multiplier * boost.Factor
			}
		}
	}

	return multiplier
}
