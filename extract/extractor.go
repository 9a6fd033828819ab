// Package extract pulls typed keyword sets out of raw text with
// hand-built patterns tuned to Turkish academic regulations, and scores
// the overlap between two such sets. It is the non-semantic half of the
// hybrid retrieval signal.
package extract

import (
	"regexp"

	"github.com/poiesic/regulo/core"
)

// minEntityLength filters noise from the free-form suffix categories.
// Article numbers and the fixed-string categories are exempt.
const minEntityLength = 5

// word matches one Unicode word run; Go's \w is ASCII-only and would
// drop Turkish letters.
const word = `[\p{L}\p{N}]+`

type categoryPatterns struct {
	category core.EntityCategory
	filtered bool // drop matches at or under minEntityLength
	patterns []*regexp.Regexp
}

var patternTable = []categoryPatterns{
	{
		category: core.CategoryOrganization,
		patterns: compile(
			`(?i)Hacettepe\s+Üniversitesi`,
			`(?i)Hacettepe`,
			`(?i)H\.Ü\.`,
			`(?i)HÜ`,
		),
	},
	{
		category: core.CategoryFaculty,
		filtered: true,
		patterns: compile(`((?:` + word + `\s+){0,3}Fakültesi)`),
	},
	{
		category: core.CategoryDepartment,
		filtered: true,
		patterns: compile(
			`((?:`+word+`\s+){0,3}Mühendisliği)`,
			`((?:`+word+`\s+){0,3}Bölümü)`,
			`((?:`+word+`\s+){0,3}Anabilim Dalı)`,
		),
	},
	{
		category: core.CategoryProgram,
		filtered: true,
		patterns: compile(
			`((?:`+word+`\s+){0,4}Programı)`,
			`((?:`+word+`\s+){0,4}Program)`,
			`(Lisans Programı|Yüksek Lisans Programı|Doktora Programı)`,
			`(Önlisans Programı|Lisansüstü Program)`,
		),
	},
	{
		category: core.CategoryCourse,
		filtered: true,
		patterns: compile(
			`((?:`+word+`\s+){0,4}Dersi)`,
			`((?:`+word+`\s+){0,4}Kursu)`,
		),
	},
	{
		category: core.CategoryInstitute,
		filtered: true,
		patterns: compile(
			`((?:`+word+`\s+){0,4}Enstitüsü)`,
			`(Aşı Enstitüsü|Bilişim Enstitüsü|Kanser Enstitüsü|Nükleer Bilimler Enstitüsü)`,
			`(Nüfus Etütleri Enstitüsü|Sağlık Bilimleri Enstitüsü|Fen Bilimleri Enstitüsü)`,
			`(Sosyal Bilimler Enstitüsü|Eğitim Bilimleri Enstitüsü|Türkiyat Araştırmaları Enstitüsü)`,
		),
	},
	{
		category: core.CategoryResearchCenter,
		filtered: true,
		patterns: compile(
			// Abbreviations of well-known centers first.
			`(HATAM|HÜNİTEK|HÜNİKAL|IONOLAB|PDRMER)`,
			// Specific full names before the generic suffix pattern.
			`(İleri Teknolojiler Uygulama ve Araştırma Merkezi)`,
			`(HIV-AIDS Tedavi ve Araştırma Merkezi)`,
			`(İlaç ve Kozmetik Ar-Ge Laboratuvarı)`,
			`(Nörolojik ve Psikiyatrik Uygulama Merkezi)`,
			`(Hareket Analizi ve Podiatri Merkezi)`,
			`((?:`+word+`\s+){0,6}(?:Uygulama ve Araştırma Merkezi|Araştırma Merkezi|Merkezi))`,
			`(Hacettepe Teknokent|Teknokent)`,
			`((?:`+word+`\s+){0,4}Laboratuvarı)`,
		),
	},
	{
		category: core.CategoryDate,
		patterns: compile(
			`\b(19\d{2}|20\d{2})\b`,
			`\b(\d{1,2}[./]\d{1,2}[./]\d{2,4})\b`,
			`(?i)\b(\d{1,2}\s+(?:Ocak|Şubat|Mart|Nisan|Mayıs|Haziran|Temmuz|Ağustos|Eylül|Ekim|Kasım|Aralık)\s+\d{4})\b`,
		),
	},
	{
		category: core.CategoryLocation,
		// RE2's \b is ASCII-defined, so it is kept only where the
		// adjoining letter is ASCII. Tokens that begin or end with a
		// Turkish letter (İzmir, Polatlı) carry no guard on that side;
		// a \b there would never match.
		patterns: compile(
			`(?i)\b(Ankara|Bursa|Antalya)\b`,
			`(?i)(İstanbul|İzmir)\b`,
			`(?i)\b(Sıhhiye|Beytepe|Keçiören)\b`,
			`(?i)\b(Polatlı)`,
			`(?i)\b(Türkiye|Turkey)\b`,
			`(?i)\b(Kampüs|Yerleşke)\b`,
			`\b(Beytepe Yerleşkesi|Sıhhiye Yerleşkesi|Polatlı Yerleşkesi)\b`,
		),
	},
	{
		category: core.CategoryArticleNumber,
		patterns: compile(`(?i)Madde\s+(\d+)`),
	},
}

func compile(exprs ...string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(exprs))
	for i, expr := range exprs {
		res[i] = regexp.MustCompile(expr)
	}
	return res
}

// Extract runs every category's pattern list over the text and returns
// the deduplicated entity set. Extraction is total: any string input
// yields a well-formed set.
func Extract(text string) core.EntitySet {
	set := core.NewEntitySet()
	for _, cp := range patternTable {
		for _, re := range cp.patterns {
			for _, match := range re.FindAllStringSubmatch(text, -1) {
				value := match[0]
				if len(match) > 1 {
					value = match[1]
				}
				if cp.filtered && len([]rune(value)) <= minEntityLength {
					continue
				}
				set.Add(cp.category, value)
			}
		}
	}
	return set
}
