package ingest

import (
	"regexp"
	"strings"
)

var (
	pageNumberRe = regexp.MustCompile(`^\s*(?:\d+|(?i:sayfa|page)\s+\d+)\s*$`)
	itemStartRe  = regexp.MustCompile(`(?i)^(madde\s+\d+|\d+\.|[\p{L}]\)|geçici\s+madde)`)
	headingRe    = regexp.MustCompile(`^[\p{Lu} \d.,:-]{5,}$`)
	multiSpaceRe = regexp.MustCompile(`[ \t]+`)
	multiBlankRe = regexp.MustCompile(`\n{3,}`)
)

// CleanText normalizes text extracted from regulation documents.
// It drops page-number lines, repairs words hyphenated across line
// breaks, and rejoins sentences that PDF extraction wrapped, while
// keeping paragraph breaks and item starts such as "Madde 5" intact.
func CleanText(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	var out []string
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			out = append(out, "")
			continue
		}
		if pageNumberRe.MatchString(trimmed) {
			continue
		}

		if len(out) > 0 {
			last := out[len(out)-1]
			if joinsWithPrevious(last, trimmed) {
				if strings.HasSuffix(last, "-") {
					out[len(out)-1] = strings.TrimSuffix(last, "-") + trimmed
				} else {
					out[len(out)-1] = last + " " + trimmed
				}
				continue
			}
		}
		out = append(out, trimmed)
	}

	joined := strings.Join(out, "\n")
	joined = multiSpaceRe.ReplaceAllString(joined, " ")
	joined = multiBlankRe.ReplaceAllString(joined, "\n\n")
	return strings.TrimSpace(joined)
}

// joinsWithPrevious reports whether a line is the continuation of the
// previous one rather than a new paragraph, article or list item.
func joinsWithPrevious(previous, line string) bool {
	if previous == "" {
		return false
	}
	if endsSentence(previous) {
		return false
	}
	if itemStartRe.MatchString(line) || headingRe.MatchString(line) {
		return false
	}
	return true
}

func endsSentence(line string) bool {
	runes := []rune(line)
	if len(runes) == 0 {
		return false
	}
	return strings.ContainsRune(".!?:;", runes[len(runes)-1])
}
