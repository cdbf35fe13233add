package respond

import (
	"regexp"
	"strings"
)

const (
	lawExcerptLimit  = 200
	caseExcerptLimit = 300
	ellipsis         = "..."
)

var (
	paragraphSplit = regexp.MustCompile(`\n+`)
	// sectionEnd marks the start of the next enumerated judgment section,
	// e.g. "二、".
	sectionEnd = regexp.MustCompile(`[一二三四五六七八九十]、`)
)

// LawExcerpt condenses a law body to at most 200 characters: short bodies
// return verbatim, otherwise the longest paragraph is preferred and
// truncated with an ellipsis if still too long.
func LawExcerpt(content string) string {
	runes := []rune(content)
	if len(runes) <= lawExcerptLimit {
		return content
	}

	paragraphs := paragraphSplit.Split(content, -1)
	if len(paragraphs) <= 1 {
		return string(runes[:lawExcerptLimit]) + ellipsis
	}

	longest := paragraphs[0]
	for _, p := range paragraphs[1:] {
		if len([]rune(p)) > len([]rune(longest)) {
			longest = p
		}
	}
	longRunes := []rune(longest)
	if len(longRunes) <= lawExcerptLimit {
		return longest
	}
	return string(longRunes[:lawExcerptLimit]) + ellipsis
}

// CaseExcerpt condenses a judgment body to at most 300 characters.  Short
// bodies return verbatim.  Otherwise the 理由 (reasoning) section is
// preferred, then 主文 (holding), each cut at the next enumerated section
// heading; with neither present the leading 300 characters are used.
func CaseExcerpt(content string) string {
	runes := []rune(content)
	if len(runes) <= caseExcerptLimit {
		return content
	}

	if section, ok := extractSection(content, "理由"); ok {
		return clip(section, caseExcerptLimit)
	}
	if section, ok := extractSection(content, "主文"); ok {
		return clip(section, caseExcerptLimit)
	}
	return string(runes[:caseExcerptLimit]) + ellipsis
}

// extractSection returns the text between the first occurrence of heading
// and the next enumerated section marker (or end of text), trimmed.
func extractSection(content, heading string) (string, bool) {
	i := strings.Index(content, heading)
	if i < 0 {
		return "", false
	}
	rest := content[i+len(heading):]
	if loc := sectionEnd.FindStringIndex(rest); loc != nil {
		rest = rest[:loc[0]]
	}
	return strings.TrimSpace(rest), true
}

func clip(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + ellipsis
}
