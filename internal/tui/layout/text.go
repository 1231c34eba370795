package layout

import (
	"regexp"
	"unicode/utf8"
)

// ansiRegex matches ANSI escape sequences.
var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// StripANSI removes ANSI escape codes from a string.
func StripANSI(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}

// VisibleLength returns the visible length of a string (excluding ANSI codes).
func VisibleLength(s string) int {
	return utf8.RuneCountInString(StripANSI(s))
}

// TruncateText cuts text to maxWidth runes, ending in the ellipsis.
// Returns the result and whether anything was cut.
func TruncateText(text string, maxWidth int, cfg TextConfig) (string, bool) {
	if maxWidth <= 0 {
		return "", text != ""
	}
	runes := []rune(text)
	if len(runes) <= maxWidth {
		return text, false
	}

	ellipsis := []rune(cfg.Ellipsis)
	if maxWidth <= len(ellipsis) {
		return string(ellipsis[:maxWidth]), true
	}
	return string(runes[:maxWidth-len(ellipsis)]) + cfg.Ellipsis, true
}

// TruncateMiddle cuts the middle out of text so that both ends stay
// readable, e.g. "https://exa…/page". Used for URLs.
func TruncateMiddle(text string, maxWidth int, cfg TextConfig) string {
	runes := []rune(text)
	if len(runes) <= maxWidth {
		return text
	}
	ellipsis := []rune(cfg.Ellipsis)
	keep := maxWidth - len(ellipsis)
	if keep < 2 {
		s, _ := TruncateText(text, maxWidth, cfg)
		return s
	}

	head := (keep + 1) / 2
	tail := keep - head
	return string(runes[:head]) + cfg.Ellipsis + string(runes[len(runes)-tail:])
}
