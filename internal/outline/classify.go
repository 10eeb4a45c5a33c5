package outline

import (
	"iter"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Kind tags a classified line.
type Kind int

const (
	KindBody Kind = iota
	KindSection
	KindSubsection
)

func (k Kind) String() string {
	switch k {
	case KindSection:
		return "section"
	case KindSubsection:
		return "subsection"
	default:
		return "body"
	}
}

// Line is a trimmed input line with its classification. For headings, Text
// is the heading title with numbering and trailing colon removed.
type Line struct {
	Kind Kind
	Text string
}

// minBodyRunes is the shortest line kept as body text. Shorter lines are page
// numbers, running headers and similar furniture.
const minBodyRunes = 4

var (
	// "1.2 Title", "1.2. Title", "1.2、Title", optional trailing colon.
	subsectionPattern = regexp.MustCompile(`^\d+\.\d+[.、]?\s*[^\d]+\s*[：:]?`)
	subsectionPrefix  = regexp.MustCompile(`^\d+\.\d+[.、]?\s*`)

	// "1 Title", "1. Title", "1、Title". Also satisfied by "1.2 Title", so it is
	// only consulted after subsectionPattern fails.
	sectionPattern = regexp.MustCompile(`^\d+[.、]?\s*[^\d]+\s*[：:]?`)
	sectionPrefix  = regexp.MustCompile(`^\d+[.、]?\s*`)

	trailingColon = regexp.MustCompile(`[：:]$`)
)

// ClassifyLine classifies a single line. The boolean is false when the line
// carries no signal: empty after trimming, or too short to be body text.
func ClassifyLine(raw string) (Line, bool) {
	line := strings.TrimSpace(raw)
	if line == "" {
		return Line{}, false
	}

	if subsectionPattern.MatchString(line) {
		return Line{Kind: KindSubsection, Text: headingText(line, subsectionPrefix)}, true
	}
	if sectionPattern.MatchString(line) {
		return Line{Kind: KindSection, Text: headingText(line, sectionPrefix)}, true
	}
	if utf8.RuneCountInString(line) < minBodyRunes {
		return Line{}, false
	}
	return Line{Kind: KindBody, Text: line}, true
}

func headingText(line string, prefix *regexp.Regexp) string {
	t := prefix.ReplaceAllString(line, "")
	t = trailingColon.ReplaceAllString(t, "")
	return strings.TrimSpace(t)
}

// Classify splits normalized text into lines and yields the ones that carry
// signal, in order.
func Classify(text string) iter.Seq[Line] {
	return func(yield func(Line) bool) {
		for raw := range strings.SplitSeq(text, "\n") {
			l, ok := ClassifyLine(raw)
			if !ok {
				continue
			}
			if !yield(l) {
				return
			}
		}
	}
}
