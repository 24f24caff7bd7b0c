package message

import (
	"strings"

	"github.com/LerianStudio/lib-fluent/fluent/format"
)

// Subject nouns used in block labels and descriptions.
const (
	NounValue        = "value"
	NounDynamic      = "dynamic"
	NounError        = "error"
	NounErrorMessage = "error's message"
)

// QualifierDifferentFrom is the expected-block qualifier of negated equality
// and identity checks.
const QualifierDifferentFrom = "different from"

// subjectPlaceholder is replaced by "checked <noun>" in templates.
const subjectPlaceholder = "{subject}"

// Template is the pair of descriptions a predicate reports with. Either text
// may use the {subject} placeholder, e.g. "The {subject} is not strictly negative.".
type Template struct {
	Positive string
	Negated  string
}

// Describe returns the description for the given polarity.
func (t Template) Describe(noun string, negated bool) string {
	text := t.Positive
	if negated {
		text = t.Negated
	}

	return strings.ReplaceAll(text, subjectPlaceholder, "checked "+noun)
}

// Message is the content of one diagnostic before rendering.
type Message struct {
	Custom      string
	Description string
	Noun        string
	Checked     any
	HasExpected bool
	Expected    any
	// Qualifier is appended to the expected label, e.g. "different from".
	Qualifier string
}

// Lines renders m line by line using f.
func (m Message) Lines(f format.Formatter) []string {
	noun := m.Noun
	if noun == "" {
		noun = NounValue
	}

	lines := make([]string, 0, 6)
	lines = append(lines,
		m.Custom,
		m.Description,
		"The checked "+noun+":",
		block(f, m.Checked),
	)

	if m.HasExpected {
		label := "The expected " + noun + ":"
		if m.Qualifier != "" {
			label += " " + m.Qualifier
		}

		lines = append(lines, label, block(f, m.Expected))
	}

	return lines
}

// Build renders m as a single newline-separated string.
func (m Message) Build(f format.Formatter) string {
	return strings.Join(m.Lines(f), "\n")
}

func block(f format.Formatter, v any) string {
	return "\t[" + f.Format(v) + "]"
}
