// Package segment splits raw LLM report text into an ordered sequence of
// prose and mermaid-diagram segments. Both the interactive view and the HTML
// exporter consume the same sequence, so any change here affects both.
package segment

import (
	"regexp"
	"strings"
)

// Kind tags a segment as markdown prose or mermaid diagram source.
type Kind string

const (
	Prose   Kind = "prose"
	Diagram Kind = "diagram"
)

// Segment is one atomic unit of the analysis report. Text holds markdown for
// Prose segments and the trimmed fence interior for Diagram segments.
type Segment struct {
	Kind Kind
	Text string
}

// A diagram fence is ```mermaid on its own line, an interior, and a closing
// ``` line. Non-greedy, so nested fences of the same kind are not handled.
var fencePattern = regexp.MustCompile("(?s)```mermaid\n(.*?)\n```")

// Split cuts text into alternating Prose and Diagram segments, preserving
// document order. Text before, between and after fences becomes Prose,
// including empty strings where two fences are adjacent. An input with no
// fences yields a single Prose segment holding the whole text; an
// unterminated fence at the end of input is left as trailing prose.
func Split(text string) []Segment {
	matches := fencePattern.FindAllStringSubmatchIndex(text, -1)

	segments := make([]Segment, 0, 2*len(matches)+1)
	last := 0
	for _, m := range matches {
		segments = append(segments, Segment{Kind: Prose, Text: text[last:m[0]]})
		segments = append(segments, Segment{Kind: Diagram, Text: strings.TrimSpace(text[m[2]:m[3]])})
		last = m[1]
	}
	return append(segments, Segment{Kind: Prose, Text: text[last:]})
}

// Join reassembles a segment sequence into response text, re-wrapping
// Diagram segments in their fence markers. For input whose fences are
// well-formed, Join(Split(text)) == text.
func Join(segments []Segment) string {
	var b strings.Builder
	for _, s := range segments {
		if s.Kind == Diagram {
			b.WriteString("```mermaid\n")
			b.WriteString(s.Text)
			b.WriteString("\n```")
			continue
		}
		b.WriteString(s.Text)
	}
	return b.String()
}

// Diagrams returns only the Diagram segments, in document order.
func Diagrams(segments []Segment) []Segment {
	var out []Segment
	for _, s := range segments {
		if s.Kind == Diagram {
			out = append(out, s)
		}
	}
	return out
}
