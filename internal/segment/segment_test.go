package segment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codelens/codelens/internal/segment"
)

func TestSplit_SingleDiagram(t *testing.T) {
	text := "Intro text\n```mermaid\nA-->B\n```\nOutro text"

	segments := segment.Split(text)

	require.Len(t, segments, 3)
	assert.Equal(t, segment.Segment{Kind: segment.Prose, Text: "Intro text\n"}, segments[0])
	assert.Equal(t, segment.Segment{Kind: segment.Diagram, Text: "A-->B"}, segments[1])
	assert.Equal(t, segment.Segment{Kind: segment.Prose, Text: "\nOutro text"}, segments[2])
}

func TestSplit_NoFences(t *testing.T) {
	text := "# Report\n\nJust prose, no diagrams here.\n"

	segments := segment.Split(text)

	require.Len(t, segments, 1)
	assert.Equal(t, segment.Prose, segments[0].Kind)
	assert.Equal(t, text, segments[0].Text)
}

func TestSplit_EmptyInput(t *testing.T) {
	segments := segment.Split("")

	require.Len(t, segments, 1)
	assert.Equal(t, segment.Segment{Kind: segment.Prose, Text: ""}, segments[0])
}

func TestSplit_AdjacentFences(t *testing.T) {
	text := "```mermaid\nA-->B\n```" + "```mermaid\nC-->D\n```"

	segments := segment.Split(text)

	require.Len(t, segments, 5)
	assert.Equal(t, segment.Segment{Kind: segment.Prose, Text: ""}, segments[0])
	assert.Equal(t, segment.Segment{Kind: segment.Diagram, Text: "A-->B"}, segments[1])
	assert.Equal(t, segment.Segment{Kind: segment.Prose, Text: ""}, segments[2])
	assert.Equal(t, segment.Segment{Kind: segment.Diagram, Text: "C-->D"}, segments[3])
	assert.Equal(t, segment.Segment{Kind: segment.Prose, Text: ""}, segments[4])
}

func TestSplit_UnterminatedFenceStaysProse(t *testing.T) {
	text := "Before\n```mermaid\nA-->B\n"

	segments := segment.Split(text)

	require.Len(t, segments, 1)
	assert.Equal(t, segment.Prose, segments[0].Kind)
	assert.Equal(t, text, segments[0].Text)
}

func TestSplit_NonMermaidFencesAreProse(t *testing.T) {
	text := "Look:\n```python\nprint(1)\n```\ndone"

	segments := segment.Split(text)

	require.Len(t, segments, 1)
	assert.Equal(t, segment.Prose, segments[0].Kind)
}

func TestSplit_Alternation(t *testing.T) {
	inputs := []string{
		"a\n```mermaid\nA-->B\n```\nb\n```mermaid\nC-->D\n```\nc",
		"```mermaid\nA-->B\n```",
		"plain",
		"```mermaid\nA-->B\n```tail\n```mermaid\nC-->D\n```",
	}

	for _, text := range inputs {
		segments := segment.Split(text)
		for i, s := range segments {
			if i%2 == 0 {
				assert.Equal(t, segment.Prose, s.Kind, "input %q index %d", text, i)
			} else {
				assert.Equal(t, segment.Diagram, s.Kind, "input %q index %d", text, i)
			}
		}
	}
}

func TestSplit_TrimsDiagramInterior(t *testing.T) {
	text := "```mermaid\n  graph LR\n  A-->B  \n```"

	segments := segment.Split(text)

	require.Len(t, segments, 3)
	assert.Equal(t, "graph LR\n  A-->B", segments[1].Text)
}

func TestJoin_RoundTrip(t *testing.T) {
	inputs := []string{
		"Intro text\n```mermaid\nA-->B\n```\nOutro text",
		"a\n```mermaid\nsequenceDiagram\nA->>B: hi\n```\nb\n```mermaid\ngraph LR\nC-->D\n```\nc",
		"```mermaid\nA-->B\n```",
		"no diagrams at all",
		"",
	}

	for _, text := range inputs {
		assert.Equal(t, text, segment.Join(segment.Split(text)), "input %q", text)
	}
}

func TestDiagrams(t *testing.T) {
	text := "a\n```mermaid\nA-->B\n```\nb\n```mermaid\nC-->D\n```\nc"

	diagrams := segment.Diagrams(segment.Split(text))

	require.Len(t, diagrams, 2)
	assert.Equal(t, "A-->B", diagrams[0].Text)
	assert.Equal(t, "C-->D", diagrams[1].Text)
}
