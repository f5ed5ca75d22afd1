// Package chart accumulates Mermaid diagram declarations and renders them as
// Mermaid source text.
package chart

import (
	"io"
	"strings"

	"github.com/awantoch/beemchart/constants"
)

// Direction is a flowchart layout direction. Values outside the four
// constants are passed through verbatim.
type Direction string

const (
	TopDown   Direction = "TD"
	LeftRight Direction = "LR"
	BottomTop Direction = "BT"
	RightLeft Direction = "RL"
)

// KindFlowchart is the only diagram kind whose header carries a direction.
const KindFlowchart = constants.KindFlowchart

const (
	openBrackets  = "([{<"
	closeBrackets = ")]}>"
)

// Chart holds a diagram header and its ordered declaration lines. The header
// is never stored in lines; Render synthesizes it.
//
// A Chart is meant for a single owner and is not safe for concurrent use.
type Chart struct {
	Kind      string
	Direction Direction
	lines     []string
}

// New creates an empty chart. Kind and direction are not validated; empty
// values fall back to "flowchart" and "TD".
func New(kind string, dir Direction) *Chart {
	if kind == "" {
		kind = KindFlowchart
	}
	if dir == "" {
		dir = constants.DirectionDefault
	}
	return &Chart{Kind: kind, Direction: dir}
}

// NewFlowchart creates an empty flowchart with the given direction.
func NewFlowchart(dir Direction) *Chart {
	return New(KindFlowchart, dir)
}

// Default creates an empty top-down flowchart.
func Default() *Chart {
	return New(KindFlowchart, TopDown)
}

// AddNode appends a node declaration. An empty label yields the bare id.
// Otherwise the first and last characters of shape bracket the label when
// they are valid opening and closing glyphs; any other shape falls back to
// square brackets. An empty shape means "[]".
func (c *Chart) AddNode(id, label, shape string) {
	if label == "" {
		c.lines = append(c.lines, id)
		return
	}
	if shape == "" {
		shape = constants.ShapeDefault
	}
	left, right := shapeBounds(shape)
	c.lines = append(c.lines, id+left+label+right)
}

// shapeBounds returns the opening and closing glyphs for shape, or "[" and
// "]" when shape does not start and end with bracket characters.
func shapeBounds(shape string) (string, string) {
	if len(shape) >= 2 {
		first, last := shape[:1], shape[len(shape)-1:]
		if strings.Contains(openBrackets, first) && strings.Contains(closeBrackets, last) {
			return first, last
		}
	}
	return "[", "]"
}

// AddEdge appends an arrow from one node to another, labelled when text is
// non-empty.
func (c *Chart) AddEdge(from, to, text string) {
	if text != "" {
		c.lines = append(c.lines, from+" -->|"+text+"| "+to)
		return
	}
	c.lines = append(c.lines, from+" --> "+to)
}

// Header returns the first line of the rendered diagram.
func (c *Chart) Header() string {
	if c.Kind == KindFlowchart {
		return KindFlowchart + " " + string(c.Direction)
	}
	return c.Kind
}

// Render returns the header followed by every accumulated line, joined by
// newlines. It does not modify the chart.
func (c *Chart) Render() string {
	var sb strings.Builder
	sb.WriteString(c.Header())
	for _, line := range c.lines {
		sb.WriteByte('\n')
		sb.WriteString(line)
	}
	return sb.String()
}

// WriteTo writes the rendered diagram to w.
func (c *Chart) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, c.Render())
	return int64(n), err
}

// Len reports the number of declaration lines, excluding the header.
func (c *Chart) Len() int {
	return len(c.lines)
}

// Lines returns a copy of the declaration lines in insertion order.
func (c *Chart) Lines() []string {
	out := make([]string, len(c.lines))
	copy(out, c.lines)
	return out
}
