// Package branch populates a chart from a nested tree of child nodes.
package branch

import (
	"fmt"

	"github.com/awantoch/beemchart/chart"
)

// Branch is one child node: its id, its label, and its own children.
type Branch struct {
	ID       string
	Label    string
	Children []Branch
}

type frame struct {
	parent string
	b      Branch
}

// Expand adds, for every branch in order, a node with the default shape and
// an unlabelled edge from its parent, then descends into its children before
// moving on to the next sibling.
func Expand(c *chart.Chart, from string, branches []Branch) {
	stack := make([]frame, 0, len(branches))
	pushReversed(&stack, from, branches)
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		c.AddNode(f.b.ID, f.b.Label, "")
		c.AddEdge(f.parent, f.b.ID, "")
		pushReversed(&stack, f.b.ID, f.b.Children)
	}
}

// pushReversed pushes siblings last-first so they pop in sequence order.
func pushReversed(stack *[]frame, parent string, branches []Branch) {
	for i := len(branches) - 1; i >= 0; i-- {
		*stack = append(*stack, frame{parent: parent, b: branches[i]})
	}
}

// FromItems converts positional items such as [id, label] or
// [id, label, [sub items...]] into branches. Items that are not sequences or
// have fewer than two fields are skipped; a third field only counts as
// children when it is itself a sequence.
func FromItems(items []any) []Branch {
	var out []Branch
	for _, item := range items {
		fields, ok := asSlice(item)
		if !ok || len(fields) < 2 {
			continue
		}
		b := Branch{ID: toString(fields[0]), Label: toString(fields[1])}
		if len(fields) == 3 {
			if sub, ok := asSlice(fields[2]); ok {
				b.Children = FromItems(sub)
			}
		}
		out = append(out, b)
	}
	return out
}

// ExpandItems is Expand over positional items.
func ExpandItems(c *chart.Chart, from string, items []any) {
	Expand(c, from, FromItems(items))
}

func asSlice(v any) ([]any, bool) {
	switch x := v.(type) {
	case []any:
		return x, true
	case []string:
		out := make([]any, len(x))
		for i, s := range x {
			out[i] = s
		}
		return out, true
	default:
		return nil, false
	}
}

func toString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}
