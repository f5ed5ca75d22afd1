// Package document reads declarative chart documents (YAML or JSON) and
// replays them onto a chart.
package document

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/awantoch/beemchart/branch"
	"github.com/awantoch/beemchart/chart"
)

// ErrUnknownStep is returned by Build for a step that is not a node, an
// edge or a branch.
var ErrUnknownStep = errors.New("step is not a node, edge or branch")

// Document is a chart description. Steps are applied in order.
type Document struct {
	Kind      string `yaml:"kind,omitempty" json:"kind,omitempty"`
	Direction string `yaml:"direction,omitempty" json:"direction,omitempty"`
	Title     string `yaml:"title,omitempty" json:"title,omitempty"`
	Steps     []Step `yaml:"steps" json:"steps,omitempty"`

	// raw is the generic tree the document was decoded from, kept so
	// validation sees fields the struct would drop.
	raw any
}

// Step is exactly one of:
//   - a node: node, optional label and shape
//   - an edge: from, to, optional text
//   - a branch: from plus positional branch items
type Step struct {
	Node   string `yaml:"node,omitempty" json:"node,omitempty"`
	Label  string `yaml:"label,omitempty" json:"label,omitempty"`
	Shape  string `yaml:"shape,omitempty" json:"shape,omitempty"`
	From   string `yaml:"from,omitempty" json:"from,omitempty"`
	To     string `yaml:"to,omitempty" json:"to,omitempty"`
	Text   string `yaml:"text,omitempty" json:"text,omitempty"`
	Branch []any  `yaml:"branch,omitempty,flow" json:"branch,omitempty"`
}

func (s Step) IsNode() bool   { return s.Node != "" }
func (s Step) IsEdge() bool   { return s.Node == "" && s.From != "" && s.To != "" }
func (s Step) IsBranch() bool { return s.Node == "" && s.From != "" && s.To == "" && s.Branch != nil }

// plainStep has Step's fields without its marshalers.
type plainStep Step

// branchStep keeps an empty branch list when encoded; omitempty would turn
// the step into a bare "from".
type branchStep struct {
	From   string `yaml:"from" json:"from"`
	Branch []any  `yaml:"branch,flow" json:"branch"`
}

func (s Step) encoded() any {
	if s.IsBranch() {
		return branchStep{From: s.From, Branch: s.Branch}
	}
	return plainStep(s)
}

// MarshalYAML implements yaml.Marshaler.
func (s Step) MarshalYAML() (any, error) {
	return s.encoded(), nil
}

// MarshalJSON implements json.Marshaler.
func (s Step) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.encoded())
}

// Parse decodes a YAML or JSON document.
func Parse(data []byte) (*Document, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse chart document: %w", err)
	}
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse chart document: %w", err)
	}
	doc.raw = raw
	return &doc, nil
}

// ParseFile reads and decodes the document at path.
func ParseFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Build replays the steps onto a new chart.
func (d *Document) Build() (*chart.Chart, error) {
	c := chart.New(d.Kind, chart.Direction(d.Direction))
	for i, s := range d.Steps {
		switch {
		case s.IsNode():
			c.AddNode(s.Node, s.Label, s.Shape)
		case s.IsEdge():
			c.AddEdge(s.From, s.To, s.Text)
		case s.IsBranch():
			branch.ExpandItems(c, s.From, s.Branch)
		default:
			return nil, fmt.Errorf("steps[%d]: %w", i, ErrUnknownStep)
		}
	}
	return c, nil
}

// Marshal encodes the document as YAML.
func (d *Document) Marshal() ([]byte, error) {
	return yaml.Marshal(d)
}

// Load parses, validates and builds the document at path.
func Load(path string) (*chart.Chart, *Document, error) {
	doc, err := ParseFile(path)
	if err != nil {
		return nil, nil, err
	}
	if err := Validate(doc); err != nil {
		return nil, nil, err
	}
	c, err := doc.Build()
	if err != nil {
		return nil, nil, err
	}
	return c, doc, nil
}

// LoadBytes is Load for an in-memory document.
func LoadBytes(data []byte) (*chart.Chart, *Document, error) {
	doc, err := Parse(data)
	if err != nil {
		return nil, nil, err
	}
	if err := Validate(doc); err != nil {
		return nil, nil, err
	}
	c, err := doc.Build()
	if err != nil {
		return nil, nil, err
	}
	return c, doc, nil
}

// jsonTree converts a decoded tree to the shapes encoding/json produces, as
// the schema validator expects.
func jsonTree(v any) (any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}
