package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// RichTextNode is one node of a structured rich-text tree. A node carries
// optional leaf text and an optional list of children.
type RichTextNode struct {
	Text     string         `json:"text,omitempty"`
	Children []RichTextNode `json:"children,omitempty"`
}

// RichText is a description field that may arrive either as a plain string
// or as a structured rich-text tree, depending on how the document was
// authored in the CMS.
type RichText struct {
	Plain string         `json:"plain,omitempty"`
	Nodes []RichTextNode `json:"nodes,omitempty"`
}

// PlainRichText wraps a plain string
func PlainRichText(s string) RichText {
	return RichText{Plain: s}
}

// TreeRichText wraps a structured node tree
func TreeRichText(nodes ...RichTextNode) RichText {
	return RichText{Nodes: nodes}
}

// IsTree reports whether the value carries a structured tree
func (r RichText) IsTree() bool {
	return len(r.Nodes) > 0
}

// IsZero reports whether the value is absent entirely
func (r RichText) IsZero() bool {
	return r.Plain == "" && len(r.Nodes) == 0
}

// PlainText folds the value down to a flat string. Plain values pass
// through; tree values concatenate leaf text nodes joined by single spaces.
func (r RichText) PlainText() string {
	if !r.IsTree() {
		return r.Plain
	}

	var parts []string
	var walk func(nodes []RichTextNode)
	walk = func(nodes []RichTextNode) {
		for _, node := range nodes {
			if trimmed := strings.TrimSpace(node.Text); trimmed != "" {
				parts = append(parts, trimmed)
			}
			if len(node.Children) > 0 {
				walk(node.Children)
			}
		}
	}
	walk(r.Nodes)

	return strings.Join(parts, " ")
}

// UnmarshalJSON accepts a plain string, a single node object, or an array
// of nodes.
func (r *RichText) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		*r = RichText{}
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("failed to unmarshal rich text string: %w", err)
		}
		*r = RichText{Plain: s}
		return nil
	case '[':
		var nodes []RichTextNode
		if err := json.Unmarshal(data, &nodes); err != nil {
			return fmt.Errorf("failed to unmarshal rich text nodes: %w", err)
		}
		*r = RichText{Nodes: nodes}
		return nil
	case '{':
		var node RichTextNode
		if err := json.Unmarshal(data, &node); err != nil {
			return fmt.Errorf("failed to unmarshal rich text node: %w", err)
		}
		*r = RichText{Nodes: []RichTextNode{node}}
		return nil
	default:
		return fmt.Errorf("unsupported rich text encoding: %s", string(data[0]))
	}
}

// MarshalJSON emits the tree when structured, otherwise the plain string.
func (r RichText) MarshalJSON() ([]byte, error) {
	if r.IsTree() {
		return json.Marshal(r.Nodes)
	}
	return json.Marshal(r.Plain)
}
