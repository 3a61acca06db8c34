package inspect

import "holdmenu/geometry"

// Node represents a UI component in the inspection tree.
type Node struct {
	// Type is the component type, e.g. "HeldItem" or "ActionMenu".
	Type string `json:"type"`

	ID string `json:"id,omitempty"`

	Bounds geometry.Rect `json:"bounds"`

	// Visible indicates if the component is currently rendered.
	Visible bool `json:"visible"`

	// State contains component-specific state information.
	State map[string]interface{} `json:"state,omitempty"`

	Children []*Node `json:"children,omitempty"`

	// Content is the text content if applicable.
	Content string `json:"content,omitempty"`
}

// NewNode creates a new visible Node with the given type.
func NewNode(nodeType string) *Node {
	return &Node{
		Type:    nodeType,
		Visible: true,
		State:   make(map[string]interface{}),
	}
}

// WithID sets the node ID and returns the node for chaining.
func (n *Node) WithID(id string) *Node {
	n.ID = id
	return n
}

// WithBounds sets the node bounds and returns the node for chaining.
func (n *Node) WithBounds(r geometry.Rect) *Node {
	n.Bounds = r
	return n
}

// WithVisible sets visibility and returns the node for chaining.
func (n *Node) WithVisible(visible bool) *Node {
	n.Visible = visible
	return n
}

// WithState adds a state key-value pair and returns the node for chaining.
func (n *Node) WithState(key string, value interface{}) *Node {
	if n.State == nil {
		n.State = make(map[string]interface{})
	}
	n.State[key] = value
	return n
}

// AddChild adds a child node and returns the parent for chaining.
func (n *Node) AddChild(child *Node) *Node {
	n.Children = append(n.Children, child)
	return n
}

// WithContent sets the node content and returns the node for chaining.
func (n *Node) WithContent(content string) *Node {
	n.Content = content
	return n
}
