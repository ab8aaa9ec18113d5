package vdom

import "fmt"

// Text creates a text node.
func Text(content string) *VNode {
	return &VNode{
		Kind: KindText,
		Text: content,
	}
}

// Textf creates a formatted text node.
func Textf(format string, args ...any) *VNode {
	return Text(fmt.Sprintf(format, args...))
}

// Raw creates an unescaped HTML node.
// Use with caution - can lead to XSS if content is user-provided.
func Raw(html string) *VNode {
	return &VNode{
		Kind: KindRaw,
		Text: html,
	}
}

// Fragment groups children without a wrapper element.
func Fragment(children ...any) *VNode {
	node := &VNode{
		Kind:     KindFragment,
		Children: make([]*VNode, 0),
	}

	for _, child := range children {
		switch v := child.(type) {
		case nil:
			continue
		case *VNode:
			if v != nil {
				node.Children = append(node.Children, v)
			}
		case []*VNode:
			for _, c := range v {
				if c != nil {
					node.Children = append(node.Children, c)
				}
			}
		case string:
			node.Children = append(node.Children, Text(v))
		}
	}

	return node
}

// Suspense creates a suspense boundary. fallback renders while any dep
// is Pending, content once all are Ready. Use WithErrView to customize
// the failure rendering.
func Suspense(fallback *VNode, content func() *VNode, deps ...Dependency) *VNode {
	return &VNode{
		Kind:     KindSuspense,
		Fallback: fallback,
		Content:  content,
		Deps:     deps,
	}
}

// WithErrView sets the error rendering for a suspense boundary and
// returns the node for chaining.
func (v *VNode) WithErrView(fn func(error) *VNode) *VNode {
	v.ErrView = fn
	return v
}
