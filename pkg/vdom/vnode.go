package vdom

import (
	"github.com/lazynav-dev/lazynav/pkg/deferred"
	"github.com/lazynav-dev/lazynav/pkg/sched"
)

// VKind is the node type discriminator.
type VKind uint8

const (
	KindElement  VKind = iota // <div>, <p>, etc.
	KindText                  // Plain text node
	KindFragment              // Grouping without wrapper
	KindRaw                   // Raw HTML (dangerous)
	KindSuspense              // Boundary gated on deferred values
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindFragment:
		return "Fragment"
	case KindRaw:
		return "Raw"
	case KindSuspense:
		return "Suspense"
	default:
		return "Unknown"
	}
}

// Dependency is a deferred value a suspense boundary waits on.
// *deferred.Value[T] satisfies it for any T.
type Dependency interface {
	State() deferred.State
	Err() error
	OnSettle(scope *sched.Scope, fn func())
}

// VNode is a node in the rendered-content tree.
type VNode struct {
	Kind     VKind    // Node type
	Tag      string   // Element tag name (e.g., "div")
	Props    Props    // Attributes
	Children []*VNode // Child nodes
	Text     string   // For KindText and KindRaw

	// Suspense boundary fields (KindSuspense only).
	Fallback *VNode              // Shown while any dependency is Pending
	ErrView  func(error) *VNode  // Shown on first failure; nil uses a default
	Content  func() *VNode       // Built once all dependencies are Ready
	Deps     []Dependency        // Values gating this boundary
}

// Props holds element attributes.
type Props map[string]any

// Attr represents a single attribute.
type Attr struct {
	Key   string
	Value any
}

// SuspenseState aggregates a boundary's dependency states. The first
// Failed dependency wins; otherwise any Pending dependency keeps the
// boundary pending; with no dependencies the boundary is Ready.
func (v *VNode) SuspenseState() (deferred.State, error) {
	pending := false
	for _, d := range v.Deps {
		switch d.State() {
		case deferred.Failed:
			return deferred.Failed, d.Err()
		case deferred.Pending:
			pending = true
		}
	}
	if pending {
		return deferred.Pending, nil
	}
	return deferred.Ready, nil
}

// CollectDependencies walks the tree and returns every dependency that
// still gates content. Boundaries whose dependencies are all Ready are
// descended through their resolved content, so nested suspense regions
// revealed by a settlement are picked up on the next walk.
func CollectDependencies(n *VNode) []Dependency {
	var deps []Dependency
	collectDeps(n, &deps)
	return deps
}

func collectDeps(n *VNode, out *[]Dependency) {
	if n == nil {
		return
	}
	if n.Kind == KindSuspense {
		state, _ := n.SuspenseState()
		switch state {
		case deferred.Pending:
			for _, d := range n.Deps {
				if d.State() == deferred.Pending {
					*out = append(*out, d)
				}
			}
		case deferred.Ready:
			if n.Content != nil {
				collectDeps(n.Content(), out)
			}
		}
		// Failed boundaries are settled; nothing below them renders.
		return
	}
	for _, child := range n.Children {
		collectDeps(child, out)
	}
}
