package render

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/lazynav-dev/lazynav/pkg/deferred"
	"github.com/lazynav-dev/lazynav/pkg/vdom"
)

// RendererConfig configures the HTML renderer.
type RendererConfig struct {
	// Pretty enables pretty-printed HTML output with newlines between
	// block elements. Development only; it increases output size.
	Pretty bool
}

// Renderer renders VNode trees to HTML.
type Renderer struct {
	config RendererConfig
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	return &Renderer{config: config}
}

// RenderToString renders a VNode tree to an HTML string.
func (r *Renderer) RenderToString(node *vdom.VNode) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams a VNode tree to the given writer.
func (r *Renderer) RenderToWriter(w io.Writer, node *vdom.VNode) error {
	return r.renderNode(w, node)
}

// renderNode dispatches rendering based on node kind.
func (r *Renderer) renderNode(w io.Writer, node *vdom.VNode) error {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case vdom.KindElement:
		return r.renderElement(w, node)
	case vdom.KindText:
		_, err := io.WriteString(w, escapeHTML(node.Text))
		return err
	case vdom.KindFragment:
		return r.renderChildren(w, node)
	case vdom.KindRaw:
		_, err := io.WriteString(w, node.Text)
		return err
	case vdom.KindSuspense:
		return r.renderSuspense(w, node)
	default:
		return fmt.Errorf("unknown node kind: %d", node.Kind)
	}
}

// renderElement renders an HTML element with its attributes and children.
func (r *Renderer) renderElement(w io.Writer, node *vdom.VNode) error {
	if _, err := fmt.Fprintf(w, "<%s", node.Tag); err != nil {
		return err
	}
	if err := r.renderAttributes(w, node); err != nil {
		return err
	}

	if vdom.IsVoidElement(node.Tag) {
		_, err := io.WriteString(w, ">")
		return err
	}

	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}
	if err := r.renderChildren(w, node); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "</%s>", node.Tag); err != nil {
		return err
	}
	if r.config.Pretty {
		io.WriteString(w, "\n")
	}
	return nil
}

// renderAttributes writes an element's attributes in sorted key order so
// output is deterministic.
func (r *Renderer) renderAttributes(w io.Writer, node *vdom.VNode) error {
	if len(node.Props) == 0 {
		return nil
	}
	keys := make([]string, 0, len(node.Props))
	for k := range node.Props {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		switch v := node.Props[k].(type) {
		case nil:
			continue
		case bool:
			if v {
				if _, err := fmt.Fprintf(w, " %s", k); err != nil {
					return err
				}
			}
		case string:
			if _, err := fmt.Fprintf(w, ` %s="%s"`, k, escapeAttr(v)); err != nil {
				return err
			}
		default:
			if _, err := fmt.Fprintf(w, ` %s="%s"`, k, escapeAttr(fmt.Sprint(v))); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *Renderer) renderChildren(w io.Writer, node *vdom.VNode) error {
	for _, child := range node.Children {
		if err := r.renderNode(w, child); err != nil {
			return err
		}
	}
	return nil
}

// renderSuspense resolves a suspense boundary: fallback while pending,
// content once ready, error region on first failure. The wrapper div
// marks the region's state for hosts that swap regions client-side.
func (r *Renderer) renderSuspense(w io.Writer, node *vdom.VNode) error {
	state, err := node.SuspenseState()

	var inner *vdom.VNode
	status := "ready"
	switch state {
	case deferred.Pending:
		status = "pending"
		inner = node.Fallback
	case deferred.Failed:
		status = "failed"
		if node.ErrView != nil {
			inner = node.ErrView(err)
		} else {
			inner = vdom.Div(vdom.Class("suspense-error"), vdom.Textf("Error: %v", err))
		}
	default:
		if node.Content != nil {
			inner = node.Content()
		}
	}

	if _, werr := fmt.Fprintf(w, `<div data-suspense="%s">`, status); werr != nil {
		return werr
	}
	if werr := r.renderNode(w, inner); werr != nil {
		return werr
	}
	_, werr := io.WriteString(w, "</div>")
	return werr
}
