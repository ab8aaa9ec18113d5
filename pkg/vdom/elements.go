package vdom

// voidElements are elements that cannot have children.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// createElement creates a new VNode with the given tag and arguments.
// Arguments can be: nil, Attr, []Attr, *VNode, []*VNode, string.
func createElement(tag string, args []any) *VNode {
	node := &VNode{
		Kind:     KindElement,
		Tag:      tag,
		Props:    make(Props),
		Children: make([]*VNode, 0),
	}

	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			// Ignore nil (allows conditional attributes)
			continue

		case Attr:
			if v.Key != "" {
				node.Props[v.Key] = v.Value
			}

		case []Attr:
			for _, attr := range v {
				if attr.Key != "" {
					node.Props[attr.Key] = attr.Value
				}
			}

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

// Class sets the class attribute.
func Class(value string) Attr {
	return Attr{Key: "class", Value: value}
}

// ID sets the id attribute.
func ID(value string) Attr {
	return Attr{Key: "id", Value: value}
}

// Href sets the href attribute.
func Href(value string) Attr {
	return Attr{Key: "href", Value: value}
}

// Div creates a <div> element.
func Div(args ...any) *VNode { return createElement("div", args) }

// P creates a <p> element.
func P(args ...any) *VNode { return createElement("p", args) }

// Pre creates a <pre> element.
func Pre(args ...any) *VNode { return createElement("pre", args) }

// A creates an <a> element.
func A(args ...any) *VNode { return createElement("a", args) }

// Ul creates a <ul> element.
func Ul(args ...any) *VNode { return createElement("ul", args) }

// Li creates a <li> element.
func Li(args ...any) *VNode { return createElement("li", args) }

// H1 creates an <h1> element.
func H1(args ...any) *VNode { return createElement("h1", args) }

// Nav creates a <nav> element.
func Nav(args ...any) *VNode { return createElement("nav", args) }

// Main creates a <main> element.
func Main(args ...any) *VNode { return createElement("main", args) }

// Hr creates an <hr> element.
func Hr(args ...any) *VNode { return createElement("hr", args) }

// Span creates a <span> element.
func Span(args ...any) *VNode { return createElement("span", args) }

// Strong creates a <strong> element.
func Strong(args ...any) *VNode { return createElement("strong", args) }
