package router

import "strings"

// routeNode is a node in the segment tree.
type routeNode struct {
	// segment is the path segment this node matches
	segment string

	// isParam indicates this is a parameter segment (:id)
	isParam bool

	// paramName is the parameter name (without :)
	paramName string

	// page is the route rendered when the path ends at this node
	page        Route
	pagePattern string

	// parent is a route that wraps all pages at or below this node
	parent        Route
	parentPattern string

	// children are static segment children
	children []*routeNode

	// paramChild is the dynamic parameter child (:id)
	paramChild *routeNode
}

func newRouteNode(segment string) *routeNode {
	return &routeNode{segment: segment}
}

// findChild finds a child node with an exact segment match.
func (n *routeNode) findChild(segment string) *routeNode {
	for _, child := range n.children {
		if child.segment == segment {
			return child
		}
	}
	return nil
}

// addChild adds or retrieves a child node for the given segment.
func (n *routeNode) addChild(segment string) *routeNode {
	if child := n.findChild(segment); child != nil {
		return child
	}
	child := newRouteNode(segment)
	n.children = append(n.children, child)
	return child
}

// addParamChild sets the parameter child node.
func (n *routeNode) addParamChild(name string) *routeNode {
	if n.paramChild != nil {
		return n.paramChild
	}
	child := newRouteNode("")
	child.isParam = true
	child.paramName = name
	n.paramChild = child
	return child
}

// insertRoute walks or creates the nodes for path and returns the final
// node.
func (n *routeNode) insertRoute(path string) *routeNode {
	current := n
	for _, seg := range splitPath(path) {
		if strings.HasPrefix(seg, ":") {
			current = current.addParamChild(seg[1:])
		} else {
			current = current.addChild(seg)
		}
	}
	return current
}

// Tree is the route registry: a tree of path segments mapping to route
// factories.
type Tree struct {
	root *routeNode
}

// NewTree creates an empty route tree.
func NewTree() *Tree {
	return &Tree{root: newRouteNode("")}
}

// Register adds a page route for path. The route must implement
// EagerRoute or LazyRoute.
func (t *Tree) Register(path string, r Route) {
	checkRoute(r)
	node := t.root.insertRoute(path)
	node.page = r
	node.pagePattern = normalizePattern(path)
}

// RegisterParent adds a parent route for path. It participates in the
// active chain of every page at or below path, wrapping the child
// content in its outlet.
func (t *Tree) RegisterParent(path string, r Route) {
	checkRoute(r)
	node := t.root.insertRoute(path)
	node.parent = r
	node.parentPattern = normalizePattern(path)
}

func checkRoute(r Route) {
	switch r.(type) {
	case LazyRoute, EagerRoute:
	default:
		panic("lazynav: route must implement EagerRoute or LazyRoute")
	}
}

// Resolve matches path against the tree depth-first and returns the
// ordered root-to-leaf chain of matched routes, or false if no page
// matches.
func (t *Tree) Resolve(path string) (ActiveChain, bool) {
	params := make(map[string]string)
	chain, ok := t.root.match(splitPath(path), "", params, nil)
	if !ok {
		return nil, false
	}
	for i := range chain {
		chain[i].Params = params
	}
	return chain, true
}

// match recursively matches segments, collecting parent routes along the
// traversal. matched is the canonical path consumed so far.
func (n *routeNode) match(segments []string, matched string, params map[string]string, parents ActiveChain) (ActiveChain, bool) {
	if n.parent != nil {
		parents = append(parents, ChainEntry{
			Route:   n.parent,
			Pattern: n.parentPattern,
			Key:     "parent:" + orRoot(matched),
		})
	}

	// Base case: no more segments, need a page here.
	if len(segments) == 0 {
		if n.page == nil {
			return nil, false
		}
		chain := append(parents, ChainEntry{
			Route:   n.page,
			Pattern: n.pagePattern,
			Key:     "page:" + orRoot(matched),
		})
		return chain, true
	}

	segment := segments[0]
	remaining := segments[1:]

	// Try exact match first.
	if child := n.findChild(segment); child != nil {
		if chain, ok := child.match(remaining, matched+"/"+segment, params, parents); ok {
			return chain, true
		}
	}

	// Try parameter match.
	if n.paramChild != nil {
		params[n.paramChild.paramName] = segment
		if chain, ok := n.paramChild.match(remaining, matched+"/"+segment, params, parents); ok {
			return chain, true
		}
		// Backtrack on failure
		delete(params, n.paramChild.paramName)
	}

	return nil, false
}

// Routes lists all registered routes.
func (t *Tree) Routes() []RouteInfo {
	var infos []RouteInfo
	t.root.collect(&infos)
	return infos
}

func (n *routeNode) collect(out *[]RouteInfo) {
	if n.parent != nil {
		*out = append(*out, routeInfo(n.parentPattern, true, n.parent))
	}
	if n.page != nil {
		*out = append(*out, routeInfo(n.pagePattern, false, n.page))
	}
	for _, child := range n.children {
		child.collect(out)
	}
	if n.paramChild != nil {
		n.paramChild.collect(out)
	}
}

func routeInfo(pattern string, parent bool, r Route) RouteInfo {
	info := RouteInfo{Pattern: pattern, Parent: parent}
	if lr, ok := r.(LazyRoute); ok {
		info.Module = lr.ModuleID()
	}
	return info
}

// splitPath splits a path into segments.
func splitPath(path string) []string {
	path = strings.Trim(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}

func normalizePattern(path string) string {
	path = "/" + strings.Trim(path, "/")
	return path
}

func orRoot(matched string) string {
	if matched == "" {
		return "/"
	}
	return matched
}
