package router

import (
	"testing"

	"github.com/lazynav-dev/lazynav/pkg/module"
	"github.com/lazynav-dev/lazynav/pkg/sched"
	"github.com/lazynav-dev/lazynav/pkg/vdom"
)

// stubEager is a minimal eager route for tree tests.
type stubEager struct{ name string }

func (r *stubEager) Data(scope *sched.Scope) RouteData { return nil }
func (r *stubEager) Render(data RouteData, outlet *vdom.VNode) *vdom.VNode {
	return vdom.Text(r.name)
}

// stubLazy is a minimal lazy route for tree tests.
type stubLazy struct{ id module.ID }

func (r *stubLazy) Data(scope *sched.Scope) RouteData { return nil }
func (r *stubLazy) ModuleID() module.ID               { return r.id }

func TestTreeRegisterAndResolve(t *testing.T) {
	tree := NewTree()
	a := &stubEager{name: "a"}
	tree.Register("/", a)

	chain, ok := tree.Resolve("/")
	if !ok {
		t.Fatal("expected match for /")
	}
	if len(chain) != 1 || chain[0].Route != Route(a) {
		t.Fatalf("chain = %+v, want single entry for a", chain)
	}
}

func TestTreeResolveParentChain(t *testing.T) {
	tree := NewTree()
	layout := &stubEager{name: "layout"}
	parent := &stubLazy{id: "view_b"}
	child := &stubLazy{id: "view_b_child"}
	tree.RegisterParent("/", layout)
	tree.RegisterParent("/b", parent)
	tree.Register("/b", child)

	chain, ok := tree.Resolve("/b")
	if !ok {
		t.Fatal("expected match for /b")
	}
	if len(chain) != 3 {
		t.Fatalf("chain length = %d, want 3 (layout, parent, child)", len(chain))
	}
	if chain[0].Route != Route(layout) || chain[1].Route != Route(parent) || chain[2].Route != Route(child) {
		t.Errorf("chain order wrong: %+v", chain)
	}
	if chain[1].Key == chain[2].Key {
		t.Error("parent and page at the same node must have distinct keys")
	}
}

func TestTreeResolveParams(t *testing.T) {
	tree := NewTree()
	tree.Register("/users/:id", &stubEager{name: "user"})

	chain, ok := tree.Resolve("/users/123")
	if !ok {
		t.Fatal("expected match for /users/123")
	}
	if chain[0].Params["id"] != "123" {
		t.Errorf("params[id] = %q, want %q", chain[0].Params["id"], "123")
	}
}

func TestTreeParamKeysIncludeValues(t *testing.T) {
	tree := NewTree()
	tree.Register("/users/:id", &stubEager{name: "user"})

	c1, _ := tree.Resolve("/users/1")
	c2, _ := tree.Resolve("/users/2")
	if c1[0].Key == c2[0].Key {
		t.Error("same pattern with different params must have different keys")
	}
}

func TestTreeNoMatch(t *testing.T) {
	tree := NewTree()
	tree.Register("/users", &stubEager{name: "users"})

	if _, ok := tree.Resolve("/projects"); ok {
		t.Error("should not match /projects")
	}
}

func TestTreeParentAloneDoesNotMatch(t *testing.T) {
	tree := NewTree()
	tree.RegisterParent("/admin", &stubEager{name: "layout"})

	if _, ok := tree.Resolve("/admin"); ok {
		t.Error("a parent with no page should not match")
	}
}

func TestTreeRejectsBareRoute(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for route implementing neither EagerRoute nor LazyRoute")
		}
	}()
	type bare struct{ Route }
	NewTree().Register("/", &bare{})
}

func TestTreeRoutes(t *testing.T) {
	tree := NewTree()
	tree.RegisterParent("/", &stubEager{name: "layout"})
	tree.Register("/", &stubEager{name: "a"})
	tree.Register("/c", &stubLazy{id: "view_c"})

	infos := tree.Routes()
	if len(infos) != 3 {
		t.Fatalf("Routes() = %d entries, want 3", len(infos))
	}
	var lazy *RouteInfo
	for i := range infos {
		if infos[i].Module != "" {
			lazy = &infos[i]
		}
	}
	if lazy == nil || lazy.Pattern != "/c" || lazy.Module != "view_c" {
		t.Errorf("lazy route info = %+v, want /c view_c", lazy)
	}
}

func TestCanonicalizePath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "/"},
		{"/", "/"},
		{"b", "/b"},
		{"/b/", "/b"},
		{"//b///c", "/b/c"},
		{"/b?x=1", "/b"},
	}
	for _, tt := range tests {
		got, err := CanonicalizePath(tt.in)
		if err != nil {
			t.Errorf("CanonicalizePath(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("CanonicalizePath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	if _, err := CanonicalizePath("/a\\b"); err == nil {
		t.Error("backslash path should be rejected")
	}
}
