package demo

import (
	"context"

	"github.com/lazynav-dev/lazynav/pkg/deferred"
	"github.com/lazynav-dev/lazynav/pkg/module"
	"github.com/lazynav-dev/lazynav/pkg/router"
	"github.com/lazynav-dev/lazynav/pkg/sched"
	"github.com/lazynav-dev/lazynav/pkg/vdom"
)

// Module IDs for the demo's lazily loaded code.
const (
	ModuleViewB       module.ID = "view_b"
	ModuleViewBChild  module.ID = "view_b_child"
	ModuleViewC       module.ID = "view_c"
	ModuleCommentsDec module.ID = "comments_deserializer"
)

// rootLayout wraps every page with the navigation header.
type rootLayout struct{}

func (r *rootLayout) Data(scope *sched.Scope) router.RouteData { return nil }

func (r *rootLayout) Render(data router.RouteData, outlet *vdom.VNode) *vdom.VNode {
	if outlet == nil {
		outlet = vdom.Fragment()
	}
	return vdom.Div(vdom.ID("root"),
		vdom.Nav(
			vdom.A(vdom.Href("/"), "A"),
			vdom.A(vdom.Href("/b"), "B"),
			vdom.A(vdom.Href("/c"), "C"),
		),
		vdom.Main(outlet),
	)
}

// viewA is the eager landing page. Its render function ships in the
// main binary, so "/" never waits on a module load.
type viewA struct{}

func (r *viewA) Data(scope *sched.Scope) router.RouteData { return nil }

func (r *viewA) Render(data router.RouteData, outlet *vdom.VNode) *vdom.VNode {
	return vdom.P("View A")
}

// viewB is the lazy parent for the "/b" subtree. Its view module
// renders a header and threads the child content through its outlet.
type viewB struct{}

func (r *viewB) Data(scope *sched.Scope) router.RouteData { return nil }

func (r *viewB) ModuleID() module.ID { return ModuleViewB }

// viewBModule is the render function shipped in the view_b module.
func viewBModule(data any, outlet *vdom.VNode) *vdom.VNode {
	if outlet == nil {
		outlet = vdom.Fragment()
	}
	return vdom.Div(
		vdom.P("View B"),
		vdom.Hr(),
		outlet,
	)
}

// bChildData is the route data for the "/b" page: the todo text,
// fetched concurrently with the view module load.
type bChildData struct {
	Text *deferred.Value[string]
}

// viewBChild is the lazy page under viewB. Entering it starts the data
// fetch and the module load in the same turn.
type viewBChild struct {
	api *Client
}

func (r *viewBChild) Data(scope *sched.Scope) router.RouteData {
	return &bChildData{
		Text: deferred.New(scope, func(ctx context.Context) (string, error) {
			return r.api.GetText(ctx, "/todos/1")
		}),
	}
}

func (r *viewBChild) ModuleID() module.ID { return ModuleViewBChild }

// viewBChildModule is the render function shipped in the view_b_child
// module. The suspense region shows "Loading..." until the fetch lands.
func viewBChildModule(data any, outlet *vdom.VNode) *vdom.VNode {
	d, ok := data.(*bChildData)
	if !ok {
		return vdom.Pre("no data")
	}
	return vdom.Suspense(vdom.Text("Loading..."), func() *vdom.VNode {
		text, _ := d.Text.Get()
		return vdom.Pre(text)
	}, d.Text)
}
