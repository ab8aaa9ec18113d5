package demo

import (
	"context"
	"encoding/json"

	"github.com/lazynav-dev/lazynav/internal/errors"
	"github.com/lazynav-dev/lazynav/pkg/deferred"
	"github.com/lazynav-dev/lazynav/pkg/module"
	"github.com/lazynav-dev/lazynav/pkg/router"
	"github.com/lazynav-dev/lazynav/pkg/sched"
	"github.com/lazynav-dev/lazynav/pkg/vdom"
)

// Comment is one entry from the upstream /comments endpoint.
type Comment struct {
	PostID int    `json:"postId"`
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Body   string `json:"body"`
}

// DeserializeFunc is the code payload of the comments_deserializer
// module: the JSON decoder for the comments payload, loaded on demand
// so "/c" is the only route that pays for it.
type DeserializeFunc func(data []byte) ([]Comment, error)

// AsDeserializer asserts a module's code to a DeserializeFunc.
func AsDeserializer(code module.Code) (DeserializeFunc, error) {
	fn, ok := code.(DeserializeFunc)
	if !ok {
		return nil, errors.New("E022").
			WithDetail("comments_deserializer module carries unexpected code")
	}
	return fn, nil
}

// deserializerSource produces the comments decoder.
func deserializerSource(ctx context.Context) (module.Code, error) {
	return DeserializeFunc(func(data []byte) ([]Comment, error) {
		var comments []Comment
		if err := json.Unmarshal(data, &comments); err != nil {
			return nil, errors.New("E041").Wrap(err)
		}
		return comments, nil
	}), nil
}

// cData is the route data for "/c": the decoded comment list.
type cData struct {
	Comments *deferred.Value[[]Comment]
}

// viewC is the lazy comments page. Entering it starts three loads in
// the same turn: the comments fetch, the view module, and the
// deserializer module. The fetch result waits for the deserializer
// before it can settle; neither waits for the view module.
type viewC struct {
	api   *Client
	cache *module.Cache
}

func (r *viewC) Data(scope *sched.Scope) router.RouteData {
	// Issued now so decoding never waits on a load that could have
	// started earlier.
	deser := r.cache.Load(ModuleCommentsDec)

	return &cData{
		Comments: deferred.New(scope, func(ctx context.Context) ([]Comment, error) {
			body, err := r.api.GetText(ctx, "/comments")
			if err != nil {
				return nil, err
			}
			code, err := deser.Wait(ctx)
			if err != nil {
				return nil, err
			}
			decode, err := AsDeserializer(code)
			if err != nil {
				return nil, err
			}
			return decode([]byte(body))
		}),
	}
}

func (r *viewC) ModuleID() module.ID { return ModuleViewC }

// viewCModule is the render function shipped in the view_c module.
func viewCModule(data any, outlet *vdom.VNode) *vdom.VNode {
	d, ok := data.(*cData)
	if !ok {
		return vdom.P("no data")
	}
	return vdom.Div(
		vdom.H1("Comments"),
		vdom.Suspense(vdom.Text("Loading comments..."), func() *vdom.VNode {
			comments, _ := d.Comments.Get()
			items := make([]*vdom.VNode, 0, len(comments))
			for _, c := range comments {
				items = append(items, vdom.Li(
					vdom.Strong(c.Name),
					vdom.Span(vdom.Class("email"), " ("+c.Email+")"),
					vdom.P(c.Body),
				))
			}
			return vdom.Ul(vdom.Class("comments"), items)
		}, d.Comments),
	)
}
