package demo

import (
	"context"
	"time"

	"github.com/lazynav-dev/lazynav/pkg/module"
	"github.com/lazynav-dev/lazynav/pkg/router"
)

// Options configures the demo application.
type Options struct {
	// API is the upstream client used by route data fetchers.
	API *Client

	// ModuleDelay is an artificial latency added to every module load.
	ModuleDelay time.Duration
}

// Register wires the demo routes and view modules:
//
//	/   eager View A under the root layout
//	/b  lazy View B (parent) with lazy child fetching /todos/1
//	/c  lazy View C listing /comments via a lazily loaded deserializer
func Register(tree *router.Tree, cache *module.Cache, opts Options) {
	cache.Register(ModuleViewB, delayed(opts.ModuleDelay, renderModule(viewBModule)))
	cache.Register(ModuleViewBChild, delayed(opts.ModuleDelay, renderModule(viewBChildModule)))
	cache.Register(ModuleViewC, delayed(opts.ModuleDelay, renderModule(viewCModule)))
	cache.Register(ModuleCommentsDec, delayed(opts.ModuleDelay, deserializerSource))

	tree.RegisterParent("/", &rootLayout{})
	tree.Register("/", &viewA{})
	tree.RegisterParent("/b", &viewB{})
	tree.Register("/b", &viewBChild{api: opts.API})
	tree.Register("/c", &viewC{api: opts.API, cache: cache})
}

// renderModule wraps a render function as a module source.
func renderModule(fn module.RenderFunc) module.Source {
	return func(ctx context.Context) (module.Code, error) {
		return fn, nil
	}
}

// delayed adds artificial latency to a module source.
func delayed(d time.Duration, src module.Source) module.Source {
	if d <= 0 {
		return src
	}
	return func(ctx context.Context) (module.Code, error) {
		select {
		case <-time.After(d):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		return src(ctx)
	}
}
