package router

// runMiddleware executes the middleware chain around the core dispatch.
func runMiddleware(mws []Middleware, nc *NavContext, core func() error) error {
	var run func(i int) error
	run = func(i int) error {
		if i >= len(mws) {
			return core()
		}
		return mws[i].Handle(nc, func() error { return run(i + 1) })
	}
	return run(0)
}
