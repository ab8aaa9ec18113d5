package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/lazynav-dev/lazynav/internal/config"
	"github.com/lazynav-dev/lazynav/internal/demo"
	"github.com/lazynav-dev/lazynav/pkg/module"
	"github.com/lazynav-dev/lazynav/pkg/router"
	"github.com/lazynav-dev/lazynav/pkg/sched"
)

func routesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "List the registered routes",
		Long:  `List every registered route with its kind and view module.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoutes()
		},
	}
}

func runRoutes() error {
	cfg, err := config.LoadOrDefault(".")
	if err != nil {
		return err
	}

	loop := sched.NewLoop()
	defer loop.Stop()

	cache := module.NewCache(loop, nil)
	tree := router.NewTree()
	demo.Register(tree, cache, demo.Options{
		API: demo.NewClient(cfg.API.BaseURL, 10*time.Second, nil),
	})

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PATTERN\tKIND\tMODULE")
	for _, info := range tree.Routes() {
		kind := "page"
		if info.Parent {
			kind = "parent"
		}
		mod := string(info.Module)
		if mod == "" {
			mod = "(eager)"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", info.Pattern, kind, mod)
	}
	return w.Flush()
}
