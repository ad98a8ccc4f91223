package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fabiogif/moday-backoffice/app/routes"
	"github.com/fabiogif/moday-backoffice/internal/server"
	"github.com/fabiogif/moday-backoffice/pkg/router"
)

// moday serve — start the HTTP server.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return server.Start()
	},
}

// moday route:list — print all registered named routes.
var routeListCmd = &cobra.Command{
	Use:   "route:list",
	Short: "List all registered named routes",
	RunE: func(cmd *cobra.Command, args []string) error {
		r := router.New()
		routes.RegisterAPI(r)

		names := r.Names()
		if len(names) == 0 {
			fmt.Println("No named routes registered.")
			return nil
		}
		for _, line := range names {
			fmt.Println(line)
		}
		return nil
	},
}
