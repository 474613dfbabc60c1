package http

import (
	"fmt"
	"io"
	"path/filepath"
	"text/tabwriter"

	"github.com/gofiber/fiber/v3"
	"github.com/spf13/cobra"

	"github.com/Alijeyrad/portfolio_backend/config"
	apihttp "github.com/Alijeyrad/portfolio_backend/internal/api/http"
	"github.com/Alijeyrad/portfolio_backend/internal/api/http/router"
	"github.com/Alijeyrad/portfolio_backend/internal/service/contact"
	"github.com/Alijeyrad/portfolio_backend/internal/service/diagnostics"
	"github.com/Alijeyrad/portfolio_backend/internal/service/project"
)

func NewRoutesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "List the routes the HTTP server registers",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
			if err != nil {
				return err
			}
			cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
			if err != nil {
				return err
			}

			app, err := offlineApp(cfg)
			if err != nil {
				return err
			}
			return printRoutes(cmd.OutOrStdout(), app)
		},
	}
}

// offlineApp builds the server without connecting to any backend.
func offlineApp(cfg *config.Config) (*fiber.App, error) {
	projects, err := project.New()
	if err != nil {
		return nil, err
	}
	r := router.NewRouter(router.Params{
		Cfg:            cfg,
		ProjectSvc:     projects,
		ContactSvc:     contact.New(nil, nil),
		DiagnosticsSvc: diagnostics.New(nil, diagnostics.Settings{}, 0),
	})
	return apihttp.NewApp(cfg, r, false), nil
}

func printRoutes(w io.Writer, app *fiber.App) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "METHOD\tPATH")
	// filter out HEAD and the middleware-only entries
	for _, rt := range app.GetRoutes(true) {
		if rt.Method == fiber.MethodHead {
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\n", rt.Method, rt.Path)
	}
	return tw.Flush()
}
