package system

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/Alijeyrad/portfolio_backend/config"
	"github.com/Alijeyrad/portfolio_backend/internal/service/diagnostics"
	"github.com/Alijeyrad/portfolio_backend/pkg/docstore"
)

func NewCheckCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check the document store connection",
		Long: `Run the same database diagnostics as GET /test and print the result.
Exits non-zero when a configured store is unreachable or cannot be queried.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
			if err != nil {
				return fmt.Errorf("failed to get config flag: %w", err)
			}
			cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			report, err := runCheck(ctx, cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(reportJSON(report)); err != nil {
					return err
				}
			} else {
				printReport(out, report)
			}

			switch report.Status {
			case diagnostics.StatusUnreachable, diagnostics.StatusQueryFailed:
				return fmt.Errorf("database check failed: %s", report.Status)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the report as JSON")

	return cmd
}

func runCheck(ctx context.Context, cfg *config.Config) (diagnostics.Report, error) {
	settings := diagnostics.Settings{
		DatabaseURLSet:  cfg.Database.URL != "",
		DatabaseNameSet: cfg.Database.Name != "",
	}
	timeout := time.Duration(cfg.Server.DiagnosticsTimeoutSeconds) * time.Second

	if !docstore.FromCentralConfig(cfg.Database).Configured() {
		return diagnostics.New(nil, settings, timeout).Check(ctx), nil
	}

	store, err := docstore.NewFromCentral(ctx, cfg.Database)
	if err != nil {
		return diagnostics.Report{}, err
	}
	defer store.Close(context.Background())

	return diagnostics.New(store, settings, timeout).Check(ctx), nil
}
