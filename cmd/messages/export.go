package messages

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Alijeyrad/portfolio_backend/internal/schema"
)

func NewExportCommand() *cobra.Command {
	var (
		format string
		limit  int64
		output string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export stored contact messages",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closeFn, err := openService(cmd)
			if err != nil {
				return err
			}
			defer closeFn()

			msgs, err := svc.List(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("failed to list messages: %w", err)
			}

			return exportTo(cmd.OutOrStdout(), output, format, msgs)
		},
	}

	cmd.Flags().StringVar(&format, "format", "json", "Output format: json or yaml")
	cmd.Flags().Int64Var(&limit, "limit", 0, "Maximum number of messages (0 for all)")
	cmd.Flags().StringVarP(&output, "output", "o", "-", "Write to file instead of stdout")

	return cmd
}

// exportTo writes to stdout when path is empty or "-", else to the file at
// path. A failed close is returned when the write itself succeeded.
func exportTo(stdout io.Writer, path, format string, msgs []schema.StoredMessage) (err error) {
	if path == "" || path == "-" {
		return writeMessages(stdout, format, msgs)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	return writeMessages(f, format, msgs)
}

func writeMessages(w io.Writer, format string, msgs []schema.StoredMessage) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(msgs)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(msgs); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
