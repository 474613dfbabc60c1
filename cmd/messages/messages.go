// Package messages holds the read side of contact messages. Stored messages
// are not exposed over HTTP; the site owner reads them from the CLI.
package messages

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Alijeyrad/portfolio_backend/config"
	"github.com/Alijeyrad/portfolio_backend/internal/service/contact"
	"github.com/Alijeyrad/portfolio_backend/pkg/docstore"
)

func NewMessagesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "messages",
		Short: "Read stored contact messages",
	}

	cmd.AddCommand(NewExportCommand())
	cmd.AddCommand(NewShowCommand())

	return cmd
}

// openService connects to the configured store. The returned func closes it.
func openService(cmd *cobra.Command) (contact.Service, func(), error) {
	cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get config flag: %w", err)
	}
	cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read config: %w", err)
	}

	store, err := docstore.NewFromCentral(cmd.Context(), cfg.Database)
	if err != nil {
		if errors.Is(err, docstore.ErrNotConfigured) {
			return nil, nil, errors.New("DATABASE_URL and DATABASE_NAME must be set")
		}
		return nil, nil, err
	}

	closeFn := func() { _ = store.Close(context.Background()) }
	return contact.New(store, nil), closeFn, nil
}
