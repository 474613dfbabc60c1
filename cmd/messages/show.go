package messages

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Alijeyrad/portfolio_backend/internal/schema"
	"github.com/Alijeyrad/portfolio_backend/internal/service/contact"
)

func NewShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Print one stored contact message",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closeFn, err := openService(cmd)
			if err != nil {
				return err
			}
			defer closeFn()

			msg, err := svc.Get(cmd.Context(), args[0])
			if err != nil {
				if errors.Is(err, contact.ErrNotFound) || errors.Is(err, contact.ErrInvalidID) {
					return fmt.Errorf("%w: %s", err, args[0])
				}
				return err
			}

			printMessage(cmd.OutOrStdout(), msg)
			return nil
		},
	}

	return cmd
}

func printMessage(w io.Writer, m schema.StoredMessage) {
	fmt.Fprintf(w, "ID:       %s\n", m.ID.Hex())
	fmt.Fprintf(w, "From:     %s <%s>\n", m.Name, m.Email)
	if m.Subject != "" {
		fmt.Fprintf(w, "Subject:  %s\n", m.Subject)
	}
	fmt.Fprintf(w, "Received: %s\n", m.CreatedAt.UTC().Format("2006-01-02 15:04:05 MST"))
	if m.RequestID != "" {
		fmt.Fprintf(w, "Request:  %s\n", m.RequestID)
	}
	fmt.Fprintf(w, "\n%s\n", m.Content)
}
