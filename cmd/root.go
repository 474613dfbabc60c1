package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	httpcmd "github.com/Alijeyrad/portfolio_backend/cmd/http"
	messagescmd "github.com/Alijeyrad/portfolio_backend/cmd/messages"
	systemcmd "github.com/Alijeyrad/portfolio_backend/cmd/system"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Backend for the video editing portfolio site.",
	Long: `portfolio serves the showcase project list and accepts contact form
submissions for the video editing portfolio site.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global config flag, available for all commands.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	// Attach top-level command trees.
	rootCmd.AddCommand(systemcmd.NewSystemCommand())
	rootCmd.AddCommand(httpcmd.NewHTTPCommand())
	rootCmd.AddCommand(messagescmd.NewMessagesCommand())
}
