package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xelthorlang/xelthor/internal/config"
	"github.com/xelthorlang/xelthor/internal/logging"
)

// Version is stamped by the build; "dev" otherwise.
var Version = "dev"

// NewRootCommand builds the cobra command that launches the interactive
// menu.
func NewRootCommand() *cobra.Command {
	var cfgFile string

	cmd := &cobra.Command{
		Use:     "xelthor",
		Short:   "English ⇄ Xel'thor console translator",
		Long:    "xelthor translates short phrases between English and the constructed\nXel'thor language, with an editable vocabulary behind a password-gated\nadministration menu.",
		Version: Version,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile, cmd.Flags())
			if err != nil {
				return fmt.Errorf("loading configuration: %w", err)
			}
			log := logging.NewDefault(cfg.LogLevel)

			app, err := NewApp(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}
			app.Run(cmd.Context())
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.xelthor.yaml)")
	cmd.Flags().String("auth_file", "xelthor_auth.json", "account store path")
	cmd.Flags().String("dictionary_file", "xelthor_dictionary.json", "dictionary store path")
	cmd.Flags().String("backup_dir", "backups", "dictionary backup directory")
	cmd.Flags().Duration("session_ttl", 0, "session lifetime (default 24h)")
	cmd.Flags().String("log_level", "info", "log level: debug, info, warn, error")

	return cmd
}
