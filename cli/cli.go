package cli

import (
	"github.com/MakeNowJust/heredoc"
	"github.com/goto/salt/cmdx"
	"github.com/spf13/cobra"
)

var envHelp = map[string]string{
	"short": "List of supported environment variables",
	"long": heredoc.Doc(`
		BACKOFFICE_BACKOFFICE_MOCK: serve seeded in-memory data instead of calling the backend.

		BACKOFFICE_BACKOFFICE_CLIENT_BASE_URL: base URL of the REST backend, e.g. http://localhost:3001.

		BACKOFFICE_DB_HOST, BACKOFFICE_DB_PORT, BACKOFFICE_DB_NAME: postgres used by "server start".

		BACKOFFICE_LOG_LEVEL: debug, info, warn or error.
	`),
}

func New(cfg *Config) *cobra.Command {
	var cfgFile string

	var rootCmd = &cobra.Command{
		Use:           "backoffice <command> <subcommand> [flags]",
		Short:         "Travel booking back-office",
		Long:          "Query and manage reservations, settlements, members and products of the travel booking back-office.",
		SilenceErrors: true,
		SilenceUsage:  true,
		Example: heredoc.Doc(`
			$ backoffice reservation list -f status=결제완료
			$ backoffice member view MEM-000001
			$ backoffice dashboard
			$ backoffice server start
		`),
		Annotations: map[string]string{
			"group": "core",
			"help:learn": heredoc.Doc(`
				Use 'backoffice <command> --help' for info about a command.
			`),
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cfgFile == "" {
				return nil
			}
			return LoadConfigFromFlag(cfgFile, cfg)
		},
	}

	rootCmd.AddCommand(
		serverCmd(cfg),
		configCommand(cfg),
		versionCmd(),
		dashboardCommand(cfg),
		statisticsCommand(cfg),
	)
	rootCmd.AddCommand(resourceCommands(cfg)...)

	// Help topics
	rootCmd.AddCommand(cmdx.SetCompletionCmd("backoffice"))
	rootCmd.AddCommand(cmdx.SetRefCmd(rootCmd))
	rootCmd.AddCommand(cmdx.SetHelpTopicCmd("environment", envHelp))
	cmdx.SetHelp(rootCmd)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, configFlag, "c", "", "Override config file")

	return rootCmd
}
