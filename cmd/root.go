package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pagebotio/pagebot/pkg/config"
	log "github.com/pagebotio/pagebot/pkg/logger"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "pagebot",
	Short: "CI automation helpers for AI page summarization",
	Long: `Pagebot is a set of small single-purpose commands invoked from a CI workflow:
it calls chat-completion APIs, extracts crawled page content, polls crawl tasks
and posts the result as an issue comment.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Errors from RunE are logged once in main; cobra's own
		// printing would duplicate them.
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true

		level, err := cmd.Flags().GetString("logs-level")
		if err != nil {
			return err
		}
		if level == "" {
			_ = viper.BindEnv(config.EnvLogsLevel, config.EnvLogsLevel)
			level = viper.GetString(config.EnvLogsLevel)
		}

		parsed, err := log.ParseLevel(level)
		if err != nil {
			return err
		}
		log.SetLevel(parsed)
		return nil
	},
}

// Execute adds all child commands to the root command and executes it.
// This is called by main.main().
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	RootCmd.PersistentFlags().String("logs-level", "",
		"Logs level. Supported log levels are debug, info, warn, error. Defaults to info or "+config.EnvLogsLevel)
}
