package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pagebotio/pagebot/pkg/config"
	"github.com/pagebotio/pagebot/pkg/crawler"
	"github.com/pagebotio/pagebot/pkg/github"
	log "github.com/pagebotio/pagebot/pkg/logger"
)

var contentResultFile string

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Extract and truncate page content from a crawl result",
	Long: `Extracts the best-available text from the crawl result JSON (RAW_RESPONSE
or the crawl result temp file), truncates it to MAX_CONTENT_LENGTH characters
and publishes it as the 'content' step output. This step never fails the
pipeline: on any error the fixed fallback text is published and the command
exits zero.`,
	Example: "CRAWL_OUTCOME=success pagebot content",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		executeContent()
		return nil
	},
}

func executeContent() {
	// This step must never block the pipeline: recover from anything
	// unexpected and publish the fallback instead.
	defer func() {
		if r := recover(); r != nil {
			log.Error("Unexpected error processing content", "error", r)
			cfg := config.LoadContentConfig()
			fallback := crawler.ErrorFallbackContent(cfg.FallbackURL, cfg.FallbackTitle)
			if err := github.SetOutput("content", fallback); err != nil {
				log.Error("Failed to publish fallback content", "error", err)
			}
		}
	}()

	cfg := config.LoadContentConfig()
	if contentResultFile != "" {
		cfg.ResultFile = contentResultFile
	}

	log.Info("Crawl completion outcome", "outcome", cfg.Outcome)

	content := crawler.ExtractContent(cfg)
	truncated := crawler.Truncate(content, cfg.MaxLength)

	if err := github.SetOutput("content", truncated); err != nil {
		log.Error("Failed to publish content output", "error", err)
		return
	}
	log.Info("Successfully set content output for AI inference")
}

func init() {
	contentCmd.Flags().StringVar(&contentResultFile, "result-file", "",
		"Crawl result file read when RAW_RESPONSE is empty (default "+config.DefaultResultFile+")")
	RootCmd.AddCommand(contentCmd)
}
