package cmd

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"github.com/pagebotio/pagebot/pkg/config"
	"github.com/pagebotio/pagebot/pkg/crawler"
	"github.com/pagebotio/pagebot/pkg/github"
	log "github.com/pagebotio/pagebot/pkg/logger"
)

// waitCrawlDelimiter matches the delimiter the downstream workflow
// steps expect for this output.
const waitCrawlDelimiter = "RESPONSE_EOF"

// emptyResult is published on every failure or timeout path so the
// pipeline always has a parsable value to work with.
const emptyResult = "{}"

var waitCrawlSubmitFile string

var waitCrawlCmd = &cobra.Command{
	Use:   "wait-crawl",
	Short: "Poll a submitted crawl task until completion",
	Long: `Reads the crawl submission response from its temp file, extracts the task
id and polls the crawler's task-status endpoint until the task completes,
fails or the attempt budget runs out. The final task payload (or '{}' on any
failure path) is published as the 'response' step output. This step never
fails the pipeline.`,
	Example: "pagebot wait-crawl",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.LoadCrawlerConfig()
		if waitCrawlSubmitFile != "" {
			cfg.SubmitFile = waitCrawlSubmitFile
		}

		output := emptyResult

		task, err := crawler.NewPoller(cfg).WaitForCompletion(cmd.Context())
		if err != nil {
			log.Warn("Failed to get valid crawl response, continuing with empty result", "error", err)
		} else if data, mErr := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(task); mErr != nil {
			log.Error("Failed to encode task payload", "error", mErr)
		} else {
			output = string(data)
		}

		if err := github.SetOutputWithDelimiter("response", waitCrawlDelimiter, output); err != nil {
			log.Error("Failed to publish crawl response output", "error", err)
		}
		return nil
	},
}

func init() {
	waitCrawlCmd.Flags().StringVar(&waitCrawlSubmitFile, "submit-file", "",
		"Crawl submission response file (default "+config.DefaultSubmitFile+")")
	RootCmd.AddCommand(waitCrawlCmd)
}
