package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pagebotio/pagebot/pkg/github"
)

var commentCmd = &cobra.Command{
	Use:   "comment <body-file> <issue-number>",
	Short: "Post a file's contents as a GitHub issue comment",
	Long: `Posts the contents of the given file as a comment on the given issue via
the gh CLI. The body travels as a file to avoid shell-escaping issues with
arbitrary AI-generated content. Requires GH_TOKEN in the environment.`,
	Example: "pagebot comment /tmp/ai_response.md 42",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return github.PostIssueComment(args[0], args[1])
	},
}

func init() {
	RootCmd.AddCommand(commentCmd)
}
