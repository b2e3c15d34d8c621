package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/contentkit/format"
	"github.com/randalmurphal/contentkit/thread"
)

// NewFormatCmd creates the format command.
func NewFormatCmd(global *globalFlags) *cobra.Command {
	var platformName string

	cmd := &cobra.Command{
		Use:   "format [file]",
		Short: "Fit text to a platform's character limit",
		Long: `Truncates text at a sentence or word boundary so it fits the target
platform, appending the platform's continuation suffix. Slack and
newsletter content passes through unchanged.`,
		Example: `  contentkit format post.txt --platform linkedin
  echo "Long text..." | contentkit format -p x`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			opts, err := loadOptions(global)
			if err != nil {
				return err
			}
			id, _ := opts.Platform(platformName)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), format.New(opts.Table).ForPlatform(input, string(id)))
			return err
		},
	}

	cmd.Flags().StringVarP(&platformName, "platform", "p", "", "Target platform (default from config)")
	return cmd
}

// NewComposeCmd creates the compose command.
func NewComposeCmd(global *globalFlags) *cobra.Command {
	var (
		platformName string
		limit        int
	)

	cmd := &cobra.Command{
		Use:   "compose [file]",
		Short: "Split long-form text into a numbered thread",
		Long: `Packs long-form text into posts that fit the platform's character limit.
Posts are separated by a blank line and numbered "i/N" when there is
more than one.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			opts, err := loadOptions(global)
			if err != nil {
				return err
			}
			if limit <= 0 {
				_, limits := opts.Platform(platformName)
				limit = limits.CharacterLimit
			}

			w := cmd.OutOrStdout()
			for i, post := range thread.Compose(input, limit) {
				if i > 0 {
					fmt.Fprintln(w)
				}
				fmt.Fprintln(w, post)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&platformName, "platform", "p", "", "Target platform (default from config)")
	cmd.Flags().IntVar(&limit, "limit", 0, "Characters per post (overrides the platform limit)")
	return cmd
}

// NewMarkupCmd creates the markup command.
func NewMarkupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "markup [file]",
		Short: "Wrap links and hashtags in HTML anchors",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), format.Markup(input))
			return err
		},
	}
}
