package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/contentkit/content"
	"github.com/randalmurphal/contentkit/watch"
)

// NewWatchCmd creates the watch command.
func NewWatchCmd(global *globalFlags) *cobra.Command {
	var flags parseFlags

	cmd := &cobra.Command{
		Use:   "watch <kind> <file>",
		Short: "Re-parse a file every time it changes",
		Long: `Parses the file as one content kind, then parses it again each time it is
saved. Stop with Ctrl-C.`,
		Example: `  contentkit watch newsletter draft.md
  contentkit watch thread draft.txt --platform linkedin`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := loadOptions(global)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runWatch(ctx, cmd, content.Kind(args[0]), args[1], opts, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.platform, "platform", "p", "", "Target platform (default from config)")
	cmd.Flags().IntVar(&flags.maxLength, "max-length", 0, "Maximum length of the linear text, where the kind supports it")
	cmd.Flags().BoolVar(&flags.asJSON, "json", false, "Print each result as JSON")
	cmd.Flags().StringVar(&flags.style, "style", "", "Newsletter output: email, document or text")

	return cmd
}

func runWatch(ctx context.Context, cmd *cobra.Command, kind content.Kind, path string, opts content.Options, flags parseFlags) error {
	if _, err := content.Lookup(kind); err != nil {
		return err
	}

	updates, err := watch.Follow(ctx, path)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	first := true
	for text := range updates {
		if !first {
			fmt.Fprintln(w, dim("--- "+path+" changed ---"))
		}
		first = false
		if err := runParse(w, kind, text, opts, flags); err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), warning(err.Error()))
		}
	}
	return nil
}
