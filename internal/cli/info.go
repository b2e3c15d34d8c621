package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/contentkit/content"
)

// NewSchemaCmd creates the schema command.
func NewSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema <kind>",
		Short: "Print the JSON Schema of a kind's record",
		Example: `  contentkit schema newsletter
  contentkit schema image_prompt > image_prompt.schema.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := content.Schema(content.Kind(args[0]))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		},
	}
}

// NewPlatformsCmd creates the platforms command.
func NewPlatformsCmd(global *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "platforms",
		Short: "List known platforms and their character limits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := loadOptions(global)
			if err != nil {
				return err
			}
			defaultID, _ := opts.Platform("")

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, dim(fmt.Sprintf("  %-12s %8s %12s", "PLATFORM", "LIMIT", "RECOMMENDED")))
			for _, id := range opts.Table.Platforms() {
				_, limits := opts.Platform(string(id))
				marker := " "
				if id == defaultID {
					marker = success("*")
				}
				fmt.Fprintf(w, "%s %s %8d %12d\n", marker, info(fmt.Sprintf("%-12s", id)), limits.CharacterLimit, limits.RecommendedLimit)
			}
			fmt.Fprintln(w)
			fmt.Fprintln(w, dim("* default platform"))
			return nil
		},
	}
}
