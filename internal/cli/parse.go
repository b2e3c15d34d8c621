package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/contentkit/content"
	"github.com/randalmurphal/contentkit/newsletter"
	"github.com/randalmurphal/contentkit/template"
)

type parseFlags struct {
	platform     string
	maxLength    int
	asJSON       bool
	templatePath string
	style        string
}

// NewParseCmd creates the parse command.
func NewParseCmd(global *globalFlags) *cobra.Command {
	var flags parseFlags

	cmd := &cobra.Command{
		Use:   "parse <kind> [file]",
		Short: "Parse generated text into a structured record",
		Long: `Parses generated text as one content kind and prints the platform-ready
text. Kinds: thread, newsletter, poll, image_prompt.

With --json the full result (record and text) is printed as JSON. With
--template the record's fields are rendered through a template file; the
template also sees "text", "kind" and "platform".

Newsletters render as an email document by default. --style document gives
a CommonMark HTML fragment and --style text the plain-text alternative.`,
		Example: `  contentkit parse thread draft.txt --platform twitter
  contentkit parse newsletter issue.md > issue.html
  contentkit parse newsletter issue.md --style text
  pbpaste | contentkit parse poll --json
  contentkit parse image_prompt prompt.txt --max-length 400`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args[1:])
			if err != nil {
				return err
			}
			opts, err := loadOptions(global)
			if err != nil {
				return err
			}
			return runParse(cmd.OutOrStdout(), content.Kind(args[0]), input, opts, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.platform, "platform", "p", "", "Target platform (default from config)")
	cmd.Flags().IntVar(&flags.maxLength, "max-length", 0, "Maximum length of the linear text, where the kind supports it")
	cmd.Flags().BoolVar(&flags.asJSON, "json", false, "Print the result as JSON")
	cmd.Flags().StringVar(&flags.templatePath, "template", "", "Render the record through a template file")
	cmd.Flags().StringVar(&flags.style, "style", "", "Newsletter output: email, document or text")

	return cmd
}

func runParse(w io.Writer, kind content.Kind, input string, opts content.Options, flags parseFlags) error {
	res, err := content.Process(content.Request{
		Kind:      kind,
		Content:   input,
		Platform:  flags.platform,
		MaxLength: flags.maxLength,
	}, opts)
	if err != nil {
		return fmt.Errorf("%w (available: %s)", err, strings.Join(kindNames(), ", "))
	}
	if flags.style != "" {
		n, ok := res.Record.(newsletter.Newsletter)
		if !ok {
			return fmt.Errorf("--style applies to newsletters, not %s", res.Kind)
		}
		if res.Text, err = newsletter.Render(n, flags.style); err != nil {
			return err
		}
	}

	switch {
	case flags.asJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)

	case flags.templatePath != "":
		tmpl, err := os.ReadFile(flags.templatePath)
		if err != nil {
			return fmt.Errorf("read template: %w", err)
		}
		vars, err := templateVars(res)
		if err != nil {
			return err
		}
		return template.NewEngine().RenderTo(w, string(tmpl), vars)

	default:
		_, err := fmt.Fprintln(w, res.Text)
		return err
	}
}

// templateVars flattens a result into template variables: the record's
// JSON fields plus text, kind and platform.
func templateVars(res content.Result) (map[string]any, error) {
	vars := map[string]any{}

	data, err := json.Marshal(res.Record)
	if err != nil {
		return nil, fmt.Errorf("encode record: %w", err)
	}
	if err := json.Unmarshal(data, &vars); err != nil {
		vars["record"] = res.Record
	}

	vars["text"] = res.Text
	vars["kind"] = string(res.Kind)
	vars["platform"] = string(res.Platform)
	return vars, nil
}

// readInput reads the file named by args, or stdin when args is empty.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(data), nil
}

func kindNames() []string {
	kinds := content.Available()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return names
}
