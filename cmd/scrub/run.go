package main

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/scrub"
)

var runFlags struct {
	params     []string
	paramsJSON string
}

var runCmd = &cobra.Command{
	Use:   "run <operation> [content]",
	Short: "Execute one operation",
	Long: `Execute a single operation and print its JSON envelope.

Content comes from the second argument or, when absent, from stdin.
Extra operation parameters are passed with repeated --param key=value
flags; list- and map-valued parameters with --params and a JSON object.

Examples:
  scrub run validate_email john@example.com

  scrub run sanitize_html --params '{"allowed_tags":["b","i"]}' \
      '<script>x()</script><b>bold</b>'

  scrub run mask_custom --param 'pattern=order-\d+' --param replacement=order-#### \
      'order-1234 shipped'

  cat upload.json | scrub run validate_json`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runOperation,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringArrayVar(&runFlags.params, "param", nil, "operation parameter as key=value (repeatable)")
	runCmd.Flags().StringVar(&runFlags.paramsJSON, "params", "", "operation parameters as a JSON object")
}

func runOperation(cmd *cobra.Command, args []string) error {
	engine, err := buildEngine()
	if err != nil {
		return err
	}

	params, err := parseParams(runFlags.params, runFlags.paramsJSON)
	if err != nil {
		return err
	}

	if needsContent(args[0], params) {
		content, err := contentFromArgsOrStdin(cmd, args, 1)
		if err != nil {
			return err
		}
		params["content"] = content
	}

	return printEnvelope(cmd, engine.Execute(args[0], params))
}

// needsContent reports whether the operation still lacks its content
// string, so the command knows when to fall back to stdin. Unknown
// operations read nothing; the engine rejects them with an envelope.
func needsContent(operation string, params map[string]any) bool {
	for _, info := range scrub.Operations() {
		if string(info.Name) != operation {
			continue
		}
		if info.ContentKey == "" {
			return false
		}
		if _, ok := params[info.ContentKey]; ok {
			return false
		}
		_, ok := params["content"]
		return !ok
	}
	return false
}
