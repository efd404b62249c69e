package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// maxItemLine bounds a single batch input line.
const maxItemLine = 1 << 20

var batchFlags struct {
	file       string
	params     []string
	paramsJSON string
}

var batchCmd = &cobra.Command{
	Use:   "batch <operation>",
	Short: "Run one operation over many items",
	Long: `Apply a single-item operation to every input line with per-item
isolation: a failing line is reported at its index and never aborts the
rest. Items come from --file or stdin, one item per line.

Examples:
  scrub batch clean_whitespace --file comments.txt

  printf 'a@b.co\nnope\n' | scrub batch validate_email

  scrub batch mask_custom --file logs.txt \
      --param 'pattern=token-\w+' --param replacement=token-****`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVarP(&batchFlags.file, "file", "f", "", "file with one item per line (default stdin)")
	batchCmd.Flags().StringArrayVar(&batchFlags.params, "param", nil, "nested operation parameter as key=value (repeatable)")
	batchCmd.Flags().StringVar(&batchFlags.paramsJSON, "params", "", "nested operation parameters as a JSON object")
}

func runBatch(cmd *cobra.Command, args []string) error {
	engine, err := buildEngine()
	if err != nil {
		return err
	}

	nested, err := parseParams(batchFlags.params, batchFlags.paramsJSON)
	if err != nil {
		return err
	}

	items, err := readItems(cmd)
	if err != nil {
		return err
	}

	params := map[string]any{
		"items":     items,
		"operation": args[0],
	}
	if len(nested) > 0 {
		params["params"] = nested
	}

	return printEnvelope(cmd, engine.Execute("batch_sanitize", params))
}

func readItems(cmd *cobra.Command) ([]string, error) {
	var in io.Reader = cmd.InOrStdin()
	if batchFlags.file != "" {
		f, err := os.Open(batchFlags.file)
		if err != nil {
			return nil, fmt.Errorf("open items file: %w", err)
		}
		defer f.Close()
		in = f
	}

	var items []string
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxItemLine)
	for scanner.Scan() {
		items = append(items, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read items: %w", err)
	}
	return items, nil
}
