package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/scrub"
)

var operationsFlags struct {
	format string
}

var operationsCmd = &cobra.Command{
	Use:   "operations",
	Short: "List the operation catalogue",
	Long: `List every operation with its content key and parameters.

The content key names the parameter holding the input string; the
generic "content" key is accepted everywhere as a fallback.`,
	RunE: listOperations,
}

func init() {
	rootCmd.AddCommand(operationsCmd)

	operationsCmd.Flags().StringVar(&operationsFlags.format, "format", "text", "output format: text, json")
}

func listOperations(cmd *cobra.Command, _ []string) error {
	infos := scrub.Operations()

	switch operationsFlags.format {
	case "json":
		data, err := json.MarshalIndent(infos, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	case "text":
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "OPERATION\tCONTENT KEY\tREQUIRED\tOPTIONAL\tBATCHABLE")
		for _, info := range infos {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%v\n",
				info.Name,
				info.ContentKey,
				strings.Join(info.RequiredParams, ","),
				strings.Join(info.OptionalParams, ","),
				info.Batchable,
			)
		}
		return w.Flush()
	default:
		return fmt.Errorf("unsupported format: %s", operationsFlags.format)
	}
}
