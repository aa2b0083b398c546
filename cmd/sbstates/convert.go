package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/chaendaya/small-basic-extension/table"
	"github.com/spf13/cobra"
)

var convertFlags = struct {
	output  *string
	noEmpty *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "convert <state dump path>",
		Short:   "Convert a state dump into a JSON table",
		Example: `  sbstates convert states.txt -o states.json`,
		Args:    cobra.ExactArgs(1),
		RunE:    runConvert,
	}
	convertFlags.output = cmd.Flags().StringP("output", "o", "out.json", "output file path")
	convertFlags.noEmpty = cmd.Flags().Bool("no-empty", false, "do not include states that have no entries of their own")
	rootCmd.AddCommand(cmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	tbl, err := readStateDump(args[0])
	if err != nil {
		return err
	}

	err = writeStateTable(tbl, *convertFlags.output)
	if err != nil {
		return fmt.Errorf("Cannot write the output file %s: %w", *convertFlags.output, err)
	}

	fmt.Fprintf(os.Stdout, "Wrote: %v\n", *convertFlags.output)

	return nil
}

func readStateDump(path string) (*table.StateTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Cannot open the state dump %s: %w", path, err)
	}
	defer f.Close()

	var opts []table.ConvertOption
	if *convertFlags.noEmpty {
		opts = append(opts, table.OmitEmptyStates())
	}
	return table.Convert(f, opts...)
}

func writeStateTable(tbl *table.StateTable, path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	e := json.NewEncoder(f)
	e.SetEscapeHTML(false)
	e.SetIndent("", "  ")
	return e.Encode(tbl)
}
