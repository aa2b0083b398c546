package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/chaendaya/small-basic-extension/table"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "show <table path>",
		Short:   "Print a converted table in a readable format",
		Example: `  sbstates show states.json`,
		Args:    cobra.ExactArgs(1),
		RunE:    runShow,
	}
	rootCmd.AddCommand(cmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	tbl, err := readStateTable(args[0])
	if err != nil {
		return err
	}

	return writeStateTableReport(os.Stdout, tbl)
}

func readStateTable(path string) (*table.StateTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Cannot open the table %s: %w", path, err)
	}
	defer f.Close()

	d, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	tbl := &table.StateTable{}
	err = json.Unmarshal(d, tbl)
	if err != nil {
		return nil, err
	}

	return tbl, nil
}

const tableTemplate = `# States
{{ range .States }}
## State {{ .Number }}

{{ range .Items -}}
{{ printItem . }}
{{ end -}}
{{ end }}`

func writeStateTableReport(w io.Writer, tbl *table.StateTable) error {
	fns := template.FuncMap{
		"printItem": func(item *table.Item) string {
			return fmt.Sprintf("%v on %v", item.Value, item.Key)
		},
	}

	tmpl, err := template.New("").Funcs(fns).Parse(tableTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, tbl)
}
