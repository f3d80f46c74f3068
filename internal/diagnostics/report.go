package diagnostics

import (
	"fmt"
	"io"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"
)

const (
	FormatTable = "table"
	FormatYAML  = "yaml"
)

// Write prints results to w in the given format.
func Write(w io.Writer, format string, results []Result) error {
	switch format {
	case FormatTable, "":
		writeTable(w, results)

		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(results); err != nil {
			return fmt.Errorf("could not encode results: %w", err)
		}

		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func writeTable(w io.Writer, results []Result) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Check", "Target", "Result", "Detail", "Duration"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)

	for _, r := range results {
		status := color.Green.Sprint("PASS")
		if !r.Passed {
			status = color.Red.Sprint("FAIL")
		}
		table.Append([]string{r.Check, r.Target, status, r.Detail, r.Duration.String()})
	}
	table.Render()
}
