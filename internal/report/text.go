package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"scilla/contract"
	"scilla/internal/config"
)

// writeText prints a heading followed by one table row per declaration.
func writeText(w io.Writer, c contract.Contract, out config.Output) error {
	bold := color.New(color.Bold)
	dim := color.New(color.Faint)
	if !out.Color {
		bold.DisableColor()
		dim.DisableColor()
	}

	if _, err := bold.Fprintf(w, "contract %s\n", c.Name); err != nil {
		return err
	}
	if c.Library != "" {
		dim.Fprintf(w, "library %s\n", c.Library)
	}
	if len(c.Imports) > 0 {
		names := make([]string, len(c.Imports))
		for i, imp := range c.Imports {
			names[i] = imp.Name
			if imp.Alias != "" {
				names[i] += " as " + imp.Alias
			}
		}
		dim.Fprintf(w, "import %s\n", strings.Join(names, " "))
	}
	fmt.Fprintln(w)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Kind", "Name", "Signature"})
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	table.SetColumnSeparator("")
	table.SetCenterSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)

	for _, f := range c.InitParams {
		table.Append([]string{"param", f.Name, f.Type.String()})
	}
	for _, f := range c.Fields {
		table.Append([]string{"field", f.Name, f.Type.String()})
	}
	for _, t := range c.Transitions {
		table.Append([]string{"transition", t.Name, signature(t.Params)})
	}
	if out.ShowProcedures {
		for _, p := range c.Procedures {
			table.Append([]string{"procedure", p.Name, signature(p.Params)})
		}
	}
	if out.ShowTypes {
		for _, def := range c.Types {
			ctors := make([]string, len(def.Constructors))
			for i, ctor := range def.Constructors {
				ctors[i] = constructorSignature(ctor)
			}
			table.Append([]string{"type", def.Name, "| " + strings.Join(ctors, " | ")})
		}
	}

	table.Render()
	return nil
}
