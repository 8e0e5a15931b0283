// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	pkgerrors "github.com/pkg/errors"
	"gopkg.in/urfave/cli.v1"

	"scilla"
	"scilla/internal/config"
	"scilla/internal/errors"
	"scilla/internal/report"
)

var version = "0.1.0"

var (
	configFileFlag = cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
	}
	formatFlag = cli.StringFlag{
		Name:  "format",
		Usage: "output format (text, json or yaml)",
	}
	noColorFlag = cli.BoolFlag{
		Name:  "no-color",
		Usage: "disable coloured output",
	}
	proceduresFlag = cli.BoolFlag{
		Name:  "procedures",
		Usage: "include procedures in the output (--procedures=false to hide them)",
	}
	typesFlag = cli.BoolFlag{
		Name:  "types",
		Usage: "include library types in the output (--types=false to hide them)",
	}
)

var (
	parseCommand = cli.Command{
		Action:      parse,
		Name:        "parse",
		Usage:       "Print the interface of one or more contracts",
		ArgsUsage:   "<file.scilla>...",
		Description: `The parse command prints the parameters, fields, transitions, procedures and library types of each contract.`,
	}
	checkCommand = cli.Command{
		Action:      check,
		Name:        "check",
		Usage:       "Report syntax and type errors",
		ArgsUsage:   "<file.scilla>...",
		Description: `The check command exits with a non-zero status when any file fails to parse.`,
	}
	dumpConfigCommand = cli.Command{
		Action:      dumpConfig,
		Name:        "dumpconfig",
		Usage:       "Show configuration values",
		ArgsUsage:   "[dumpfile]",
		Description: `The dumpconfig command shows the effective configuration as TOML.`,
	}
)

func main() {
	app := cli.NewApp()
	app.Name = "scilla-cli"
	app.Usage = "inspect Scilla smart contracts"
	app.Version = version
	app.Flags = []cli.Flag{configFileFlag, formatFlag, noColorFlag, proceduresFlag, typesFlag}
	app.Commands = []cli.Command{parseCommand, checkCommand, dumpConfigCommand}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// makeConfig loads the configuration file and applies the global flags.
func makeConfig(ctx *cli.Context) (config.Config, error) {
	cfg, err := config.Load(ctx.GlobalString(configFileFlag.Name))
	if err != nil {
		return cfg, err
	}

	if ctx.GlobalIsSet(formatFlag.Name) {
		cfg.Output.Format = ctx.GlobalString(formatFlag.Name)
	}
	if ctx.GlobalBool(noColorFlag.Name) {
		cfg.Output.Color = false
	}
	if ctx.GlobalIsSet(proceduresFlag.Name) {
		cfg.Output.ShowProcedures = ctx.GlobalBool(proceduresFlag.Name)
	}
	if ctx.GlobalIsSet(typesFlag.Name) {
		cfg.Output.ShowTypes = ctx.GlobalBool(typesFlag.Name)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	color.NoColor = color.NoColor || !cfg.Output.Color
	return cfg, nil
}

func parse(ctx *cli.Context) error {
	cfg, err := makeConfig(ctx)
	if err != nil {
		return err
	}
	return forEachFile(ctx, func(path string, analysis *scilla.Analysis) error {
		return report.Write(os.Stdout, analysis.Contract, cfg.Output)
	})
}

func check(ctx *cli.Context) error {
	if _, err := makeConfig(ctx); err != nil {
		return err
	}
	return forEachFile(ctx, func(path string, analysis *scilla.Analysis) error {
		color.Green("%s: ok", path)
		return nil
	})
}

// forEachFile analyses every file argument, printing failures as they
// occur, and calls fn for the files that succeed.
func forEachFile(ctx *cli.Context, fn func(path string, analysis *scilla.Analysis) error) error {
	if ctx.NArg() == 0 {
		return cli.NewExitError("no input files", 2)
	}

	startTime := time.Now()
	failed := 0
	for _, path := range ctx.Args() {
		analysis, err := analyze(path)
		if err != nil {
			printError(path, err)
			failed++
			continue
		}
		if err := fn(path, analysis); err != nil {
			return err
		}
	}

	duration := formatDuration(time.Since(startTime))
	if failed > 0 {
		color.Red("%d of %d file(s) failed after %s", failed, ctx.NArg(), duration)
		return cli.NewExitError("", 1)
	}
	fmt.Fprintln(os.Stderr, color.GreenString("Successfully processed %d file(s) in %s", ctx.NArg(), duration))
	return nil
}

func analyze(path string) (*scilla.Analysis, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.IO(path, err)
	}
	return scilla.Analyze(path, string(source))
}

func printError(path string, err error) {
	var serr *errors.Error
	if !pkgerrors.As(err, &serr) {
		fmt.Fprintf(os.Stderr, "%s: %v\n", color.RedString("error"), err)
		return
	}

	var source string
	if serr.Kind != errors.KindIO {
		if content, rerr := os.ReadFile(path); rerr == nil {
			source = string(content)
		}
	}
	fmt.Fprint(os.Stderr, errors.NewErrorReporter(path, source).FormatError(serr))
}

func dumpConfig(ctx *cli.Context) error {
	cfg, err := makeConfig(ctx)
	if err != nil {
		return err
	}

	out, err := cfg.Marshal()
	if err != nil {
		return err
	}

	dump := os.Stdout
	if ctx.NArg() > 0 {
		dump, err = os.OpenFile(ctx.Args().Get(0), os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			return err
		}
		defer dump.Close()
	}
	_, err = dump.Write(out)
	return err
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
