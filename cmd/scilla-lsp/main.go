// SPDX-License-Identifier: Apache-2.0
package main

import (
	"log"
	"os"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"
	"gopkg.in/urfave/cli.v1"

	"scilla/internal/config"
	"scilla/internal/lsp"
)

const lsName = "scilla" // Name identifier for the language server

var (
	version = "0.1.0"        // Server version
	handler protocol.Handler // Protocol handler instance (wired up below)
)

var configFileFlag = cli.StringFlag{
	Name:  "config",
	Usage: "TOML configuration file",
}

func main() {
	app := cli.NewApp()
	app.Name = "scilla-lsp"
	app.Usage = "Scilla language server over stdio"
	app.Version = version
	app.Flags = []cli.Flag{configFileFlag}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		log.Println("Error starting Scilla LSP server:", err)
		os.Exit(1)
	}
}

func run(ctx *cli.Context) error {
	cfg, err := config.Load(ctx.GlobalString(configFileFlag.Name))
	if err != nil {
		return err
	}

	var logFile *string
	if cfg.LSP.LogFile != "" {
		logFile = &cfg.LSP.LogFile
	}
	commonlog.Configure(cfg.LSP.Verbosity, logFile)

	scillaHandler := lsp.NewScillaHandler()

	handler = protocol.Handler{
		Initialize:                     scillaHandler.Initialize,
		Initialized:                    scillaHandler.Initialized,
		Shutdown:                       scillaHandler.Shutdown,
		SetTrace:                       scillaHandler.SetTrace,
		TextDocumentDidOpen:            scillaHandler.TextDocumentDidOpen,
		TextDocumentDidClose:           scillaHandler.TextDocumentDidClose,
		TextDocumentDidChange:          scillaHandler.TextDocumentDidChange,
		TextDocumentDocumentSymbol:     scillaHandler.TextDocumentDocumentSymbol,
		TextDocumentSemanticTokensFull: scillaHandler.TextDocumentSemanticTokensFull,
	}

	// debug=false keeps glsp's own message tracing off; verbosity above
	// controls our loggers.
	s := server.NewServer(&handler, lsName, false)

	log.Println("Starting Scilla LSP server...")
	return s.RunStdio()
}
