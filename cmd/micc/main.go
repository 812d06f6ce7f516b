// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ChainSafe/micc/dot"
	"github.com/ChainSafe/micc/internal/log"
	"github.com/urfave/cli"
)

var errNoConfigPath = errors.New("no configuration file path given, use --config")

const usage = "Development node authoring blocks with micc consensus"

var logger = log.NewFromGlobal(log.AddContext("pkg", "cmd"))

var (
	app = cli.NewApp()

	// exportCommand defines the "export" subcommand (ie, `micc export`)
	exportCommand = cli.Command{
		Action:    exportAction,
		Name:      "export",
		Usage:     "Export configuration values to TOML configuration file",
		ArgsUsage: "",
		Flags:     RootFlags,
		Category:  "EXPORT",
		Description: "The export command exports configuration values from the command flags to a TOML file.\n" +
			"\tUsage: micc export --config node.toml --key bob --authorities alice,bob",
	}
)

func init() {
	app.Action = micc
	app.Name = "micc"
	app.Usage = usage
	app.Version = "0.1.0"
	app.Commands = []cli.Command{exportCommand}
	app.Flags = RootFlags
}

func main() {
	if err := app.Run(os.Args); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

// micc is the main entrypoint into the micc node
func micc(ctx *cli.Context) error {
	if arguments := ctx.Args(); len(arguments) > 0 {
		return fmt.Errorf("failed to read command argument: %q", arguments[0])
	}

	cfg, err := createDotConfig(ctx)
	if err != nil {
		logger.Errorf("failed to create node configuration: %s", err)
		return err
	}

	node, err := dot.NewNode(cfg)
	if err != nil {
		logger.Errorf("failed to create node services: %s", err)
		return err
	}

	logger.Info("starting node " + node.Name + "...")
	err = node.Start()
	if err != nil {
		logger.Errorf("failed to start node services: %s", err)
		return err
	}

	signalCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-signalCtx.Done()

	logger.Info("signal interrupt, shutting down...")
	return node.Stop()
}

// exportAction exports the configuration to the --config file
func exportAction(ctx *cli.Context) error {
	path := ctx.String(ConfigFlag.Name)
	if path == "" {
		return errNoConfigPath
	}

	// the flags are applied on top of the defaults, not the target file
	cfg := dot.DefaultConfig()
	err := applyFlags(ctx, cfg)
	if err != nil {
		return err
	}

	err = cfg.Validate()
	if err != nil {
		return err
	}

	err = dot.ExportConfig(cfg, path)
	if err != nil {
		return err
	}

	logger.Info("exported toml configuration to " + path)
	return nil
}
