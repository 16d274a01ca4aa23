package main

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/urfave/cli/v2"

	"github.com/vellumchain/vellum/cmd/utils"
	"github.com/vellumchain/vellum/log"
	"github.com/vellumchain/vellum/node"
	"github.com/vellumchain/vellum/params"
	"github.com/vellumchain/vellum/rpc/client"
)

var (
	clientIdentifier = "vellumcli"
	// Git SHA1 commit hash of the release (set via linker flags)
	gitCommit = ""
	gitDate   = ""
	// The app that holds all commands and flags.
	app = utils.NewApp(clientIdentifier, gitCommit, gitDate, "the vellum node command line interface")
)

// initializeNode is swapped out in tests to route commands to a fake
// node.
var initializeNode = node.Initialize

func initApp() {
	app.HideVersion = true // we have a command to print the version
	app.Copyright = "Copyright 2024-2026 The Vellum Authors"
	app.Commands = []*cli.Command{
		genesisCommand,
		initCommand,
		cloneCommand,
		syncCommand,
		cleanCommand,
		createCommand,
		voteCommand,
		vetoCommand,
		consensusCommand,
		gitCommand,
		showCommand,
		networkCommand,
		serveCommand,
		updateCommand,
		broadcastCommand,
		chatCommand,
		signCommand,
		checkPushCommand,
		notifyPushCommand,
		utils.VersionCommand,
	}
	app.Flags = []cli.Flag{
		utils.DataDirFlag,
	}
	app.Flags = append(app.Flags, utils.CommonLogFlags...)
	sort.Sort(cli.CommandsByName(app.Commands))
}

func main() {
	initApp()
	client.InitHTTPClient()
	if err := app.Run(os.Args); err != nil {
		var integrityErr *node.IntegrityError
		if errors.As(err, &integrityErr) {
			// reserved classification point for repository tampering;
			// remediation is intentionally not defined yet
			log.Error("repository integrity violation detected", "err", integrityErr)
			os.Exit(1)
		}
		log.Println(err)
		os.Exit(1)
	}
}

// prepare configures logging and loads the node config from the data
// directory. Every command starts with it.
func prepare(ctx *cli.Context) (*params.NodeConfig, string) {
	utils.SetLogger(ctx)
	dataDir := utils.GetDataDir(ctx)
	config := params.LoadConfig(dataDir)
	return config, dataDir
}

// checkArgs rejects wrong arity and prints the command help.
func checkArgs(ctx *cli.Context, command string, min, max int) error {
	if ctx.NArg() >= min && ctx.NArg() <= max {
		return nil
	}
	_ = cli.ShowCommandHelp(ctx, command)
	fmt.Println()
	return fmt.Errorf("invalid arguments: %q", ctx.Args())
}
