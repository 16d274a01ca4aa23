package main

import (
	"github.com/urfave/cli/v2"

	"github.com/vellumchain/vellum/cmd/utils"
	"github.com/vellumchain/vellum/log"
	"github.com/vellumchain/vellum/node"
	"github.com/vellumchain/vellum/types"
)

var (
	genesisCommand = &cli.Command{
		Action:    genesis,
		Name:      "genesis",
		Usage:     "Finalize the genesis setup of the repository",
		ArgsUsage: " ",
	}
	initCommand = &cli.Command{
		Action:    initRepo,
		Name:      "init",
		Usage:     "Initialize a new vellum repository (not implemented yet)",
		ArgsUsage: " ",
	}
	cloneCommand = &cli.Command{
		Action:    clone,
		Name:      "clone",
		Usage:     "Clone and initialize a remote vellum repository",
		ArgsUsage: "<url>",
	}
	syncCommand = &cli.Command{
		Action:    sync,
		Name:      "sync",
		Usage:     "Sync the finalized branch to the given proof",
		ArgsUsage: "<last_finalization_proof>",
		Description: `
sync verifies the given last finalization proof (canonical JSON) and
advances the finalized branch accordingly.
`,
	}
	cleanCommand = &cli.Command{
		Action:    clean,
		Name:      "clean",
		Usage:     "Clean the repository of temporary branches",
		ArgsUsage: " ",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "hard",
				Usage: "also reset the work branch",
			},
		},
	}
	serveCommand = &cli.Command{
		Action:    serve,
		Name:      "serve",
		Usage:     "Serve the repository to the network",
		ArgsUsage: " ",
	}
	updateCommand = &cli.Command{
		Action:    update,
		Name:      "update",
		Usage:     "Update the repository from the network",
		ArgsUsage: " ",
	}
	broadcastCommand = &cli.Command{
		Action:    broadcast,
		Name:      "broadcast",
		Usage:     "Broadcast the local state to the network",
		ArgsUsage: " ",
	}
)

func genesis(ctx *cli.Context) error {
	config, path := prepare(ctx)
	return node.Genesis(config, path)
}

func initRepo(ctx *cli.Context) error {
	prepare(ctx)
	return utils.NotImplemented("init")
}

func clone(ctx *cli.Context) error {
	config, path := prepare(ctx)
	if err := checkArgs(ctx, "clone", 1, 1); err != nil {
		return err
	}
	url := ctx.Args().Get(0)
	log.Info("cloning remote repository", "url", url)
	return node.Clone(config, path, url)
}

func sync(ctx *cli.Context) error {
	config, path := prepare(ctx)
	if err := checkArgs(ctx, "sync", 1, 1); err != nil {
		return err
	}
	proof, err := types.DecodeFinalizationProof(ctx.Args().Get(0))
	if err != nil {
		return err
	}
	n, err := initializeNode(config, path)
	if err != nil {
		return err
	}
	return n.Sync(proof)
}

func clean(ctx *cli.Context) error {
	config, path := prepare(ctx)
	n, err := initializeNode(config, path)
	if err != nil {
		return err
	}
	return n.Clean(ctx.Bool("hard"))
}

func serve(ctx *cli.Context) error {
	config, path := prepare(ctx)
	log.Info("serving the repository", "path", path)
	return node.Serve(config, path)
}

func update(ctx *cli.Context) error {
	config, path := prepare(ctx)
	n, err := initializeNode(config, path)
	if err != nil {
		return err
	}
	return n.Fetch()
}

func broadcast(ctx *cli.Context) error {
	config, path := prepare(ctx)
	n, err := initializeNode(config, path)
	if err != nil {
		return err
	}
	return n.Broadcast()
}
