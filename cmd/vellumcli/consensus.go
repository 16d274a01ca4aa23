package main

import (
	"github.com/urfave/cli/v2"

	"github.com/vellumchain/vellum/cmd/utils"
	"github.com/vellumchain/vellum/types"
)

var (
	voteCommand = &cli.Command{
		Action:    vote,
		Name:      "vote",
		Usage:     "Vote on the given agenda commit",
		ArgsUsage: "<commit>",
	}
	vetoCommand = &cli.Command{
		Action:    veto,
		Name:      "veto",
		Usage:     "Veto the current round, or the given block commit",
		ArgsUsage: "[<commit>]",
		Description: `
Without an argument, veto vetoes the current consensus round. With a
block commit hash, it vetoes that specific block. An empty string
argument counts as absent.
`,
	}
	consensusCommand = &cli.Command{
		Action:    consensus,
		Name:      "consensus",
		Usage:     "Make a progress on the consensus",
		ArgsUsage: " ",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "show",
				Usage: "show the consensus status instead of making a progress (not implemented yet)",
			},
		},
	}
)

func vote(ctx *cli.Context) error {
	config, path := prepare(ctx)
	if err := checkArgs(ctx, "vote", 1, 1); err != nil {
		return err
	}
	hash, err := types.DecodeVoteTarget(ctx.Args().Get(0))
	if err != nil {
		return err
	}
	n, err := initializeNode(config, path)
	if err != nil {
		return err
	}
	return n.Vote(hash)
}

func veto(ctx *cli.Context) error {
	config, path := prepare(ctx)
	if err := checkArgs(ctx, "veto", 0, 1); err != nil {
		return err
	}
	commit := ctx.Args().Get(0)
	if commit == "" {
		// no target: veto the current round
		n, err := initializeNode(config, path)
		if err != nil {
			return err
		}
		return n.VetoRound()
	}
	hash, err := types.DecodeVetoTarget(commit)
	if err != nil {
		return err
	}
	n, err := initializeNode(config, path)
	if err != nil {
		return err
	}
	return n.VetoBlock(hash)
}

func consensus(ctx *cli.Context) error {
	config, path := prepare(ctx)
	if ctx.Bool("show") {
		return utils.NotImplemented("consensus --show")
	}
	n, err := initializeNode(config, path)
	if err != nil {
		return err
	}
	return n.ProgressForConsensus()
}
