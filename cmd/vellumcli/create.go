package main

import (
	"github.com/urfave/cli/v2"

	"github.com/vellumchain/vellum/cmd/utils"
	"github.com/vellumchain/vellum/log"
	"github.com/vellumchain/vellum/types"
)

var (
	createCommand = &cli.Command{
		Name:      "create",
		Usage:     "Create a commit on top of the current work branch",
		ArgsUsage: " ",
		Subcommands: []*cli.Command{
			{
				Action:    createTxDelegate,
				Name:      "tx-delegate",
				Usage:     "Create an extra-agenda delegation transaction",
				ArgsUsage: "<delegator> <delegatee> <governance> <proof>",
				Description: `
delegator and delegatee are hex public keys, governance is a boolean
flag, and proof is the delegator's signature authorizing the
delegation (canonical JSON, as printed by 'sign tx-delegate').
`,
			},
			{
				Action:    createTxUndelegate,
				Name:      "tx-undelegate",
				Usage:     "Create an extra-agenda undelegation transaction",
				ArgsUsage: "<delegator> <proof>",
			},
			{
				Action:    createTxReport,
				Name:      "tx-report",
				Usage:     "Create an extra-agenda report transaction (not implemented yet)",
				ArgsUsage: " ",
			},
			{
				Action:    createBlock,
				Name:      "block",
				Usage:     "Create a block commit on top of the current agenda",
				ArgsUsage: " ",
			},
			{
				Action:    createAgenda,
				Name:      "agenda",
				Usage:     "Create an agenda commit from the pending transactions",
				ArgsUsage: " ",
			},
		},
	}
)

func createTxDelegate(ctx *cli.Context) error {
	config, path := prepare(ctx)
	if err := checkArgs(ctx, "tx-delegate", 4, 4); err != nil {
		return err
	}
	tx, err := types.NewTxDelegate(
		ctx.Args().Get(0),
		ctx.Args().Get(1),
		ctx.Args().Get(2),
		ctx.Args().Get(3),
	)
	if err != nil {
		return err
	}
	n, err := initializeNode(config, path)
	if err != nil {
		return err
	}
	if err := n.CreateExtraAgendaTransaction(tx); err != nil {
		return err
	}
	log.Info("created delegation transaction", "delegator", tx.Delegator, "delegatee", tx.Delegatee)
	return nil
}

func createTxUndelegate(ctx *cli.Context) error {
	config, path := prepare(ctx)
	if err := checkArgs(ctx, "tx-undelegate", 2, 2); err != nil {
		return err
	}
	tx, err := types.NewTxUndelegate(ctx.Args().Get(0), ctx.Args().Get(1))
	if err != nil {
		return err
	}
	n, err := initializeNode(config, path)
	if err != nil {
		return err
	}
	if err := n.CreateExtraAgendaTransaction(tx); err != nil {
		return err
	}
	log.Info("created undelegation transaction", "delegator", tx.Delegator)
	return nil
}

func createTxReport(ctx *cli.Context) error {
	prepare(ctx)
	return utils.NotImplemented("create tx-report")
}

func createBlock(ctx *cli.Context) error {
	config, path := prepare(ctx)
	n, err := initializeNode(config, path)
	if err != nil {
		return err
	}
	return n.CreateBlock()
}

func createAgenda(ctx *cli.Context) error {
	config, path := prepare(ctx)
	n, err := initializeNode(config, path)
	if err != nil {
		return err
	}
	return n.CreateAgenda()
}
