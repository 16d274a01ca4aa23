package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/vellumchain/vellum/common"
	"github.com/vellumchain/vellum/crypto"
	"github.com/vellumchain/vellum/types"
)

var (
	signCommand = &cli.Command{
		Name:      "sign",
		Usage:     "Sign a payload with the configured private key",
		ArgsUsage: " ",
		Description: `
sign commands are fully local: they construct the payload, sign it and
print the signature without touching the node.
`,
		Subcommands: []*cli.Command{
			{
				Action:    signTxDelegate,
				Name:      "tx-delegate",
				Usage:     "Sign a delegation of the operator's voting weight",
				ArgsUsage: "<delegatee> <governance> <target_height>",
			},
			{
				Action:    signTxUndelegate,
				Name:      "tx-undelegate",
				Usage:     "Sign an undelegation of the operator's voting weight",
				ArgsUsage: "<target_height>",
			},
			{
				Action:    signCustom,
				Name:      "custom",
				Usage:     "Sign an arbitrary 32-byte hash",
				ArgsUsage: "<hash>",
			},
		},
	}
)

func signTxDelegate(ctx *cli.Context) error {
	config, _ := prepare(ctx)
	if err := checkArgs(ctx, "tx-delegate", 3, 3); err != nil {
		return err
	}
	targetHeight, err := strconv.ParseUint(ctx.Args().Get(2), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid target height: %q", ctx.Args().Get(2))
	}
	delegator, err := config.OperatorPublicKey()
	if err != nil {
		return err
	}
	data, err := types.NewDelegationData(delegator, ctx.Args().Get(0), ctx.Args().Get(1), targetHeight)
	if err != nil {
		return err
	}
	privkey, err := config.OperatorPrivateKey()
	if err != nil {
		return err
	}
	signature, err := crypto.Sign(*data, privkey)
	if err != nil {
		return err
	}
	printSignature(signature.String())
	return nil
}

func signTxUndelegate(ctx *cli.Context) error {
	config, _ := prepare(ctx)
	if err := checkArgs(ctx, "tx-undelegate", 1, 1); err != nil {
		return err
	}
	targetHeight, err := strconv.ParseUint(ctx.Args().Get(0), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid target height: %q", ctx.Args().Get(0))
	}
	delegator, err := config.OperatorPublicKey()
	if err != nil {
		return err
	}
	data := types.NewUndelegationData(delegator, targetHeight)
	privkey, err := config.OperatorPrivateKey()
	if err != nil {
		return err
	}
	signature, err := crypto.Sign(*data, privkey)
	if err != nil {
		return err
	}
	printSignature(signature.String())
	return nil
}

func signCustom(ctx *cli.Context) error {
	config, _ := prepare(ctx)
	if err := checkArgs(ctx, "custom", 1, 1); err != nil {
		return err
	}
	hash, err := common.DecodeHash256(ctx.Args().Get(0))
	if err != nil {
		return err
	}
	privkey, err := config.OperatorPrivateKey()
	if err != nil {
		return err
	}
	signature, err := crypto.SignHash256(hash, privkey)
	if err != nil {
		return err
	}
	printSignature(signature.Hex())
	return nil
}

func printSignature(s string) {
	_, _ = color.New(color.FgGreen).Println(s)
}
