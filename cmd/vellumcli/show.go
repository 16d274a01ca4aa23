package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/vellumchain/vellum/common"
	"github.com/vellumchain/vellum/node"
)

var (
	showCommand = &cli.Command{
		Action:    show,
		Name:      "show",
		Usage:     "Show the content and the hash of the given commit",
		ArgsUsage: "<commit>",
		Description: `
For a block commit, show prints the header fields and the block hash.
Other commit kinds print their kind and content hash.
`,
	}
)

func show(ctx *cli.Context) error {
	config, path := prepare(ctx)
	if err := checkArgs(ctx, "show", 1, 1); err != nil {
		return err
	}
	hash, err := common.DecodeCommitHash(ctx.Args().Get(0))
	if err != nil {
		return err
	}
	n, err := initializeNode(config, path)
	if err != nil {
		return err
	}
	info, err := n.Show(hash)
	if err != nil {
		return err
	}
	printCommitInfo(info)
	return nil
}

func printCommitInfo(info *node.CommitInfo) {
	title := color.New(color.FgCyan, color.Bold)
	_, _ = title.Printf("%v\n", info.Kind)
	fmt.Println("hash:", info.Hash)
	if info.Kind == node.CommitKindBlock && info.BlockHeader != nil {
		header := info.BlockHeader
		fmt.Println("height:", header.Height)
		fmt.Println("author:", header.Author)
		fmt.Println("previous block hash:", header.PreviousBlockHash)
		fmt.Println("timestamp:", header.Timestamp)
	}
}

