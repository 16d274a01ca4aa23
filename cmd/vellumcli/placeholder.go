package main

import (
	"github.com/urfave/cli/v2"

	"github.com/vellumchain/vellum/cmd/utils"
)

// Placeholder commands for functionality that is not built yet. They
// stay on the command surface and fail visibly so that every command
// produces a defined outcome.
var (
	gitCommand = &cli.Command{
		Action:    gitCmd,
		Name:      "git",
		Usage:     "Run a git command in the repository (not implemented yet)",
		ArgsUsage: "[args...]",
	}
	networkCommand = &cli.Command{
		Action:    network,
		Name:      "network",
		Usage:     "Show the network status (not implemented yet)",
		ArgsUsage: " ",
	}
	chatCommand = &cli.Command{
		Action:    chat,
		Name:      "chat",
		Usage:     "Create a chat commit (not implemented yet)",
		ArgsUsage: "[message]",
	}
	checkPushCommand = &cli.Command{
		Action:    checkPush,
		Name:      "check-push",
		Usage:     "Check an incoming push (not implemented yet)",
		ArgsUsage: "[args...]",
		Hidden:    true,
	}
	notifyPushCommand = &cli.Command{
		Action:    notifyPush,
		Name:      "notify-push",
		Usage:     "Notify of a completed push (not implemented yet)",
		ArgsUsage: "[args...]",
		Hidden:    true,
	}
)

func gitCmd(ctx *cli.Context) error {
	prepare(ctx)
	return utils.NotImplemented("git")
}

func network(ctx *cli.Context) error {
	prepare(ctx)
	return utils.NotImplemented("network")
}

func chat(ctx *cli.Context) error {
	prepare(ctx)
	return utils.NotImplemented("chat")
}

func checkPush(ctx *cli.Context) error {
	prepare(ctx)
	return utils.NotImplemented("check-push")
}

func notifyPush(ctx *cli.Context) error {
	prepare(ctx)
	return utils.NotImplemented("notify-push")
}
