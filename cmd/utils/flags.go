package utils

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/vellumchain/vellum/common"
	"github.com/vellumchain/vellum/log"
)

var (
	// DataDirFlag specifies the node's working directory, which holds
	// the config file and the repository.
	DataDirFlag = &cli.StringFlag{
		Name:    "datadir",
		Aliases: []string{"d"},
		Usage:   "Specify the node working directory",
		Value:   ".",
	}
	// VerbosityFlag sets log verbosity
	VerbosityFlag = &cli.Uint64Flag{
		Name:    "verbosity",
		Aliases: []string{"v"},
		Usage:   "log verbosity (0:panic, 1:fatal, 2:error, 3:warn, 4:info, 5:debug, 6:trace)",
		Value:   4,
	}
	// JSONFormatFlag output log in json format
	JSONFormatFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "output log in json format",
	}
	// ColorFormatFlag output log in color text format
	ColorFormatFlag = &cli.BoolFlag{
		Name:  "color",
		Usage: "output log in color text format",
		Value: true,
	}
	// LogFileFlag specifies the log file
	LogFileFlag = &cli.StringFlag{
		Name:  "log",
		Usage: "Specify log file, support rotate",
	}
	// LogRotationFlag rotate log interval
	LogRotationFlag = &cli.Uint64Flag{
		Name:  "rotate",
		Usage: "log rotation time (unit hour)",
		Value: 24,
	}
	// LogMaxAgeFlag how long to keep rotated logs
	LogMaxAgeFlag = &cli.Uint64Flag{
		Name:  "maxage",
		Usage: "log max age (unit day)",
		Value: 7,
	}
)

// CommonLogFlags are the logging flags shared by every command.
var CommonLogFlags = []cli.Flag{
	VerbosityFlag,
	JSONFormatFlag,
	ColorFormatFlag,
	LogFileFlag,
	LogRotationFlag,
	LogMaxAgeFlag,
}

// SetLogger configures the logger from the CLI context.
func SetLogger(ctx *cli.Context) {
	logLevel := ctx.Uint64(VerbosityFlag.Name)
	jsonFormat := ctx.Bool(JSONFormatFlag.Name)
	colorFormat := ctx.Bool(ColorFormatFlag.Name)
	log.SetLogger(uint32(logLevel), jsonFormat, colorFormat)
	logFile := ctx.String(LogFileFlag.Name)
	if logFile != "" {
		log.SetLogFile(logFile, ctx.Uint64(LogRotationFlag.Name), ctx.Uint64(LogMaxAgeFlag.Name))
	}
}

// GetDataDir gets the node working directory from the CLI context.
func GetDataDir(ctx *cli.Context) string {
	return ctx.String(DataDirFlag.Name)
}

// NotImplemented builds the visible failure for a command branch that
// is not built yet.
func NotImplemented(feature string) error {
	return fmt.Errorf("%w: %v", common.ErrNotImplemented, feature)
}
