package main

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/urfave/cli/v3"
)

// Version information - populated from debug.ReadBuildInfo(), or set by
// ldflags during build.
var (
	Version   = "dev"
	GoVersion = "unknown"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

func init() {
	parseBuildInfo()
	cli.VersionPrinter = printVersion
}

func parseBuildInfo() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		Version = info.Main.Version
	}
	GoVersion = info.GoVersion

	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			GitCommit = setting.Value
		case "vcs.time":
			BuildTime = setting.Value
		}
	}
}

func printVersion(command *cli.Command) {
	w := command.Root().Writer
	fmt.Fprintf(w, "%s %s\n", appName, Version)
	fmt.Fprintf(w, "  Go version: %s\n", GoVersion)
	fmt.Fprintf(w, "  Build time: %s\n", BuildTime)
	fmt.Fprintf(w, "  Git commit: %s\n", GitCommit)
}

func newVersionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Print version information",
		Action: func(ctx context.Context, command *cli.Command) error {
			printVersion(command)
			return nil
		},
	}
}
