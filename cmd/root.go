package main

import (
	"github.com/spf13/cobra"

	"github.com/astrokit/unitconv/internal/build"
)

var RootCommand = &cobra.Command{
	Use:     "unitconv",
	Short:   "Convert values between physical-unit expressions",
	Version: build.Version(),
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
}

func init() {
	RootCommand.AddGroup(
		&cobra.Group{ID: "commands", Title: "Commands:"},
	)
	RootCommand.AddCommand(
		ConvertCommand,
		NewCmdBreakdown(),
		NewCmdList(),
		NewCmdBatch(),
	)
}
