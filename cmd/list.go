package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/astrokit/unitconv"
)

// Flags for unitconv list
var (
	ListSummary  bool // Display a comma-separated summary of unit names
	ListPrefixes bool // List recognized SI prefixes
	ListAliases  bool // List spelling aliases
)

// NewCmdList returns the [cobra.Command] used for listing the recognized
// units, prefixes, and aliases.
//
// If --config is specified, units defined there are included.
//
// Usage:
//
//	unitconv list [flags]
//
// Aliases:
//
//	list, l
func NewCmdList() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"l"},
		Short:   "List recognized units, prefixes, and aliases",
		GroupID: "commands",
		Args:    cobra.NoArgs,
		RunE:    listUnits,
	}

	cmd.Flags().SortFlags = false
	addConfigFlags(cmd.Flags())
	cmd.Flags().BoolVarP(&ListSummary, "summary", "s", false, "Display a summary of unit names")
	cmd.Flags().BoolVarP(&ListPrefixes, "prefixes", "p", false, "List recognized SI prefixes")
	cmd.Flags().BoolVarP(&ListAliases, "aliases", "a", false, "List spelling aliases")

	cmd.MarkFlagFilename("config", "yaml", "yml")
	cmd.MarkFlagDirname("config")

	return cmd
}

func listUnits(cmd *cobra.Command, _ []string) error {
	conv, err := loadConverter()
	if err != nil {
		return err
	}
	t := conv.Table()

	switch {
	case ListPrefixes:
		for _, p := range t.Prefixes() {
			cmd.Printf("%s\t%s\n", p.Symbol, formatResult(p.Factor))
		}
	case ListAliases:
		for _, a := range t.Aliases() {
			cmd.Printf("%q -> %q\n", a.Pattern, a.Replacement)
		}
	case ListSummary:
		names := make([]string, 0, len(t.Units()))
		for _, u := range t.Units() {
			names = append(names, u.Name)
		}
		cmd.Println(strings.Join(names, ", "))
	default:
		printUnits(cmd, t.Units())
	}
	return nil
}

func printUnits(cmd *cobra.Command, units []unitconv.UnitDef) {
	for _, u := range units {
		if u.Nonlinear {
			cmd.Printf("%s\tnonlinear\t%s\n", u.Name, u.Base)
			continue
		}
		cmd.Printf("%s\t%s\t%s\n", u.Name, formatResult(u.Factor), u.Base)
	}
}
