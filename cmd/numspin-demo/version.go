package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iw2rmb/numspin"
)

var (
	commit = "none"
	date   = "unknown"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display build information",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "numspin %s\ncommit: %s\nbuilt: %s\n", numspin.VersionTag(), commit, date)
			return nil
		},
	}
}
