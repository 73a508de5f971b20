package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	logLevel   string
	logFile    string
	locale     string
	static     bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "numspin-demo",
		Short:         "Interactive form of numeric spinners and toggles",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd, flags)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", "", "Widget profile file (YAML); built-in form when empty")
	pf.StringVar(&flags.logLevel, "log-level", "info", "Log level (debug, info, warn, error, disabled)")
	pf.StringVar(&flags.logFile, "log-file", "", "Append JSON logs to this file; logging is off when empty")
	pf.StringVar(&flags.locale, "locale", "", "Host locale (BCP 47); defaults to the profile, then LC_ALL/LANG")
	pf.BoolVar(&flags.static, "static", false, "Print the form once instead of starting the TUI")

	cmd.AddCommand(newRunCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
