package main

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"golang.org/x/text/language"

	"github.com/iw2rmb/numspin/format"
	"github.com/iw2rmb/numspin/internal/config"
	"github.com/iw2rmb/numspin/internal/logger"
)

//go:embed default.yaml
var defaultProfile []byte

func newRunCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the demo form (the default command)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd, flags)
		},
	}
}

func runDemo(cmd *cobra.Command, flags *rootFlags) error {
	log, closeLog, err := openLogger(flags)
	if err != nil {
		return err
	}
	defer closeLog()

	file, err := loadProfile(flags.configPath)
	if err != nil {
		return err
	}

	host, err := hostLocale(flags.locale, file.Locale, os.Getenv)
	if err != nil {
		return err
	}
	log.Info().
		Str("config", flags.configPath).
		Str("locale", host).
		Int("widgets", len(file.Widgets)).
		Int("toggles", len(file.Toggles)).
		Msg("starting demo")

	f, err := newForm(file, host, &log)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if flags.static || !isTerminal(out) {
		_, err := fmt.Fprintln(out, f.View())
		return err
	}

	p := tea.NewProgram(f,
		tea.WithContext(cmd.Context()),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("run form: %w", err)
	}
	if fm, ok := final.(form); ok {
		_, err = fmt.Fprint(out, fm.Summary())
	}
	return err
}

// openLogger returns the program logger and its closer. Without a log file
// the logger discards everything, since the TUI owns the terminal.
func openLogger(flags *rootFlags) (zerolog.Logger, func(), error) {
	noop := func() {}
	if flags.logFile == "" {
		log, err := logger.New(logger.Options{Level: flags.logLevel, Writer: io.Discard})
		return log, noop, err
	}

	fh, err := os.OpenFile(flags.logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return zerolog.Nop(), noop, fmt.Errorf("open log file: %w", err)
	}
	log, err := logger.New(logger.Options{Level: flags.logLevel, Writer: fh})
	if err != nil {
		_ = fh.Close()
		return zerolog.Nop(), noop, err
	}
	return log, func() { _ = fh.Close() }, nil
}

func loadProfile(path string) (*config.File, error) {
	if strings.TrimSpace(path) == "" {
		return config.Parse("<built-in>", defaultProfile)
	}
	return config.Load(path)
}

// hostLocale picks the flag, then the profile, then the POSIX locale
// variables, then format.DefaultHostLocale.
func hostLocale(flag, profile string, getenv func(string) string) (string, error) {
	if flag != "" {
		if _, err := language.Parse(flag); err != nil {
			return "", fmt.Errorf("invalid --locale %q: %w", flag, err)
		}
		return flag, nil
	}
	if profile != "" {
		return profile, nil
	}
	for _, name := range []string{"LC_ALL", "LC_NUMERIC", "LANG"} {
		if tag := posixLocale(getenv(name)); tag != "" {
			return tag, nil
		}
	}
	return format.DefaultHostLocale, nil
}

// posixLocale converts "de_DE.UTF-8@euro" to "de-DE". C and POSIX have no
// language and yield "".
func posixLocale(v string) string {
	if i := strings.IndexAny(v, ".@"); i >= 0 {
		v = v[:i]
	}
	if v == "" || v == "C" || v == "POSIX" {
		return ""
	}
	tag, err := language.Parse(strings.ReplaceAll(v, "_", "-"))
	if err != nil {
		return ""
	}
	return tag.String()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
