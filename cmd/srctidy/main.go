package main

import (
	"errors"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"srctidy/internal/driver"
	"srctidy/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "srctidy",
	Short: "Source-tree text normalizer",
	Long:  `srctidy walks a directory tree and normalizes whitespace and single-line comments in the selected files`,
}

// main initializes the CLI by setting the command version, registering
// subcommands and persistent flags, and then executes the root command.
// A missing target path exits with 1, a target that is neither a file nor a
// directory with 2.
func main() {
	// Устанавливаем версию для автоматического флага --version
	rootCmd.Version = version.Version

	// Добавляем команды
	rootCmd.AddCommand(fixCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Bool("timings", false, "show per-stage timing information")
	rootCmd.PersistentFlags().String("log-level", "warn", "log verbosity (debug|info|warn|error)")

	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, driver.ErrPathNotFound) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// applyColorMode resolves the persistent --color flag and configures the
// global color state.
func applyColorMode(cmd *cobra.Command) error {
	mode, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return err
	}
	switch mode {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	case "auto":
		color.NoColor = !isTerminal(os.Stdout)
	default:
		return errors.New(`--color must be "auto", "on" or "off"`)
	}
	return nil
}
