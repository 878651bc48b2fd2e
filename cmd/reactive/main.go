package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	rerrors "github.com/angeljsb/reactive/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ┬─┐┌─┐┌─┐┌─┐┌┬┐┬┬  ┬┌─┐
  ├┬┘├┤ ├─┤│   │ │└┐┌┘├┤
  ┴└─└─┘┴ ┴└─┘ ┴ ┴ └┘ └─┘
`

func main() {
	rootCmd := &cobra.Command{
		Use:   "reactive",
		Short: "Server-driven UI components for Go",
		Long: `Reactive is a retained-mode UI component library for Go.

Components hold state, render trees, and patch them in place on
every update. The CLI runs a local preview server that hosts
components over a thin WebSocket client:

  • Server-side components with reactive state
  • Minimal in-place tree patching
  • Live preview gallery with demos
  • Prometheus metrics and optional tracing`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		previewCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		var coded *rerrors.Error
		if errors.As(err, &coded) {
			fmt.Fprint(os.Stderr, coded.Format())
		} else {
			errorMsg("%s", err)
		}
		os.Exit(1)
	}
}

// printBanner prints the ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}

// warn prints a warning message.
func warn(format string, args ...any) {
	fmt.Printf("\033[33m⚠\033[0m %s\n", fmt.Sprintf(format, args...))
}

// errorMsg prints an error message.
func errorMsg(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "\033[31m✗\033[0m %s\n", fmt.Sprintf(format, args...))
}
