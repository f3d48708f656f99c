package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zeusync/dimension/internal/injector"
	"github.com/zeusync/dimension/pkg/quantity"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCommand builds the process entry: it loads configuration, applies
// it through the injector and reports the effective settings.
func newRootCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:          "dimension",
		Short:        "Show the effective comparison precision and logging configuration",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var source io.Reader = strings.NewReader("")
			if configPath != "" {
				f, err := os.Open(configPath)
				if err != nil {
					return fmt.Errorf("open config: %w", err)
				}
				defer f.Close()
				source = f
			}

			runtime, err := injector.InitializeRuntime(source)
			if err != nil {
				return err
			}
			defer runtime.Close()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "precision: %d\n", quantity.Precision())
			fmt.Fprintf(out, "tolerance: %g\n", quantity.Tolerance())
			fmt.Fprintf(out, "log level: %s\n", runtime.Logger.GetLevel())
			return nil
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a YAML configuration file")
	return cmd
}
