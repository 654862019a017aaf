package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/voidshard/citygrid/internal/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		debug    bool
		jsonLogs bool
	)

	rootCmd := &cobra.Command{
		Use:          "citygrid",
		Short:        "Generate city block tile grids",
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			logger.Setup(logger.Config{Debug: debug, JSON: jsonLogs})
		},
	}
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "debug logging")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json-logs", false, "log as json")

	rootCmd.AddCommand(generateCmd())
	rootCmd.AddCommand(printCmd())
	rootCmd.AddCommand(serveCmd())
	return rootCmd
}

func generateCmd() *cobra.Command {
	var (
		flags    cityFlags
		jsonPath string
		pngPath  string
		snapPath string
		scale    int
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Build a city and optionally write it out as json, png or a snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, &flags, outputs{
				JSON:     jsonPath,
				PNG:      pngPath,
				Snapshot: snapPath,
				Scale:    scale,
			})
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&jsonPath, "json", "", "write the city as json to this path")
	cmd.Flags().StringVar(&pngPath, "png", "", "write the city as a png to this path")
	cmd.Flags().StringVar(&snapPath, "snapshot", "", "write a zstd compressed snapshot to this path")
	cmd.Flags().IntVar(&scale, "scale", 16, "pixels per tile for --png")
	return cmd
}

func printCmd() *cobra.Command {
	var (
		flags    cityFlags
		snapPath string
	)

	cmd := &cobra.Command{
		Use:   "print",
		Short: "Print the city grid, one glyph per tile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPrint(cmd, &flags, snapPath)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&snapPath, "from-snapshot", "", "load the city from a snapshot instead of generating it")
	return cmd
}

func serveCmd() *cobra.Command {
	var (
		flags cityFlags
		addr  string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the city over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, &flags, addr)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&addr, "addr", "a", ":8080", "HTTP listen address")
	return cmd
}
