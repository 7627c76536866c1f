package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/uilens-dev/uilens/internal/config"
)

func NewRootCommand(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "uilens",
		Short: "Reconstruct component hierarchies and resolve them to source files",
		Long: `Uilens is a dev-server companion: it rebuilds the logical component
hierarchy behind a rendered screen region and resolves each component name
back to the source file that defines it, so clicking a region can open the
right file.`,
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Scan the project and serve the overlay channel",
		RunE:  RunServe,
	}
	serveCmd.Flags().Bool("server", true, "Enable the file-resolution channel")
	serveCmd.Flags().String("source-path", "", "Explicit project root (highest precedence)")
	serveCmd.Flags().Int("port", config.DefaultPort, "Channel port")
	serveCmd.Flags().String("mode", config.ModeFull, "Display mode: full|simple")
	serveCmd.Flags().String("output", "", "Build-tool target-asset hint (ignored by the core)")

	scanCmd := &cobra.Command{
		Use:   "scan [path]",
		Short: "Scan a source tree and print the name->file index",
		Args:  cobra.MaximumNArgs(1),
		RunE:  RunScan,
	}
	scanCmd.Flags().Bool("json", false, "Print the full machine-readable scan result")

	resolveCmd := &cobra.Command{
		Use:   "resolve <hierarchy>",
		Short: "Resolve a hierarchy path string to its defining source file",
		Args:  cobra.ExactArgs(1),
		RunE:  RunResolve,
	}
	resolveCmd.Flags().String("source-path", "", "Project root to scan (default: working directory)")
	resolveCmd.Flags().Bool("json", false, "Print machine-readable resolution result")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("uilens %s\n", version)
		},
	}

	rootCmd.AddCommand(
		serveCmd,
		scanCmd,
		resolveCmd,
		versionCmd,
	)

	return rootCmd
}
