package cli

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/uilens-dev/uilens/internal/batch"
	"github.com/uilens-dev/uilens/internal/config"
	"github.com/uilens-dev/uilens/internal/server"
	"github.com/uilens-dev/uilens/internal/session"
	"github.com/uilens-dev/uilens/internal/sourcemap"
)

func RunServe(cmd *cobra.Command, args []string) error {
	config.LoadEnv()
	opts, err := optionsFromFlags(cmd)
	if err != nil {
		return err
	}
	opts = opts.WithEnvFallbacks()

	root := opts.SourcePath
	if root == "" {
		if root, err = os.Getwd(); err != nil {
			return fmt.Errorf("failed to resolve working directory: %w", err)
		}
	}

	sess := session.New()
	sess.SetProjectRoot(root)
	sess.SetMode(opts.Mode)

	// Eager scan at process start; a channel rebuild request re-runs it.
	// The same pass seeds the reference maps so the external-usage filter
	// has data before any collaborator pushes its own; later channel pushes
	// replace these wholesale.
	result, err := sourcemap.Scan(root)
	if err != nil {
		return fmt.Errorf("initial source scan failed: %w", err)
	}
	sess.ReplaceSourceMap(result.Map)
	sess.ReplaceProjectFiles(result.Files)
	sess.ReplaceUsageMap(result.Usage)
	sess.ReplaceImportMap(result.Imports)
	for _, issue := range result.Issues {
		log.Printf("uilens: scan issue %s: %s", issue.File, issue.Message)
	}
	log.Printf("uilens: indexed %d files, %d component names under %s",
		len(result.Files), len(result.Map), root)

	if !opts.Server {
		log.Printf("uilens: channel disabled; hierarchies stay available in the overlay, click-to-open is off")
		return nil
	}

	var launcher server.Launcher
	if opts.Editor != "" {
		launcher = server.EditorLauncher{Command: opts.Editor}
	}

	scheduler := batch.NewSerial()
	defer scheduler.Close()
	return server.New(opts, sess, scheduler, launcher).Start()
}

func optionsFromFlags(cmd *cobra.Command) (config.Options, error) {
	opts := config.Default()
	var err error
	if opts.Server, err = cmd.Flags().GetBool("server"); err != nil {
		return opts, err
	}
	if opts.SourcePath, err = cmd.Flags().GetString("source-path"); err != nil {
		return opts, err
	}
	if opts.Port, err = cmd.Flags().GetInt("port"); err != nil {
		return opts, err
	}
	if opts.Mode, err = cmd.Flags().GetString("mode"); err != nil {
		return opts, err
	}
	if opts.Output, err = cmd.Flags().GetString("output"); err != nil {
		return opts, err
	}
	opts.PortSet = cmd.Flags().Changed("port")
	opts.ModeSet = cmd.Flags().Changed("mode")
	return opts, nil
}
