package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/uilens-dev/uilens/internal/fileutil"
	"github.com/uilens-dev/uilens/internal/server"
	"github.com/uilens-dev/uilens/internal/sourcemap"
)

func RunResolve(cmd *cobra.Command, args []string) error {
	root, err := cmd.Flags().GetString("source-path")
	if err != nil {
		return err
	}
	if root == "" {
		if root, err = os.Getwd(); err != nil {
			return fmt.Errorf("failed to resolve working directory: %w", err)
		}
	}
	asJSON, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}

	result, err := sourcemap.Scan(root)
	if err != nil {
		return err
	}

	file, ok := server.ResolvePath(args[0], result.Map)
	if asJSON {
		return fileutil.PrintJSON(map[string]any{
			"hierarchy": args[0],
			"file":      file,
			"resolved":  ok,
		})
	}
	if !ok {
		fmt.Printf("no source file resolved for %q\n", args[0])
		return nil
	}
	fmt.Println(file)
	return nil
}
