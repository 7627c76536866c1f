package cli

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/uilens-dev/uilens/internal/fileutil"
	"github.com/uilens-dev/uilens/internal/sourcemap"
)

func RunScan(cmd *cobra.Command, args []string) error {
	root := ""
	if len(args) > 0 {
		root = args[0]
	} else {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to resolve working directory: %w", err)
		}
		root = wd
	}
	asJSON, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}

	result, err := sourcemap.Scan(root)
	if err != nil {
		return err
	}

	if asJSON {
		return fileutil.PrintJSON(result)
	}

	names := make([]string, 0, len(result.Map))
	for name := range result.Map {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Printf("scanned %s: %d files, %d component names\n", root, len(result.Files), len(names))
	for _, name := range names {
		for _, candidate := range result.Map[name] {
			fmt.Printf("- %s  %s (tier %d)\n", name, candidate.Path, candidate.Priority)
		}
	}
	for _, issue := range result.Issues {
		fmt.Printf("warning: %s: %s\n", issue.File, issue.Message)
	}
	return nil
}
