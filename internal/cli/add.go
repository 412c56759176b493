package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tacogips/igno/internal/app"
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add TEMPLATES...",
	Short: "Add templates to a gitignore file",
	Long: `Add the named templates to an existing gitignore file.

A template that already has a section in the file replaces that section
in place, keeping its position; you are asked before a section is
replaced. New templates are appended at the end. Hand-written content in
the file is never touched.

Examples:
  igno add python
  igno add go linux --path ./tools/.gitignore
  igno add node --show-gitignore`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

// Add command flags
var (
	addPath  string
	addEcho  bool
	addForce bool
)

func init() {
	addCmd.Flags().StringVar(&addPath, FlagPath, "", DescPath)
	addCmd.Flags().BoolVar(&addEcho, FlagShowGitignore, false, DescShowGitignore)
	addCmd.Flags().BoolVarP(&addForce, FlagForce, "f", false, DescForce)
}

func runAdd(cmd *cobra.Command, args []string) error {
	opts := app.AddOptions{
		Names:  args,
		Path:   resolvePath(addPath),
		Echo:   addEcho,
		Source: newSource(),
	}
	if !addEcho && !addForce {
		opts.ConfirmReplace = confirmReplace
	}

	result, err := app.Add(cmd.Context(), opts)
	if err != nil {
		return err
	}

	if addEcho {
		printResult(result.Content)
		return nil
	}

	if len(result.Added) > 0 {
		printSuccess(fmt.Sprintf("Added: %s", strings.Join(result.Added, ", ")))
	}
	if len(result.Replaced) > 0 {
		printSuccess(fmt.Sprintf("Replaced: %s", strings.Join(result.Replaced, ", ")))
	}
	if len(result.Skipped) > 0 {
		printWarning(fmt.Sprintf("Skipped: %s", strings.Join(result.Skipped, ", ")))
	}
	return nil
}
