package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tacogips/igno/internal/app"
)

// removeCmd represents the remove command
var removeCmd = &cobra.Command{
	Use:   "remove TEMPLATES...",
	Short: "Remove templates from a gitignore file",
	Long: `Remove the named template sections from a gitignore file.

Removal is all-or-nothing: if any of the names has no section in the
file, nothing is removed. Matching is case-insensitive. Hand-written
content around the removed sections is preserved.

Examples:
  igno remove python
  igno remove go macos --path ./tools/.gitignore
  igno remove node --show-gitignore`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRemove,
}

// Remove command flags
var (
	removePath string
	removeEcho bool
)

func init() {
	removeCmd.Flags().StringVar(&removePath, FlagPath, "", DescPath)
	removeCmd.Flags().BoolVar(&removeEcho, FlagShowGitignore, false, DescShowGitignore)
}

func runRemove(cmd *cobra.Command, args []string) error {
	result, err := app.Remove(cmd.Context(), app.RemoveOptions{
		Names: args,
		Path:  resolvePath(removePath),
		Echo:  removeEcho,
	})
	if err != nil {
		return err
	}

	if removeEcho {
		printResult(result.Content)
		return nil
	}

	printSuccess(fmt.Sprintf("Removed: %s", strings.Join(result.Removed, ", ")))
	return nil
}
