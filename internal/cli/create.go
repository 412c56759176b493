package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tacogips/igno/internal/app"
)

// createCmd represents the create command
var createCmd = &cobra.Command{
	Use:   "create TEMPLATES...",
	Short: "Create a new gitignore file from templates",
	Long: `Create a new gitignore file composed of the named templates.

Template names are validated against the remote catalog before anything
is written. If the target file already exists you are asked before it is
overwritten.

Examples:
  igno create go
  igno create go python macos
  igno create rust --path ./lib/.gitignore
  igno create go --show-gitignore`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCreate,
}

// Create command flags
var (
	createPath  string
	createEcho  bool
	createForce bool
)

func init() {
	createCmd.Flags().StringVar(&createPath, FlagPath, "", DescPath)
	createCmd.Flags().BoolVar(&createEcho, FlagShowGitignore, false, DescShowGitignore)
	createCmd.Flags().BoolVarP(&createForce, FlagForce, "f", false, DescForce)
}

func runCreate(cmd *cobra.Command, args []string) error {
	path := resolvePath(createPath)

	if !createEcho && !createForce {
		if _, err := os.Stat(path); err == nil {
			overwrite, err := confirmOverwrite(path)
			if err != nil {
				return err
			}
			if !overwrite {
				printWarning("Aborted, existing file left untouched")
				return nil
			}
		}
	}

	result, err := app.Create(cmd.Context(), app.CreateOptions{
		Names:  args,
		Path:   path,
		Echo:   createEcho,
		Source: newSource(),
	})
	if err != nil {
		return err
	}

	if createEcho {
		printResult(result.Content)
		return nil
	}

	printSuccess(fmt.Sprintf("Created %s with templates: %s",
		result.Path, strings.Join(result.TemplateNames, ", ")))
	return nil
}
