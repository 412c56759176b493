package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tacogips/igno/internal/app"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List template sections in a gitignore file",
	Long: `List the template names whose sections are present in a gitignore
file, in file order.

Examples:
  igno list
  igno list --path ./tools/.gitignore`,
	Args: cobra.NoArgs,
	RunE: runList,
}

// List command flags
var listPath string

func init() {
	listCmd.Flags().StringVar(&listPath, FlagPath, "", DescPath)
}

func runList(cmd *cobra.Command, args []string) error {
	result, err := app.List(cmd.Context(), app.ListOptions{
		Path: resolvePath(listPath),
	})
	if err != nil {
		return err
	}

	if len(result.TemplateNames) == 0 {
		printWarning(fmt.Sprintf("No template sections in %s", result.Path))
		return nil
	}

	for _, name := range result.TemplateNames {
		printName(name, "")
	}
	return nil
}
