package cli

import (
	"github.com/spf13/cobra"
	"github.com/tacogips/igno/internal/app"
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show TEMPLATE",
	Short: "Show the content of a remote template",
	Long: `Fetch one template from the remote catalog and print its body.

Examples:
  igno show go
  igno show visualstudiocode`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	result, err := app.Show(cmd.Context(), app.ShowOptions{
		Name:   args[0],
		Source: newSource(),
	})
	if err != nil {
		return err
	}

	printResult(result.Body + "\n")
	return nil
}
