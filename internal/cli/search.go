package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tacogips/igno/internal/app"
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search [TERM]",
	Short: "Search the remote template catalog",
	Long: `Search the remote template catalog for names containing TERM.

Matching is case-insensitive. Without a term, all available templates
are listed.

Examples:
  igno search
  igno search python
  igno search studio`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	term := ""
	if len(args) > 0 {
		term = args[0]
	}

	result, err := app.Search(cmd.Context(), app.SearchOptions{
		Term:   term,
		Source: newSource(),
	})
	if err != nil {
		return err
	}

	if len(result.Names) == 0 {
		return fmt.Errorf("no matching templates for term '%s'", term)
	}

	for _, name := range result.Names {
		printName(name, term)
	}
	return nil
}
