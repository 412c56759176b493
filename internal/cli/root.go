package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tacogips/igno/internal/config"
	"github.com/tacogips/igno/internal/debug"
)

// Version information (set from build-time variables via main)
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Global flags
var (
	globalNoColor    bool
	globalQuiet      bool
	globalDebug      bool
	globalConfigPath string
)

// cfg is the loaded configuration, available to all commands after
// PersistentPreRunE.
var cfg *config.Config

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "igno",
	Short: "Create and maintain .gitignore files from remote templates",
	Long: `igno composes .gitignore files from named templates fetched from
gitignore.io.

Template sections written by igno are bounded by marker lines, so they can
be replaced or removed later by name while everything you wrote by hand in
the file stays untouched.

Use "igno search" to browse available templates, "igno create go python"
to start a fresh file, and "igno add"/"igno remove" to maintain it.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		debug.SetDebug(globalDebug)
		debug.SetNoColor(globalNoColor)

		loader := config.NewLoader()
		path := globalConfigPath
		if path == "" {
			path = config.DefaultPath()
		}
		loaded, err := loader.LoadOrDefault(path)
		if err != nil {
			return err
		}
		if err := loader.Validate(loaded); err != nil {
			return err
		}
		cfg = loaded
		if cfg.Output.Quiet {
			globalQuiet = true
		}
		debug.DebugValue("remote.base_url", cfg.Remote.BaseURL)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		printError(err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVar(&globalNoColor, FlagNoColor, false, DescNoColor)
	rootCmd.PersistentFlags().BoolVarP(&globalQuiet, FlagQuiet, "q", false, DescQuiet)
	rootCmd.PersistentFlags().BoolVar(&globalDebug, FlagDebug, false, DescDebug)
	rootCmd.PersistentFlags().StringVar(&globalConfigPath, FlagConfig, "", DescConfig)

	// Add subcommands
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(versionCmd)
}

// printError prints an error message to stderr
func printError(err error) {
	if globalQuiet {
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}
