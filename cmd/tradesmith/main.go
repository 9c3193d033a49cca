package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tradesmith/tradesmith-cli/cmd/commands"
	"github.com/tradesmith/tradesmith-cli/internal/cli"
	"github.com/tradesmith/tradesmith-cli/pkg/store"
)

// Version is set during build with -ldflags
var version = "dev"

var (
	flagQuiet   bool
	flagNoColor bool
	flagYes     bool
)

var rootCmd = &cobra.Command{
	Use:   "tradesmith",
	Short: "Terminal-based tool for managing trade collections",
	Long: `TradeSmith is a terminal-based tool for authoring and managing trade
recipes. Collections are stored as plain YAML files and edited through an
interactive grid editor.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cli.SetGlobalFlags(flagQuiet, flagNoColor, flagYes)
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new TradeSmith project",
	Long:  `Creates the .tradesmith folder structure in the current directory`,
	Run: func(cmd *cobra.Command, args []string) {
		cwd, err := os.Getwd()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to determine current directory: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Initializing TradeSmith project in %s...\n", cwd)

		if err := store.InitProjectStructure(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to initialize project structure: %v\n", err)
			fmt.Fprintf(os.Stderr, "Make sure you have write permissions in the current directory.\n")
			os.Exit(1)
		}

		fmt.Println("✓ Created .tradesmith folder structure")
		fmt.Println("✓ You can now create trade collections!")
		fmt.Println("\nRun 'tradesmith list' to see your collections.")
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of TradeSmith",
	Long:  `Display the current version of the TradeSmith CLI tool`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("TradeSmith version %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&flagYes, "yes", "y", false, "Skip confirmation prompts")
	rootCmd.PersistentFlags().StringP("output", "o", "text", "Output format (text, json, yaml)")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(commands.NewListCommand())
	rootCmd.AddCommand(commands.NewShowCommand())
	rootCmd.AddCommand(commands.NewOpenCommand())
	rootCmd.AddCommand(commands.NewCreateCommand())
	rootCmd.AddCommand(commands.NewDeleteCommand())
	rootCmd.AddCommand(commands.NewRenameCommand())
	rootCmd.AddCommand(commands.NewSetTitleCommand())
	rootCmd.AddCommand(commands.NewReloadCommand())
	rootCmd.AddCommand(commands.NewEditCommand())
	rootCmd.AddCommand(commands.NewManageCommand())
	rootCmd.AddCommand(commands.NewReorderCommand())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
