package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gfxcourse/labkit/pkg/utils"
)

const (
	// Application constants
	appName = "labkit"
	version = "v1.0.0"
)

var (
	// Configuration
	cfgFile string
	homeDir string
	cfg     *utils.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   appName,
	Short: "Graphics coursework toolkit",
	Long: `labkit bundles the course exercises into one tool: the fixed-dimension
vector quiz with its reference-value self-checks, the QR linear-system
solve example, and the windowed rendering tutorial with its per-frame
callback stages.`,
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "init" || cmd.Name() == "help" || cmd.Name() == "version" {
			return nil
		}
		var err error
		cfg, err = utils.LoadConfig(homeDir, cfgFile)
		if err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}
		return nil
	},
}

// initCmd initializes the labkit configuration
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize labkit configuration",
	Long: `Initialize the labkit configuration. This creates the default
configuration file and the local directories needed for operation.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		home := homeDir
		if home == "" {
			home = utils.DefaultHome()
		}
		fmt.Printf("Initializing %s %s\n", appName, version)

		if err := os.MkdirAll(home, 0755); err != nil {
			return fmt.Errorf("failed to create home directory: %w", err)
		}

		config := utils.DefaultConfig()
		if err := os.MkdirAll(config.Output.Dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		if err := utils.SaveConfig(home, config); err != nil {
			return err
		}

		fmt.Printf("Configuration written to %s\n", home)
		return nil
	},
}

// versionCmd prints the client version
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the labkit version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", appName, version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default <home>/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&homeDir, "home", "",
		"labkit home directory (default ~/.labkit)")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(tutorialCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
