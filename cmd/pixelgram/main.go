package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose     bool
	configPath  string
	fixturePath string
	themeName   string
	initialView string

	// Logger for non-interactive commands
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "pixelgram",
	Short: "pixelgram - a social photo app in your terminal",
	Long: `pixelgram renders the signed-in user's home shell: a navigation rail
next to the active view, with a profile page showing posts, saved and tagged
galleries.

Run without arguments to start the interactive interface.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// The interactive UI owns the terminal; it logs to files only.
		if cmd == cmd.Root() {
			logger = zap.NewNop()
			return nil
		}

		config := zap.NewDevelopmentConfig()
		config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		config.OutputPaths = []string{"stderr"}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive()
	},
}

// viewsCmd lists the navigable views
var viewsCmd = &cobra.Command{
	Use:   "views",
	Short: "List the top-level views and their menu entries",
	Args:  cobra.NoArgs,
	RunE:  listViews,
}

// renderCmd prints one frame of the shell without entering the event loop
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a single frame of the shell to stdout",
	Long: `Builds the shell exactly as the interactive mode would, switches to the
requested view and prints one frame at the given size.

Example:
  pixelgram render --view profile --tab saved --width 120 --height 40`,
	Args: cobra.NoArgs,
	RunE: renderFrame,
}

var (
	renderTab    string
	renderWidth  int
	renderHeight int
)

// configCmd groups configuration helpers
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the pixelgram configuration file",
}

// configInitCmd writes a default configuration file
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file, including --theme, --view and --fixture",
	Args:  cobra.NoArgs,
	RunE:  initConfig,
}

var forceInit bool

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: ~/.pixelgram/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&fixturePath, "fixture", "", "Content fixture YAML (default: built-in demo)")
	rootCmd.PersistentFlags().StringVar(&themeName, "theme", "", "Theme: light, dark or auto")
	rootCmd.PersistentFlags().StringVar(&initialView, "view", "", "Initial view (see 'pixelgram views')")

	renderCmd.Flags().StringVar(&renderTab, "tab", "", "Profile tab to select: posts, reels, saved or tagged")
	renderCmd.Flags().IntVar(&renderWidth, "width", 120, "Frame width in cells")
	renderCmd.Flags().IntVar(&renderHeight, "height", 40, "Frame height in lines")

	configInitCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing config file")
	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(viewsCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
