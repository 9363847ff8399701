// arena is a terminal haptic collision demo: steer a cursor into obstacles
// and feel each one through the controller's vibration motors.
//
// Usage:
//
//	arena                 - Run the demo
//	arena backends        - List haptic backends
//	arena obstacles       - Show the configured obstacles
//	arena probe           - Check the controller and pulse its motors
//
// Global flags:
//
//	--config <path>       - Arena config YAML (default: search paths, then built-in)
//	--backend <name>      - Haptic backend (default from config: sim)
//	--controller <index>  - Controller index (default from config: 0)
//	--log-file <path>     - Log file for the demo (default: ~/.haptic-arena/arena.log)
//	--verbose             - Debug logging
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import backends to register them
	_ "github.com/vovakirdan/haptic-arena/internal/haptic/audio"
	_ "github.com/vovakirdan/haptic-arena/internal/haptic/evdev"
	_ "github.com/vovakirdan/haptic-arena/internal/haptic/sim"
)

var (
	// Global flags
	flagConfig     string
	flagBackend    string
	flagController int
	flagLogFile    string
	flagVerbose    bool

	// Root-only flags
	flagFPS int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arena",
	Short: "Haptic arena - feel obstacles through your gamepad",
	Long: `Haptic arena moves a cursor around an 800x600 world of static obstacles.
Touching an obstacle blocks the move and vibrates the controller in
proportion to the obstacle's intensity.

Controls:
  Arrows/WASD/HJKL  - Move (diagonals combine)
  Left mouse drag   - Steer toward the pointer
  Ctrl+S            - Save a screenshot
  Esc               - Exit
  Q/Ctrl+C          - Quit

Examples:
  arena
  arena --backend evdev --controller 1
  arena --backend audio
  arena --config ./my-arena.yaml --fps 30`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runArena,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to arena config YAML")
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "", "Haptic backend (see 'arena backends')")
	rootCmd.PersistentFlags().IntVar(&flagController, "controller", 0, "Controller index")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file (default ~/.haptic-arena/arena.log)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.Flags().IntVar(&flagFPS, "fps", 0, "Frame rate (default from config: 60)")

	rootCmd.AddCommand(backendsCmd)
	rootCmd.AddCommand(obstaclesCmd)
	rootCmd.AddCommand(probeCmd)
}
