package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/haptic-arena/internal/haptic"
)

var (
	flagIntensity float64
	flagDuration  time.Duration
)

var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Check the controller and pulse its motors",
	Long: `Reports whether the selected controller is connected. With a non-zero
--intensity, drives both motors for --duration and then stops them.

Examples:
  arena probe
  arena probe --backend evdev --intensity 0.5
  arena probe --backend audio --intensity 0.9 --duration 2s`,
	Args: cobra.NoArgs,
	RunE: runProbe,
}

func init() {
	probeCmd.Flags().Float64Var(&flagIntensity, "intensity", 0, "Pulse intensity in [0,1] (0 = no pulse)")
	probeCmd.Flags().DurationVar(&flagDuration, "duration", 500*time.Millisecond, "Pulse length")
}

func runProbe(cmd *cobra.Command, _ []string) error {
	if flagIntensity < 0 || flagIntensity > 1 {
		return fmt.Errorf("--intensity must be in [0,1], got %v", flagIntensity)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger := newLogger(os.Stderr)
	controller, err := openController(cfg, logger)
	if err != nil {
		return err
	}
	defer controller.Close()

	out := cmd.OutOrStdout()
	if !controller.IsConnected() {
		fmt.Fprintf(out, "%s controller %d: not connected\n", cfg.Haptics.Backend, cfg.Haptics.Controller)
		return nil
	}
	fmt.Fprintf(out, "%s controller %d: connected\n", cfg.Haptics.Backend, cfg.Haptics.Controller)

	if flagIntensity == 0 {
		return nil
	}

	d := max(flagDuration, 0)
	fmt.Fprintf(out, "pulsing at %.2f for %s\n", flagIntensity, d)
	controller.SetVibration(flagIntensity, flagIntensity)
	time.Sleep(d)
	controller.StopVibration()

	logger.Info("probe pulse", "backend", cfg.Haptics.Backend, "intensity", flagIntensity,
		"magnitude", haptic.Magnitude(flagIntensity), "duration", d)
	return nil
}
