package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	var (
		frames   int
		snapshot string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Render frames and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			count := cfg.Frame.Count
			if cmd.Flags().Changed("frames") {
				count = frames
			}
			return runFrames(count, snapshot)
		},
	}
	cmd.Flags().IntVarP(&frames, "frames", "n", 0, "Number of frames to render (overrides config)")
	cmd.Flags().StringVar(&snapshot, "snapshot", "", "Write the final frame to this file (.png or .bmp)")

	return cmd
}

func runFrames(count int, snapshot string) error {
	engine, err := newEngine()
	if err != nil {
		return err
	}
	defer engine.Destroy()

	caps := engine.Driver().Capabilities()
	fmt.Printf("Rendering %d frame(s) on %q\n", count, caps.Backend)

	for i := 0; i < count; i++ {
		if err := engine.RenderFrame(); err != nil {
			return fmt.Errorf("frame %d: %w", i+1, err)
		}
	}
	fmt.Printf("Rendered %d frame(s)\n", engine.Frame())

	if snapshot != "" {
		if err := writeSnapshot(engine.Driver(), cfg.Frame.Width, cfg.Frame.Height, snapshot); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", snapshot)
	}
	return nil
}
