package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/gofilament/filament/backend"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show registered backends and device capabilities",
		RunE:  runInfo,
	}
}

func runInfo(cmd *cobra.Command, args []string) error {
	names := backend.Available()
	sort.Strings(names)
	fmt.Println("Registered backends:")
	for _, name := range names {
		fmt.Printf("  %s\n", name)
	}

	engine, err := newEngine()
	if err != nil {
		return err
	}
	defer engine.Destroy()

	platform := engine.Platform()
	caps := engine.Driver().Capabilities()
	fmt.Printf("\nSelected backend:  %s\n", platform.Name())
	fmt.Printf("OS version:        %d\n", platform.OSVersion())
	if caps.Device != "" {
		fmt.Printf("Device:            %s\n", caps.Device)
	}
	fmt.Printf("Max 2D texture:    %d\n", caps.Limits.MaxTextureDimension2D)
	fmt.Printf("Max buffer bytes:  %d\n", caps.Limits.MaxBufferSize)
	return nil
}
