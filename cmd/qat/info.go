package main

import (
	"context"
	"fmt"
	"runtime"

	"github.com/urfave/cli/v3"

	"github.com/born-ml/qat/backend/webgpu"
	"github.com/born-ml/qat/internal/ops"
)

func infoCmd() *cli.Command {
	return &cli.Command{
		Name:  "info",
		Usage: "Show available backends and registered operators",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			fmt.Printf("CPU backend: available (%d logical CPUs)\n", runtime.NumCPU())

			if webgpu.IsAvailable() {
				b, err := webgpu.New()
				if err != nil {
					fmt.Printf("WebGPU backend: unavailable (%v)\n", err)
				} else {
					fmt.Printf("WebGPU backend: %s\n", b.Name())
					b.Release()
				}
			} else {
				fmt.Println("WebGPU backend: unavailable")
			}

			fmt.Println("\nRegistered operators:")
			for _, name := range ops.NewRegistry().SupportedOps() {
				fmt.Printf("  %s\n", name)
			}
			return nil
		},
	}
}
