package main

import (
	"context"
	"log/slog"
	"os"

	json "github.com/goccy/go-json"
	"github.com/urfave/cli/v3"

	"github.com/born-ml/qat/backend/cpu"
	"github.com/born-ml/qat/fakequant"
	"github.com/born-ml/qat/internal/logger"
	"github.com/born-ml/qat/internal/ops"
	"github.com/born-ml/qat/tensor"
)

func demoCmd() *cli.Command {
	var (
		scale      float64
		zeroPoint  int64
		numBits    int64
		quantDelay int64
		iter       int64
		jsonOut    bool
	)

	return &cli.Command{
		Name:  "demo",
		Usage: "Run the forward and backward kernels on a sample tensor",
		Flags: []cli.Flag{
			&cli.Float64Flag{
				Name:        "scale",
				Usage:       "quantization step",
				Value:       1.0,
				Destination: &scale,
			},
			&cli.Int64Flag{
				Name:        "zero-point",
				Usage:       "integer offset of real zero",
				Value:       0,
				Destination: &zeroPoint,
			},
			&cli.Int64Flag{
				Name:        "bits",
				Usage:       "bit-width of the target representation",
				Value:       fakequant.DefaultNumBits,
				Destination: &numBits,
			},
			&cli.Int64Flag{
				Name:        "quant-delay",
				Usage:       "training steps during which quantization is disabled",
				Value:       0,
				Destination: &quantDelay,
			},
			&cli.Int64Flag{
				Name:        "iter",
				Usage:       "current training step",
				Value:       0,
				Destination: &iter,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "emit the run report as JSON",
				Destination: &jsonOut,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log := logger.Pretty(os.Stderr, slog.LevelInfo)
			backend := cpu.New()
			registry := ops.NewRegistry()
			opctx := &ops.Context{Backend: backend}

			p := fakequant.Params{
				Scale:      scale,
				ZeroPoint:  zeroPoint,
				NumBits:    numBits,
				QuantDelay: quantDelay,
				Iter:       iter,
			}

			in := []float32{0.1, 0.4, 0.6, 0.9}
			x, err := tensor.FromSlice(in, tensor.Shape{len(in)}, backend)
			if err != nil {
				return err
			}

			outs, err := registry.Execute(opctx, ops.ForwardOp, []*tensor.RawTensor{x.Raw()}, p)
			if err != nil {
				return err
			}

			dy, err := tensor.FromSlice([]float32{1, 1, 1, 1}, tensor.Shape{len(in)}, backend)
			if err != nil {
				return err
			}
			grads, err := registry.Execute(opctx, ops.BackwardOp, []*tensor.RawTensor{x.Raw(), dy.Raw()}, p)
			if err != nil {
				return err
			}

			if jsonOut {
				report := struct {
					Params   fakequant.Params `json:"params"`
					Input    []float32        `json:"input"`
					Output   []float32        `json:"output"`
					Upstream []float32        `json:"upstream"`
					Gradient []float32        `json:"gradient"`
				}{p, in, outs[0].AsFloat32(), dy.Data(), grads[0].AsFloat32()}
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}

			log.Info("forward", "input", in, "output", outs[0].AsFloat32())
			log.Info("backward", "upstream", dy.Data(), "gradient", grads[0].AsFloat32())

			return nil
		},
	}
}
