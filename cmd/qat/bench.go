package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	json "github.com/goccy/go-json"
	"github.com/urfave/cli/v3"

	"github.com/born-ml/qat/backend/cpu"
	"github.com/born-ml/qat/backend/webgpu"
	"github.com/born-ml/qat/fakequant"
	"github.com/born-ml/qat/tensor"
)

// benchResult is one timed kernel run in the size sweep.
type benchResult struct {
	Backend  string  `json:"backend"`
	Kernel   string  `json:"kernel"`
	Elements int     `json:"elements"`
	Rounds   int     `json:"rounds"`
	NsPerOp  int64   `json:"ns_per_op"`
	GBps     float64 `json:"gb_per_s"`
}

func benchCmd() *cli.Command {
	var (
		jsonOut bool
		rounds  int64
	)

	return &cli.Command{
		Name:  "bench",
		Usage: "Benchmark the kernels over a tensor size sweep",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "emit the report as JSON",
				Destination: &jsonOut,
			},
			&cli.Int64Flag{
				Name:        "rounds",
				Usage:       "timed rounds per size",
				Value:       20,
				Destination: &rounds,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			backends := []tensor.Backend{cpu.New()}
			if webgpu.IsAvailable() {
				if gpu, err := webgpu.New(); err == nil {
					defer gpu.Release()
					backends = append(backends, gpu)
				}
			}

			var results []benchResult
			for _, b := range backends {
				for _, n := range []int{1 << 12, 1 << 16, 1 << 20} {
					fwd, bwd, err := timeKernels(b, n, int(rounds))
					if err != nil {
						return err
					}
					results = append(results, fwd, bwd)
				}
			}

			if jsonOut {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(results)
			}

			for _, r := range results {
				fmt.Printf("%-24s %-8s %10d elems  %12d ns/op  %8.2f GB/s\n",
					r.Backend, r.Kernel, r.Elements, r.NsPerOp, r.GBps)
			}
			return nil
		},
	}
}

func timeKernels(b tensor.Backend, n, rounds int) (fwd, bwd benchResult, err error) {
	rng := rand.New(rand.NewSource(1))
	data := make([]float32, n)
	ones := make([]float32, n)
	for i := range data {
		data[i] = (rng.Float32() - 0.5) * 300
		ones[i] = 1
	}

	x, err := tensor.NewRaw(tensor.Shape{n}, tensor.Float32, b.Device())
	if err != nil {
		return fwd, bwd, err
	}
	copy(x.AsFloat32(), data)

	dy, err := tensor.NewRaw(tensor.Shape{n}, tensor.Float32, b.Device())
	if err != nil {
		return fwd, bwd, err
	}
	copy(dy.AsFloat32(), ones)

	p := fakequant.NewParams(0.5, 32)

	// Warm up shader/pipeline caches before timing.
	if _, err = fakequant.Forward(x, p, b); err != nil {
		return fwd, bwd, err
	}
	if _, err = fakequant.Backward(x, dy, p, b); err != nil {
		return fwd, bwd, err
	}

	start := time.Now()
	for i := 0; i < rounds; i++ {
		if _, err = fakequant.Forward(x, p, b); err != nil {
			return fwd, bwd, err
		}
	}
	perOp := time.Since(start).Nanoseconds() / int64(rounds)
	fwd = result(b, "forward", n, rounds, perOp)

	start = time.Now()
	for i := 0; i < rounds; i++ {
		if _, err = fakequant.Backward(x, dy, p, b); err != nil {
			return fwd, bwd, err
		}
	}
	perOp = time.Since(start).Nanoseconds() / int64(rounds)
	bwd = result(b, "backward", n, rounds, perOp)

	return fwd, bwd, nil
}

func result(b tensor.Backend, kernel string, n, rounds int, nsPerOp int64) benchResult {
	bytesMoved := float64(n) * 4 * 2 // read input, write output
	return benchResult{
		Backend:  b.Name(),
		Kernel:   kernel,
		Elements: n,
		Rounds:   rounds,
		NsPerOp:  nsPerOp,
		GBps:     bytesMoved / float64(nsPerOp),
	}
}
