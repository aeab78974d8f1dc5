// Copyright 2020 Aleksandr Demakin. All rights reserved.

package cli

import (
	"fmt"
	"math"
	"strconv"

	"github.com/spf13/cobra"

	fixed "github.com/avdva/deepfixed"
)

// ConvertOptions holds the flags of the convert command.
type ConvertOptions struct {
	Float32 bool
}

type convertResult struct {
	Input     string    `json:"input"`
	Value     valueInfo `json:"value"`
	RoundTrip bool      `json:"round_trip"`
	Encoded   string    `json:"encoded"`
}

// NewConvertCommand creates the convert command.
func NewConvertCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ConvertOptions{}
	cmd := &cobra.Command{
		Use:   "convert <float>",
		Short: "Convert a float to a fixed-point value",
		Long: `Convert a float64, or a float32 with --float32, to an exact fixed-point value,
and check, that the value converts back to the same bits.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(rootOpts, opts, args[0], cmd)
		},
	}
	cmd.Flags().BoolVar(&opts.Float32, "float32", false, "parse the input as a float32")
	return cmd
}

func runConvert(rootOpts *RootOptions, opts *ConvertOptions, arg string, cmd *cobra.Command) error {
	logger := rootOpts.Logger()
	bitSize := 64
	if opts.Float32 {
		bitSize = 32
	}
	f, err := strconv.ParseFloat(arg, bitSize)
	if err != nil {
		return Error.New("invalid float %q: %v", arg, err)
	}

	var v fixed.Value
	var roundTrip bool
	if opts.Float32 {
		f32 := float32(f)
		v = fixed.FromFloat32(f32)
		roundTrip = math.Float32bits(v.Float32()) == math.Float32bits(f32)
		logger.Debug("converted float32", "bits", fmt.Sprintf("%08x", math.Float32bits(f32)))
	} else {
		v = fixed.FromFloat64(f)
		roundTrip = math.Float64bits(v.Float64()) == math.Float64bits(f)
		logger.Debug("converted float64", "bits", fmt.Sprintf("%016x", math.Float64bits(f)))
	}
	logger.Debug("value", "point", v.Point(), "words", v.Len())

	result := convertResult{
		Input:     arg,
		Value:     newValueInfo(v),
		RoundTrip: roundTrip,
		Encoded:   fmt.Sprintf("% x", v.AppendBytes(nil)),
	}
	fields := append([]field{{"input", arg}}, result.Value.fields()...)
	fields = append(fields, field{"round trip", roundTrip}, field{"encoded", result.Encoded})
	return writeResult(cmd.OutOrStdout(), rootOpts, result, fields)
}
