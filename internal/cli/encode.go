// Copyright 2020 Aleksandr Demakin. All rights reserved.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	fixed "github.com/avdva/deepfixed"
	"github.com/avdva/deepfixed/view"
)

// Shapes of the encode command.
const (
	ShapePosition = "position"
	ShapeScale    = "scale"
)

// EncodeOptions holds the flags of the encode command.
type EncodeOptions struct {
	Words int
	Shape string
}

type encodeResult struct {
	Value   valueInfo `json:"value"`
	Encoded string    `json:"encoded"`
	Length  int       `json:"length"`
}

// NewEncodeCommand creates the encode command.
func NewEncodeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EncodeOptions{}
	cmd := &cobra.Command{
		Use:   "encode <decimal>",
		Short: "Encode a value the way it is uploaded to the GPU",
		Long: `Encode a decimal value with exactly --words words.
A position has a single integer word, a scale keeps its most significant words.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEncode(rootOpts, opts, args[0], cmd)
		},
	}
	cmd.Flags().IntVarP(&opts.Words, "words", "w", defaultWords, "number of words")
	cmd.Flags().StringVar(&opts.Shape, "shape", ShapePosition, "value shape (position|scale)")
	return cmd
}

func runEncode(rootOpts *RootOptions, opts *EncodeOptions, arg string, cmd *cobra.Command) error {
	if opts.Words < 1 {
		return Error.New("words must be positive, got %d", opts.Words)
	}
	v, err := fixed.FromString(arg, opts.Words)
	if err != nil {
		return Error.New("invalid value %q: %v", arg, err)
	}
	switch opts.Shape {
	case ShapePosition:
		v = view.ShapePosition(v, opts.Words)
	case ShapeScale:
		v = view.ShapeScale(v, opts.Words)
	default:
		return Error.New("unknown shape %q", opts.Shape)
	}
	rootOpts.Logger().Debug("shaped", "value", v.GoString())

	data := v.AppendBytes(nil)
	result := encodeResult{
		Value:   newValueInfo(v),
		Encoded: fmt.Sprintf("% x", data),
		Length:  len(data),
	}
	fields := append(result.Value.fields(), field{"encoded", result.Encoded}, field{"length", result.Length})
	return writeResult(cmd.OutOrStdout(), rootOpts, result, fields)
}
