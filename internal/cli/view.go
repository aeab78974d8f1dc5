// Copyright 2020 Aleksandr Demakin. All rights reserved.

package cli

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avdva/deepfixed/view"
)

// ViewOptions holds the flags of the view command.
type ViewOptions struct {
	Config string
}

type viewResult struct {
	Words    int       `json:"words"`
	Level    int32     `json:"level"`
	Exp      float32   `json:"exp"`
	X        valueInfo `json:"x"`
	Y        valueInfo `json:"y"`
	Scale    valueInfo `json:"scale"`
	WorkSize int       `json:"work_size"`
	Block    string    `json:"block"`
}

// NewViewCommand creates the view command.
func NewViewCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ViewOptions{}
	cmd := &cobra.Command{
		Use:   "view --config <file>",
		Short: "Build the compute view block for a camera",
		Long: `Load a camera from a yaml config and print the view block,
uploaded to the compute shader, with its decoded values.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(rootOpts, opts, cmd)
		},
	}
	cmd.Flags().StringVarP(&opts.Config, "config", "c", "", "path to the camera config")
	_ = cmd.MarkFlagRequired("config")
	return cmd
}

func runView(rootOpts *RootOptions, opts *ViewOptions, cmd *cobra.Command) error {
	logger := rootOpts.Logger()
	cfg, err := view.LoadConfig(opts.Config)
	if err != nil {
		return Error.Wrap(err)
	}
	words := cfg.Words()
	logger.Debug("config loaded", "path", opts.Config, "words", words)

	cam, err := cfg.Camera()
	if err != nil {
		return Error.Wrap(err)
	}
	block := view.NewComputeView(cam, true, words)
	logger.Debug("view block", "bytes", len(block.Bytes()))

	result := viewResult{
		Words:    words,
		Level:    cam.Zoom.Level(),
		Exp:      cam.Zoom.Exp(),
		X:        newValueInfo(view.ShapePosition(cam.X, words)),
		Y:        newValueInfo(view.ShapePosition(cam.Y, words)),
		Scale:    newValueInfo(view.ShapeScale(cam.Zoom.Mult(), words)),
		WorkSize: view.WorkSize(cam.Width, cam.Height, words),
		Block:    hex.EncodeToString(block.Bytes()),
	}
	fields := []field{
		{"words", words},
		{"zoom", fmt.Sprintf("level %d, exp %v", result.Level, result.Exp)},
		{"x", result.X.Decimal},
		{"y", result.Y.Decimal},
		{"scale", result.Scale.Decimal},
		{"work size", result.WorkSize},
		{"block", "\n" + hex.Dump(block.Bytes())},
	}
	return writeResult(cmd.OutOrStdout(), rootOpts, result, fields)
}
