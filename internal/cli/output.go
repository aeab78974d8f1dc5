// Copyright 2020 Aleksandr Demakin. All rights reserved.

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	fixed "github.com/avdva/deepfixed"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0
	ExitFailure      = 1 // invalid input
	ExitCommandError = 2 // unknown command, bad flags
)

// ExitCode returns the process exit code for an error, returned by a command.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case Error.Has(err):
		return ExitFailure
	default:
		return ExitCommandError
	}
}

// field is a named line of text output.
type field struct {
	Name  string
	Value interface{}
}

// writeResult prints the fields as "name: value" lines, or the result as json.
func writeResult(w io.Writer, opts *RootOptions, result interface{}, fields []field) error {
	if opts.Format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return Error.Wrap(enc.Encode(result))
	}
	for _, f := range fields {
		if _, err := fmt.Fprintf(w, "%s: %v\n", f.Name, f.Value); err != nil {
			return Error.Wrap(err)
		}
	}
	return nil
}

// valueInfo is the json form of a value.
type valueInfo struct {
	Decimal string   `json:"decimal"`
	Neg     bool     `json:"neg"`
	Point   int32    `json:"point"`
	Words   []string `json:"words"`
	Binary  string   `json:"binary"`
	Float32 string   `json:"float32"`
	Float64 string   `json:"float64"`
}

func newValueInfo(v fixed.Value) valueInfo {
	info := valueInfo{
		Decimal: v.StringExact(),
		Neg:     v.IsNeg(),
		Point:   v.Point(),
		Words:   make([]string, v.Len()),
		Binary:  v.BinaryString(),
		Float32: v.String(),
		Float64: strconv.FormatFloat(v.Float64(), 'g', -1, 64),
	}
	for i := range info.Words {
		info.Words[i] = fmt.Sprintf("%08x", v.Word(i))
	}
	return info
}

func (info valueInfo) fields() []field {
	return []field{
		{"decimal", info.Decimal},
		{"parts", fmt.Sprintf("{%v, %v, %v}", info.Neg, info.Point, info.Words)},
		{"binary", info.Binary},
		{"float32", info.Float32},
		{"float64", info.Float64},
	}
}
