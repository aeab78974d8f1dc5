// Copyright 2020 Aleksandr Demakin. All rights reserved.

package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	fixed "github.com/avdva/deepfixed"
)

const defaultWords = 4

// CalcOptions holds the flags of the calc command.
type CalcOptions struct {
	Words int
}

type calcResult struct {
	Expression string    `json:"expression"`
	Result     valueInfo `json:"result"`
}

// NewCalcCommand creates the calc command.
func NewCalcCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CalcOptions{}
	cmd := &cobra.Command{
		Use:   "calc <a> <op> <b>",
		Short: "Evaluate a fixed-point expression",
		Long: `Evaluate a single operation on two decimal operands.
Operations are +, -, * and the shifts >> and <<, where b is the number of bits.
Operands keep --words fractional words, the result is exact.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCalc(rootOpts, opts, args, cmd)
		},
	}
	cmd.Flags().IntVarP(&opts.Words, "words", "w", defaultWords, "fractional words of the operands")
	return cmd
}

func runCalc(rootOpts *RootOptions, opts *CalcOptions, args []string, cmd *cobra.Command) error {
	logger := rootOpts.Logger()
	a, err := fixed.FromString(args[0], opts.Words)
	if err != nil {
		return Error.New("invalid operand %q: %v", args[0], err)
	}

	var result fixed.Value
	switch op := args[1]; op {
	case "+", "-", "*":
		b, err := fixed.FromString(args[2], opts.Words)
		if err != nil {
			return Error.New("invalid operand %q: %v", args[2], err)
		}
		logger.Debug("operands", "a", a.GoString(), "b", b.GoString())
		switch op {
		case "+":
			result = a.Add(b)
		case "-":
			result = a.Sub(b)
		default:
			result = a.Mul(b)
		}
	case ">>", "<<":
		n, err := strconv.Atoi(args[2])
		if err != nil {
			return Error.New("invalid shift %q: %v", args[2], err)
		}
		logger.Debug("operands", "a", a.GoString(), "shift", n)
		if op == ">>" {
			result = a.Rsh(n)
		} else {
			result = a.Lsh(n)
		}
	default:
		return Error.New("unknown operation %q", op)
	}

	info := newValueInfo(result)
	return writeResult(cmd.OutOrStdout(), rootOpts, calcResult{
		Expression: args[0] + " " + args[1] + " " + args[2],
		Result:     info,
	}, info.fields())
}
