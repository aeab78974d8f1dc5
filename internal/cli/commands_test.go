// Copyright 2020 Aleksandr Demakin. All rights reserved.

package cli

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	a := assert.New(t)
	out, _, err := execute("convert", "--float32", "--", "-3.75")
	require.NoError(t, err)
	a.Contains(out, "input: -3.75\n")
	a.Contains(out, "decimal: -3.75\n")
	a.Contains(out, "parts: {true, 1, [00000003 c0000000]}\n")
	a.Contains(out, "binary: -00000000000000000000000000000011.11000000000000000000000000000000\n")
	a.Contains(out, "round trip: true\n")
	a.Contains(out, "encoded: 01 00 00 00 01 00 00 00 03 00 00 00 00 00 00 c0\n")
}

func TestConvertJSON(t *testing.T) {
	a := assert.New(t)
	out, _, err := execute("--format", "json", "convert", "0.1")
	require.NoError(t, err)
	var result convertResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	a.Equal("0.1", result.Input)
	a.True(result.RoundTrip)
	a.Equal("0.1000000000000000055511151231257827021181583404541015625", result.Value.Decimal)
	a.Equal("0.1", result.Value.Float64)
	a.False(result.Value.Neg)
}

func TestConvertErrors(t *testing.T) {
	_, _, err := execute("convert", "abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid float "abc"`)
	assert.Equal(t, ExitFailure, ExitCode(err))

	_, _, err = execute("convert")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, ExitCode(err))
}

func TestCalc(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		args    []string
		decimal string
	}{
		{[]string{"calc", "1.5", "+", "2.25"}, "3.75"},
		{[]string{"calc", "1.5", "-", "2.25"}, "-0.75"},
		{[]string{"calc", "--", "1.5", "*", "-2"}, "-3"},
		{[]string{"calc", "3", ">>", "1"}, "1.5"},
		{[]string{"calc", "3", "<<", "33"}, "25769803776"},
		{[]string{"calc", "--words", "1", "0.1", "+", "0.2"}, "0.299999999813735485076904296875"},
		{[]string{"calc", "1", ">>", "40"}, "0.0000000000009094947017729282379150390625"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			out, _, err := execute(test.args...)
			require.NoError(t, err)
			a.Contains(out, "decimal: "+test.decimal+"\n")
		})
	}
}

func TestCalcErrors(t *testing.T) {
	tests := []struct {
		args []string
		msg  string
	}{
		{[]string{"calc", "1", "/", "2"}, `unknown operation "/"`},
		{[]string{"calc", "abc", "+", "2"}, `invalid operand "abc"`},
		{[]string{"calc", "1", "+", "x"}, `invalid operand "x"`},
		{[]string{"calc", "1", ">>", "1.5"}, `invalid shift "1.5"`},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			_, _, err := execute(test.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), test.msg)
			assert.Equal(t, ExitFailure, ExitCode(err))
		})
	}
}

func TestEncode(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		args    []string
		encoded string
		length  int
	}{
		{[]string{"encode", "--words", "3", "1.5"}, "00 00 00 00 01 00 00 00 01 00 00 00 00 00 00 80 00 00 00 00", 20},
		{[]string{"encode", "--words", "3", "--shape", "scale", "1.5"}, "00 00 00 00 01 00 00 00 01 00 00 00 00 00 00 80 00 00 00 00", 20},
		{[]string{"encode", "-w", "2", "0.25"}, "00 00 00 00 01 00 00 00 00 00 00 00 00 00 00 40", 16},
		{[]string{"encode", "-w", "2", "--shape", "scale", "0.25"}, "00 00 00 00 00 00 00 00 00 00 00 40 00 00 00 00", 16},
		{[]string{"encode", "-w", "1", "--", "-0.25"}, "01 00 00 00 01 00 00 00 00 00 00 00", 12},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			out, _, err := execute(test.args...)
			require.NoError(t, err)
			a.Contains(out, "encoded: "+test.encoded+"\n")
			a.Contains(out, fmt.Sprintf("length: %d\n", test.length))
		})
	}

	_, _, err := execute("encode", "--shape", "round", "1")
	require.Error(t, err)
	a.Contains(err.Error(), `unknown shape "round"`)

	_, _, err = execute("encode", "--words", "0", "1")
	require.Error(t, err)
	a.Contains(err.Error(), "words must be positive")
}

const viewConfig = `
precision: 4
viewport:
  width: 1920
  height: 1080
position:
  x: "-0.74364388703715870475"
  y: "0.13182590420531197049"
zoom:
  level: 40
  exp: 0.75
`

func writeConfig(t *testing.T, data string) string {
	path := filepath.Join(t.TempDir(), "view.yaml")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
	return path
}

func TestView(t *testing.T) {
	a := assert.New(t)
	path := writeConfig(t, viewConfig)
	out, _, err := execute("view", "--config", path)
	require.NoError(t, err)
	a.Contains(out, "words: 4\n")
	a.Contains(out, "zoom: level 39, exp -0.25\n")
	a.Contains(out, "work size: 51840000\n")
	a.Contains(out, "block: \n00000000  01 00 00 00 27 00 00 00  80 07 00 00 38 04 00 00")

	out, _, err = execute("--format", "json", "view", "-c", path)
	require.NoError(t, err)
	var result viewResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	a.Equal(4, result.Words)
	a.Equal(int32(39), result.Level)
	a.True(result.X.Neg)
	a.Equal(int32(1), result.X.Point)
	a.Len(result.X.Words, 4)
	a.Equal("00000000", result.X.Words[0])
	block, err := hex.DecodeString(result.Block)
	require.NoError(t, err)
	a.Len(block, 24+3*(8+4*4))
}

func TestViewErrors(t *testing.T) {
	_, _, err := execute("view")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, ExitCode(err))

	_, _, err = execute("view", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Equal(t, ExitFailure, ExitCode(err))

	_, _, err = execute("view", "--config", writeConfig(t, "viewport: {width: 0, height: 1}\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty viewport")
	assert.Equal(t, ExitFailure, ExitCode(err))
}
