// Copyright 2020 Aleksandr Demakin. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/avdva/deepfixed/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitCode(err))
	}
}
