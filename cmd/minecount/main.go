// SPDX-License-Identifier: MIT

// Command minecount annotates a minefield board file with adjacent-mine counts.
//
//	minecount boards/basic.txt
package main

import (
	"os"

	"github.com/JulianGCalderon-FIUBA/contador-buscaminas/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
