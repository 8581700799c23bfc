package main

import (
	"chessboard/ui"
	"fmt"
	"os"
)

func main() {
	if err := ui.RunChessboard(); err != nil {
		fmt.Fprintf(os.Stderr, "error chessboard: %v\n", err)
		os.Exit(1)
	}
}
