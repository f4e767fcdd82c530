package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
)

var version = "dev"

func main() {
	// Set UTF-8 as fallback encoding for maximum compatibility
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)

	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("rpick: %v", err))
		os.Exit(1)
	}
}
