package main

import (
	"fmt"
	"os"

	"github.com/jsvensson/ledgrad/internal/lsp"
)

var version = "dev" // Injected at build time via ldflags

func main() {
	server := lsp.NewServer(version)
	if err := server.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "ledgrad-lsp: %v\n", err)
		os.Exit(1)
	}
}
