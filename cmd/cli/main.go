package main

import (
	"fmt"
	"os"

	"github.com/de-tools/rightsize/pkg/runtime/terminal"
	"github.com/de-tools/rightsize/pkg/services/snapshot"
)

func main() {
	cli := terminal.NewCLI(terminal.Options{
		Registry: snapshot.NewRegistry(map[string]snapshot.SourceFactory{
			"file": snapshot.FileSourceFactory,
		}),
		Output: os.Stdout,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
