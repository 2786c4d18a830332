package main

import (
	"fmt"
	"os"

	"github.com/Blainegunn/generator-aem-component/app/cli"
)

// Define Version (will be set via linker flags during build)
var Version = "v0.1.0"

func main() {
	if err := cli.Execute(Version); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
