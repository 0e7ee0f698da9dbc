package main

import (
	"os"

	"github.com/ffdev-info/combiner/internal/cmd"
)

func main() {
	os.Exit(cmd.Main(os.Args))
}
