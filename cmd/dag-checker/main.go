package main

import (
	"github.com/LENAX/dag-checker/pkg/cli/cmd"
)

func main() {
	cmd.Execute()
}
