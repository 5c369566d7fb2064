package main

import (
	"os"

	"github.com/tleroux/orderagent/cmd"
	_ "github.com/tleroux/orderagent/pkg/logger/autoload"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
