package main

import (
	"context"
	"os"

	"github.com/philipp01105/uartlog/cmd/uartcat/cli"
	"github.com/philipp01105/uartlog/formatter"
	"github.com/philipp01105/uartlog/logger"
)

func main() {
	logger.SetFormatter(formatter.Auto(os.Stderr))

	err := cli.Run(context.Background(), os.Stdin, os.Exit, os.Args[1:]...)
	if err != nil {
		logger.E(cli.Name, "%v", err)
		os.Exit(1)
	}
}
