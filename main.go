package main

import (
	"os"

	"github.com/llehouerou/jamp/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
