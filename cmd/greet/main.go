package main

import (
	"os"

	"github.com/timescale/examplecheck/internal/examplecheck/cmd"
)

func main() {
	os.Exit(cmd.Main(cmd.ExecuteGreet))
}
