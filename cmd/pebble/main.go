// Command pebble scans, parses and checks pebble source files.
package main

import (
	"context"

	"github.com/pebble-lang/pebble/internal/cmd"
)

func main() {
	cmd.ExecuteWithGlobalState(cmd.NewGlobalState(context.Background()))
}
