// Command uekit locates Unreal Engine installations and resolves which one
// a project should build with.
package main

import (
	"os"

	"github.com/unrealkit/uekit/internal/cli"
)

// version is overridden at build time via -ldflags.
var version = "dev" //nolint:gochecknoglobals // Build-time version injection

func main() {
	if err := cli.NewRootCmd(version).Execute(); err != nil {
		os.Exit(1)
	}
}
