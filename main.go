package main

import "github.com/khanhnv2901/confaudit-cli/cmd"

// execCmd is indirected so tests can stub the CLI entry point.
var execCmd = cmd.Execute

func main() {
	execCmd()
}
