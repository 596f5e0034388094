package main

import "github.com/Philipp01105/tracelog/cli"

var version = "0.1.0" // default version if not set at build time

func main() {
	cli.Execute(version)
}
