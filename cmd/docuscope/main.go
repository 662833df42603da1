package main

import "github.com/docuscope/docuscope-cli/internal/client/cli"

func main() {
	cli.Execute()
}
