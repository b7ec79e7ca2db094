package main

import "github.com/codemonkey-cli/codemonkey/cmd"

func main() {
	cmd.Execute()
}
