package main

import "github.com/tallydev/tally/cmd"

func main() {
	cmd.Execute()
}
