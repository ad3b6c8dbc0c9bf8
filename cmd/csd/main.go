package main

import "github.com/csdlab/csdigit/cmd/csd/cmd"

func main() {
	cmd.Execute()
}
