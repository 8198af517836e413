package main

import "github.com/nfrund/cardshow/cmd/cards-cli/cmd"

func main() {
	cmd.Execute()
}
