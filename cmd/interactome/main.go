package main

import "github.com/proteinpaths/interactome/cmd/interactome/commands"

func main() {
	commands.Execute()
}
