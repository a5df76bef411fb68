package main

import "confql/cmd/confql/commands"

func main() {
	commands.Execute()
}
