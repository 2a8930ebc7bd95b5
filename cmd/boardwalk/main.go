package main

import "github.com/marshallshelly/boardwalk/cmd/boardwalk/commands"

func main() {
	commands.Execute()
}
