package main

import "github.com/rook-computer/postermaker/cmd"

func main() {
	cmd.Execute()
}
