package main

import "github.com/unniemods/unnie-mod-manager/cmd"

func main() {
	cmd.Execute()
}
