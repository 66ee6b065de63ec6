package main

import "github.com/flexydesign/flexy/cmd/flexy/cmd"

func main() {
	cmd.Execute()
}
