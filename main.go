package main

import "lunie/cmd"

func main() {
	cmd.Execute()
}
