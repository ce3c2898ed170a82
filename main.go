package main

import "cartctl/cmd"

func main() {
	cmd.Execute()
}
