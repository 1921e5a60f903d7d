package main

import "route-atlas/cmd"

func main() {
	cmd.Execute()
}
