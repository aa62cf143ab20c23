package main

import "greeter/cmd"

func main() {
	cmd.Execute()
}
