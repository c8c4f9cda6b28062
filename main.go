package main

import "github.com/AryanGodara/Koji/cmd"

func main() {
	cmd.Execute()
}
