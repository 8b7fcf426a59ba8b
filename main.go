package main

import "github.com/xvierd/termclock/cmd"

func main() {
	cmd.Execute()
}
