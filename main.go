package main

import "github.com/career-compass/projector/cmd"

func main() {
	cmd.Execute()
}
