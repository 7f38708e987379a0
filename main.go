package main

import "schedsim/cmd"

func main() {
	cmd.Execute()
}
