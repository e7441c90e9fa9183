package main

import "yolink-cli/cmd"

func main() {
	cmd.Execute()
}
