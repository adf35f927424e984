package main

import "redelex-panel/cmd"

func main() {
	cmd.Execute()
}
