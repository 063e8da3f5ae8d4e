package main

import "github.com/OpenTraceLab/prepack/cmd/prepack/cmd"

func main() {
	cmd.Execute()
}
