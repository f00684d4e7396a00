package main

import "github.com/OpenTraceLab/wheelcanvas/cmd/wheel/cmd"

func main() {
	cmd.Execute()
}
