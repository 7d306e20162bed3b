package main

import "github.com/boozedog/smoovgarden/cmd"

func main() {
	cmd.Execute()
}
