package main

import "github.com/strainkit/assaymeta/cmd"

func main() {
	cmd.Execute()
}
