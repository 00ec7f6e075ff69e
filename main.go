package main

import "github.com/Yates-Labs/floriography/cmd"

func main() {
	cmd.Execute()
}
