package main

import "github.com/fuzzbed/mangle/cmd"

func main() {
	cmd.Execute()
}
