package main

import "github.com/papapumpkin/periodic/cmd"

func main() {
	cmd.Execute()
}
