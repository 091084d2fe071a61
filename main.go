package main

import "github.com/tanq16/wgetter/cmd"

func main() {
	cmd.Execute()
}
