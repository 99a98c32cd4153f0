package main

import "assetdedup/cmd"

func main() {
	cmd.Execute()
}
