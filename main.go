package main

import "fileset/cmd"

func main() {
	cmd.Execute()
}
