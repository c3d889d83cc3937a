package main

import "linkreport/cmd/linkreport-cli/cmd"

func main() {
	cmd.Execute()
}
