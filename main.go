package main

import "github.com/ankaahq/ankaa-access/cmd"

func main() {
	cmd.Execute()
}
