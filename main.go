package main

import "github.com/Hafeezqazi/myring-explorer-AUV/cmd"

func main() {
	cmd.Execute()
}
