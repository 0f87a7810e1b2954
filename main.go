package main

import "indgo_crew/internal/cli"

func main() {
	cli.Execute()
}
