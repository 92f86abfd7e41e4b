package main

import (
	"continuity/cli"
)

func main() {
	cli.Start()
}
