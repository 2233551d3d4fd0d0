package main

import (
	"ProjectTracker/internal/cli"
)

func main() {
	cli.Execute()
}
