package main

import "github.com/mcoot/susround/internal/cli"

func main() {
	cli.Execute()
}
