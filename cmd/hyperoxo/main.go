package main

import "github.com/hyperoxo/hyperoxo/internal/cli"

func main() {
	cli.Execute()
}
