package main

import "github.com/sandeepkv93/taskplan/internal/cli"

func main() {
	cli.Execute()
}
