package main

import "github.com/Raza978/cpp-fundamentals/internal/cli"

func main() {
	cli.Execute()
}
