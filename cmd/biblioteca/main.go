package main

import "github.com/FabianGG03/Gestor-Biblioteca/internal/cli"

func main() {
	cli.Execute()
}
