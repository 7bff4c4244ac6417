package main

import "github.com/alexiusacademia/goblt/cmd"

func main() {
	cmd.Execute()
}
