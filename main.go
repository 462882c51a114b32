package main

import "github.com/aldekeijzer/subalign/internal/cli"

func main() {
	cli.Run()
}
