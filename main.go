package main

import "github.com/luxemaroc/storefront/cmd"

func main() {
	cmd.Start()
}
