package main

import "bookstore/cmd"

func main() {
	cmd.Execute()
}
