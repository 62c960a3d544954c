package main

import "promarket.com/promarket/cmd"

func main() {
	cmd.Execute()
}
