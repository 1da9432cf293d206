package main

import "ordered_list/cmd/olist/cmd"

func main() {
	cmd.Execute()
}
