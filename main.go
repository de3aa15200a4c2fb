package main

import "hrportal/cmd"

func main() {
	cmd.Execute()
}
