package main

import "archive-reporter/cmd"

func main() {
	cmd.Execute()
}
