package main

import "cafe-admin-api/commands"

func main() {
	commands.Execute()
}
