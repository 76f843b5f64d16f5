package main

import "taskquest/cmd/tq/root"

func main() {
	root.Execute()
}
