package main

import "github.com/BuzzLyutic/todo-api/internal/cli"

func main() {
	cli.Execute()
}
