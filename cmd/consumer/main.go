package main

import "api-consumer/internal/cli"

func main() {
	cli.Execute()
}
