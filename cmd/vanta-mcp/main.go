package main

import "github.com/Fuabioo/vanta-mcp/internal/cli"

func main() {
	cli.Execute()
}
