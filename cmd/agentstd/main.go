package main

import (
	"github.com/k-f-/agentic-dev-standards/internal/cli"
)

func main() {
	cli.Execute()
}
