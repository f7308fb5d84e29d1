package main

import (
	"github.com/vibecommerce/vibecart/internal/cmd"
)

func main() {
	cmd.Execute()
}
