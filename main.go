package main

import (
	cmd "github.com/inference-gateway/drawbot/cmd"
)

func main() {
	cmd.Execute()
}
