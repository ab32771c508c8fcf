package main

import (
	"github.com/joho/godotenv"

	"podrefs/internal/cli"
)

func main() {
	_ = godotenv.Load()
	cli.Execute()
}
