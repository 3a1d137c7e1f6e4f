package main

import (
	"marketbrief/cmd/handlers"
	"marketbrief/internal/logger"
)

func main() {
	logger.Init() // Initialize the logger
	handlers.Execute()
}
