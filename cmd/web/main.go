package main

import (
	"niddle_backend/internal/app"
	"niddle_backend/internal/logger"
)

func main() {
	if err := app.Run(); err != nil {
		logger.Fatal("server stopped", "error", err)
	}
}
