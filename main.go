package main

import (
	"os"

	"bookpicker/core/logger"
	"bookpicker/core/server"
)

func main() {
	if err := server.Run(); err != nil {
		logger.Error("run server error", "error", err)
		os.Exit(1)
	}
}
