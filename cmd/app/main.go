package main

import (
	"salas/config"
	"salas/di"
	"salas/shared/logger"
)

// @title Meeting Room Reservation API
// @version 1.0
// @description Rooms and reservations with business-hour scheduling rules and conflict-free booking.
// @BasePath /
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
