package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"server/internal/app"
	"server/internal/handlers"
	"server/internal/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	log := logger.New("main")

	application, err := app.New(context.Background())
	if err != nil {
		log.Er("failed to initialize application", err)
		os.Exit(1)
	}
	defer application.Close()

	server := fiber.New(fiber.Config{
		AppName:   "eagle-hiring",
		BodyLimit: 25 * 1024 * 1024,
	})

	server.Use(recover.New())
	server.Use(cors.New())
	server.Use(application.Middleware.RequestLogger())

	if err := handlers.Router(server, application); err != nil {
		log.Er("failed to register routes", err)
		os.Exit(1)
	}

	go func() {
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
		<-stop

		log.Info("shutting down")
		if err := server.Shutdown(); err != nil {
			log.Er("failed to shut down server", err)
		}
	}()

	log.Info("starting server", "port", application.Config.Port)
	if err := server.Listen(":" + application.Config.Port); err != nil {
		log.Er("server stopped", err)
		os.Exit(1)
	}
}
