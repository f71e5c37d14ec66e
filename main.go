package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/grvbrk/tubelink-server/internal/app"
	"github.com/grvbrk/tubelink-server/internal/routes"
)

func main() {

	app, err := app.NewApplication()
	if err != nil {
		log.Fatal("Failed to start application:", err)
	}

	r := routes.SetupRoutes(app)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", app.Config.Port),
		Handler:      r,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	app.Logger.Println("Server started on port", app.Config.Port)

	err = server.ListenAndServe()
	if err != nil {
		app.Logger.Fatal("Error starting server", err)
	}

}
