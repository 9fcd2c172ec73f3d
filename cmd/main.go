package main

import (
	"os"

	"github.com/deividev5/Daily-Diet/config"
	"github.com/deividev5/Daily-Diet/routes"
)

func main() {
	config.InitLogger()
	config.InitDB()

	r := routes.SetupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	config.Log.Infof("daily diet API listening on :%s", port)
	if err := r.Run(":" + port); err != nil {
		config.Log.Fatalf("server stopped: %v", err)
	}
}
