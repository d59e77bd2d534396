package main

import (
	"context"
	"log"

	"github.com/sandeepkv93/biometric-attendance-backend/internal/di"
)

func main() {
	a, err := di.InitializeApp()
	if err != nil {
		log.Fatal(err)
	}
	if err := a.Run(context.Background()); err != nil {
		a.Logger.Error("server stopped", "error", err)
		log.Fatal(err)
	}
}
