package main

import (
	"log"

	tool "github.com/sandeepkv93/biometric-attendance-backend/internal/tools/loadgen"
)

func main() {
	if err := tool.NewRootCommand().Execute(); err != nil {
		log.Fatal(err)
	}
}
