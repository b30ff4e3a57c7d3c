package main

import (
	"log"
)

func main() {
	// Cobra handles parsing the arguments
	if err := newRootCmd().Execute(); err != nil {
		log.Fatalf("Error executing command: %v", err)
	}
}
