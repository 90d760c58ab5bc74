package main

import (
	_ "github.com/joho/godotenv/autoload" // Autoload .env file.

	"github.com/standops/stand-status-api/cmd/app"
)

// @title           Stand Status API
// @description     Tracks occupancy and assignment of test stands and their circuits.
//
// @license.name  MIT
//
// @externalDocs.description  OpenAPI
// @externalDocs.url          https://swagger.io/resources/open-api/
func main() {
	if err := app.Start(); err != nil {
		panic(err)
	}
}
