package main

import (
	_ "catering_ledger/docs"
	"catering_ledger/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Catering Booking Ledger API
// @version         1.0
// @description     Booking intake, lifecycle transitions, payment collection and portfolio financials for a catering business.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
