package main

import (
	_ "taller_dashboards/docs"
	"taller_dashboards/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Workshop Dashboards API
// @version         1.0
// @description     Read-only dashboard aggregation over the workshop backend (orders, clients, motorcycles, payments, services, parts, users).
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
