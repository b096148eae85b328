package main

import (
	_ "choco_checkout/docs"
	"choco_checkout/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Chocolate Checkout API
// @version         1.0
// @description     Pi Network payment backend for the chocolate storefront: approval and completion proxy, checkout sessions and order records.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /

func main() {
	routes.Run()
}
