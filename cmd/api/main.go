package main

import (
	_ "gestao_imobiliaria/docs"
	"gestao_imobiliaria/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Gestao Imobiliaria API
// @version         1.0
// @description     Property management API (properties, tenants, contracts, legal cases) backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
