package docs

import "github.com/swaggo/swag"

// @title           BuildTrack API
// @version         1.0
// @description     API for managing construction projects, tasks, tickets and team assignments

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token

// @tag.name Users
// @tag.description Registration, login and profile operations

// @tag.name Projects
// @tag.description Project management operations

// @tag.name Tasks
// @tag.description Task, ticket and comment operations

// @tag.name Team
// @tag.description Team membership operations

// @tag.name Dashboard
// @tag.description Summary counters

// Register swagger info
func SwaggerInfo() *swag.Spec {
	return swag.Instance
}
