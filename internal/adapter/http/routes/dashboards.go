package routes

import (
	"github.com/gin-gonic/gin"

	"taller_dashboards/internal/adapter/http/handlers"
)

const (
	PathDashboards = "/dashboards"
)

func addDashboardRoutes(rg *gin.RouterGroup, dashboardHandler *handlers.DashboardHandler) {
	dashboards := rg.Group(PathDashboards)
	{
		dashboards.GET("/receptionist", dashboardHandler.GetReceptionistDashboard)
		dashboards.GET("/admin", dashboardHandler.GetAdminDashboard)
		dashboards.GET("/mechanic/:user_id", dashboardHandler.GetMechanicDashboard)
	}
}
