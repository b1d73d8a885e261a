package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	response "taller_dashboards/internal/adapter/http/dto/response"
	"taller_dashboards/internal/usecase"
	"taller_dashboards/pkg"
)

// DashboardHandler serves the three role dashboards.

type DashboardHandler struct {
	receptionist usecase.IReceptionistDashboardUseCase
	admin        usecase.IAdminDashboardUseCase
	mechanic     usecase.IMechanicDashboardUseCase
	log          *logrus.Logger
}

func NewDashboardHandler(
	receptionist usecase.IReceptionistDashboardUseCase,
	admin usecase.IAdminDashboardUseCase,
	mechanic usecase.IMechanicDashboardUseCase,
	log *logrus.Logger,
) *DashboardHandler {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &DashboardHandler{receptionist: receptionist, admin: admin, mechanic: mechanic, log: log}
}

// GetReceptionistDashboard godoc
// @Summary      Receptionist dashboard
// @Description  Front-desk summary: order tallies, recent orders, client and payment summaries, popular services.
// @Tags         dashboards
// @Produce      json
// @Success      200 {object} response.DashboardEnvelope
// @Router       /dashboards/receptionist [get]
func (h *DashboardHandler) GetReceptionistDashboard(c *gin.Context) {
	dash := h.receptionist.Build(c.Request.Context())
	h.log.WithField("degraded", dash.DegradedResources).Debug("[dashboard][handler] receptionist built")
	c.JSON(http.StatusOK, response.NewDashboardEnvelope(usecase.RoleLabelReceptionist, dash.DegradedResources, dash))
}

// GetAdminDashboard godoc
// @Summary      Administrator dashboard
// @Description  Workshop-wide summary: order tallies, financials, inventory, user breakdown, month trend.
// @Tags         dashboards
// @Produce      json
// @Success      200 {object} response.DashboardEnvelope
// @Router       /dashboards/admin [get]
func (h *DashboardHandler) GetAdminDashboard(c *gin.Context) {
	dash := h.admin.Build(c.Request.Context())
	h.log.WithField("degraded", dash.DegradedResources).Debug("[dashboard][handler] admin built")
	c.JSON(http.StatusOK, response.NewDashboardEnvelope(usecase.RoleLabelAdmin, dash.DegradedResources, dash))
}

// GetMechanicDashboard godoc
// @Summary      Mechanic dashboard
// @Description  Personal summary for one mechanic: assigned orders, stock alerts, 30-day productivity.
// @Tags         dashboards
// @Produce      json
// @Param        user_id path string true "Mechanic user id or username"
// @Success      200 {object} response.DashboardEnvelope
// @Failure      400 {object} pkg.HTTPError
// @Router       /dashboards/mechanic/{user_id} [get]
func (h *DashboardHandler) GetMechanicDashboard(c *gin.Context) {
	userID := c.Param("user_id")

	dash, err := h.mechanic.Build(c.Request.Context(), userID)
	if err != nil {
		h.log.WithFields(logrus.Fields{"user_id": userID, "error": err.Error()}).
			Warn("[dashboard][handler] mechanic build rejected")
		appErr := mapDashboardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	h.log.WithFields(logrus.Fields{"user_id": userID, "degraded": dash.DegradedResources}).
		Debug("[dashboard][handler] mechanic built")
	c.JSON(http.StatusOK, response.NewDashboardEnvelope(usecase.RoleLabelMechanic, dash.DegradedResources, dash))
}

func mapDashboardError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidMechanicID):
		return pkg.NewDomainErrorSimple("INVALID_MECHANIC_ID", "Mechanic id must not be empty", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
