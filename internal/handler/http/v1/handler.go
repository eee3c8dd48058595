package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/geo_checkin/internal/apperr"
	"github.com/shenikar/geo_checkin/internal/config"
	"github.com/shenikar/geo_checkin/internal/models"
	"github.com/shenikar/geo_checkin/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	checkInService   service.CheckInService
	proximityService service.ProximityService
	logger           *logrus.Logger
	validate         *validator.Validate
	cfg              *config.Config
}

func NewHandler(checkInService service.CheckInService, proximityService service.ProximityService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		checkInService:   checkInService,
		proximityService: proximityService,
		logger:           logger,
		validate:         validator.New(),
		cfg:              cfg,
	}
}

// bindAndValidate разбирает тело запроса и отвечает 400 при ошибке
func (h *Handler) bindAndValidate(c *gin.Context, log *logrus.Entry, input any) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		respondBadRequest(c)
		return false
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		respondValidationError(c, err)
		return false
	}
	return true
}

// @Summary Check in at the current location
// @Description Records a check-in for the caller and updates their current location. Only one check-in per cooldown period is accepted.
// @Tags Check-ins
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param checkin body SaveCheckInRequest true "Check-in request"
// @Success 201 {object} CheckInResponse
// @Failure 400 {object} ErrorResponse "Invalid coordinate or request body"
// @Failure 401 {object} ErrorResponse "Unauthenticated"
// @Failure 429 {object} ErrorResponse "Cooldown is active"
// @Failure 503 {object} ErrorResponse "Storage unavailable"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /checkins [post]
func (h *Handler) saveCheckIn(c *gin.Context) {
	userID := userIDFromContext(c)
	log := h.logger.WithField("method", "saveCheckIn").WithField("user_id", userID)

	var input SaveCheckInRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	coord := models.Coordinate{Latitude: *input.Latitude, Longitude: *input.Longitude}
	checkIn, err := h.checkInService.SaveCheckIn(c.Request.Context(), userID, coord, DTOToAddress(input.AddressRequest))
	if err != nil {
		log.WithError(err).Warn("Failed to save check-in in service")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToCheckInResponse(checkIn))
}

// @Summary Find users nearby
// @Description Returns users active within the presence window inside the radius, nearest first. The caller is never included.
// @Tags Nearby
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param query body NearbyUsersRequest true "Nearby users query"
// @Success 200 {array} NearbyUserResponse
// @Failure 400 {object} ErrorResponse "Invalid coordinate or radius"
// @Failure 401 {object} ErrorResponse "Unauthenticated"
// @Failure 503 {object} ErrorResponse "Storage unavailable"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /nearby [post]
func (h *Handler) findNearbyUsers(c *gin.Context) {
	userID := userIDFromContext(c)
	log := h.logger.WithField("method", "findNearbyUsers").WithField("user_id", userID)

	var input NearbyUsersRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}
	if input.radiusInvalid {
		log.Warn("Non-numeric radius in request")
		respondError(c, apperr.ErrInvalidRadius)
		return
	}

	coord := models.Coordinate{Latitude: *input.UserLatitude, Longitude: *input.UserLongitude}
	users, err := h.proximityService.FindNearbyUsers(c.Request.Context(), userID, coord, input.RadiusMeters)
	if err != nil {
		log.WithError(err).Warn("Failed to find nearby users in service")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToNearbyUserResponses(users))
}

// @Summary List own check-ins
// @Description Returns the caller's most recent check-ins, newest first.
// @Tags Check-ins
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum number of check-ins" default(50)
// @Success 200 {array} CheckInResponse
// @Failure 401 {object} ErrorResponse "Unauthenticated"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /checkins [get]
func (h *Handler) listCheckIns(c *gin.Context) {
	userID := userIDFromContext(c)
	log := h.logger.WithField("method", "listCheckIns").WithField("user_id", userID)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(h.cfg.TimelineLimit)))

	checkIns, err := h.checkInService.ListCheckIns(c.Request.Context(), userID, limit)
	if err != nil {
		log.WithError(err).Error("Failed to list check-ins from service")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToCheckInResponses(checkIns))
}

// @Summary Get cooldown status
// @Description Advisory cooldown state for rendering a countdown. The check-in endpoint remains the only authority.
// @Tags Check-ins
// @Produce json
// @Security BearerAuth
// @Success 200 {object} CooldownResponse
// @Failure 401 {object} ErrorResponse "Unauthenticated"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /checkins/cooldown [get]
func (h *Handler) getCooldownStatus(c *gin.Context) {
	userID := userIDFromContext(c)
	log := h.logger.WithField("method", "getCooldownStatus").WithField("user_id", userID)

	status, err := h.checkInService.GetCooldownStatus(c.Request.Context(), userID)
	if err != nil {
		log.WithError(err).Error("Failed to get cooldown status from service")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, CooldownResponse{CanCheckIn: status.CanCheckIn, NextAllowedAt: status.NextAllowedAt})
}

// @Summary Get own check-in statistics
// @Tags Check-ins
// @Produce json
// @Security BearerAuth
// @Success 200 {object} UserStatsResponse
// @Failure 401 {object} ErrorResponse "Unauthenticated"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /checkins/stats [get]
func (h *Handler) getUserStats(c *gin.Context) {
	userID := userIDFromContext(c)
	log := h.logger.WithField("method", "getUserStats").WithField("user_id", userID)

	stats, err := h.checkInService.GetUserStats(c.Request.Context(), userID)
	if err != nil {
		log.WithError(err).Error("Failed to get user stats from service")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, UserStatsResponse{
		TotalCheckIns:   stats.TotalCheckIns,
		PlacesVisited:   stats.PlacesVisited,
		LastCheckedInAt: stats.LastCheckedInAt,
	})
}

// @Summary Update current location
// @Description Updates the caller's current location without creating a check-in.
// @Tags Nearby
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param location body UpdateLocationRequest true "Location update request"
// @Success 200 {object} LocationResponse
// @Failure 400 {object} ErrorResponse "Invalid coordinate or request body"
// @Failure 401 {object} ErrorResponse "Unauthenticated"
// @Failure 503 {object} ErrorResponse "Storage unavailable"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /location [put]
func (h *Handler) updateLocation(c *gin.Context) {
	userID := userIDFromContext(c)
	log := h.logger.WithField("method", "updateLocation").WithField("user_id", userID)

	var input UpdateLocationRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	coord := models.Coordinate{Latitude: *input.Latitude, Longitude: *input.Longitude}
	location, err := h.proximityService.UpdateLocation(c.Request.Context(), userID, coord, DTOToAddress(input.AddressRequest))
	if err != nil {
		log.WithError(err).Warn("Failed to update location in service")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ModelToLocationResponse(location))
}

// @Summary Get active users count
// @Description Number of distinct users with a check-in inside the stats window. Requires API key.
// @Tags Admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} StatsResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /admin/stats [get]
func (h *Handler) getStats(c *gin.Context) {
	log := h.logger.WithField("method", "getStats")

	count, err := h.checkInService.GetActiveUsersCount(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to get stats from service")
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, StatsResponse{ActiveUsers: count})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
