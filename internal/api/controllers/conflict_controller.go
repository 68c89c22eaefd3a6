package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"tripcheck/internal/models/request_models"
	"tripcheck/internal/models/response_models"
	"tripcheck/internal/services"
	"tripcheck/pkg/utils"
)

type ConflictController struct {
	conflictService services.ConflictServiceInterface
}

func NewConflictController(conflictService services.ConflictServiceInterface) *ConflictController {
	return &ConflictController{
		conflictService: conflictService,
	}
}

// DetectConflicts godoc
// @Summary Check an activity sequence for schedule conflicts
// @Description Runs overlap, travel-time, tight-transition and long-gap checks over the activities in the given order
// @Tags Conflicts
// @Accept json
// @Produce json
// @Param request body request_models.DetectConflictsRequest true "Ordered activities and optional thresholds"
// @Success 200 {object} response_models.DetectConflictsResponse
// @Failure 400 {object} utils.APIResponse
// @Router /conflicts/detect [post]
func (cc *ConflictController) DetectConflicts(c *gin.Context) {
	var req request_models.DetectConflictsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	out := cc.conflictService.DetectForActivities(c.Request.Context(), req.Activities, req.Options)
	utils.RespondSuccess(c, out, "Conflicts checked successfully")
}

// GetJourneyConflicts godoc
// @Summary Check every day of a journey for schedule conflicts
// @Tags Conflicts
// @Produce json
// @Param journeyId path string true "Journey ID"
// @Param min_buffer_minutes query int false "Minimum buffer"
// @Param tight_buffer_minutes query int false "Tight transition buffer"
// @Param long_gap_minutes query int false "Long gap threshold"
// @Param include_infos query bool false "Include info-level conflicts"
// @Success 200 {object} response_models.JourneyConflictsResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /journeys/{journeyId}/conflicts [get]
func (cc *ConflictController) GetJourneyConflicts(c *gin.Context) {
	var opts request_models.DetectOptions
	if err := c.ShouldBindQuery(&opts); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid query parameters: "+err.Error())
		return
	}

	out, err := cc.conflictService.DetectForJourney(c.Request.Context(), c.Param("journeyId"), c.GetString("user_id"), opts)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, out, "Journey conflicts checked successfully")
}

// GetJourneyDayConflicts godoc
// @Summary Check one journey day for schedule conflicts
// @Tags Conflicts
// @Produce json
// @Param dayId path string true "Journey day ID"
// @Success 200 {object} response_models.DayConflictsResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /journey-days/{dayId}/conflicts [get]
func (cc *ConflictController) GetJourneyDayConflicts(c *gin.Context) {
	var opts request_models.DetectOptions
	if err := c.ShouldBindQuery(&opts); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid query parameters: "+err.Error())
		return
	}

	out, err := cc.conflictService.DetectForJourneyDay(c.Request.Context(), c.Param("dayId"), c.GetString("user_id"), opts)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, out, "Journey day conflicts checked successfully")
}

// SaveLeg godoc
// @Summary Set the transport leg leaving an activity
// @Tags Journey
// @Accept json
// @Produce json
// @Param request body request_models.SaveLegRequest true "Leg"
// @Success 200 {object} response_models.SaveLegResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /journeys/legs [post]
func (cc *ConflictController) SaveLeg(c *gin.Context) {
	var req request_models.SaveLegRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	id, err := cc.conflictService.SaveLeg(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.SaveLegResponse{ID: id}, "Leg saved successfully")
}
