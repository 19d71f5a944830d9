package controllers

import (
	"net/http"

	"github.com/aurumchit/agent_end/models"
	"github.com/aurumchit/agent_end/repository"
	"github.com/aurumchit/agent_end/service"
	"github.com/aurumchit/agent_end/utils"

	"github.com/gin-gonic/gin"
)

// CheckAttendance asks whether the punch prompt should be shown today.
func CheckAttendance(c *gin.Context) {
	user, err := utils.GetUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	svc := service.NewAttendanceService(gatewayFor(c), repository.InsertPunchRecord)
	result := svc.CheckEligibility(c.Request.Context(), user.ID)

	utils.SuccessResponse(c, result, "")
}

// PunchAttendance submits an attendance status plus optional note.
func PunchAttendance(c *gin.Context) {
	user, err := utils.GetUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var req struct {
		Status models.AttendanceStatus `json:"status" binding:"required"`
		Note   string                  `json:"note"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, "invalid request: "+err.Error(), http.StatusBadRequest)
		return
	}

	svc := service.NewAttendanceService(gatewayFor(c), repository.InsertPunchRecord)
	record, err := svc.Punch(c.Request.Context(), user.ID, productLine(c), req.Status, req.Note)
	if err != nil {
		if apiErr, ok := err.(*utils.ApiError); ok {
			utils.HandleError(c, apiErr)
			return
		}
		writeUpstreamError(c, err, "could not submit attendance, please retry")
		return
	}

	utils.SuccessResponse(c, record, "attendance recorded")
}

// NextAttendanceStatus returns the cyclic successor for a tapped status.
func NextAttendanceStatus(c *gin.Context) {
	current := models.AttendanceStatus(c.Query("current"))
	if current != "" && !current.Valid() {
		utils.ErrorResponse(c, "unknown attendance status: "+string(current), http.StatusBadRequest)
		return
	}

	utils.SuccessResponse(c, gin.H{"next": current.Next()}, "")
}

// ListAttendanceHistory returns the agent's recent punch records.
func ListAttendanceHistory(c *gin.Context) {
	user, err := utils.GetUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	records, err := repository.ListPunchRecords(c.Request.Context(), user.ID, 30)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, records, "")
}
