package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/campushire/platform/cv"
	"github.com/campushire/platform/models"
	"github.com/campushire/platform/storage"
	"github.com/campushire/platform/utils"
)

// RecordLister reads CV records
type RecordLister interface {
	GetCVRecord(ctx context.Context, userID string) (*models.CVRecord, error)
	ListRecentCVs(ctx context.Context, limit int) ([]models.CVRecord, error)
}

// CVHandler handles CV generation requests
type CVHandler struct {
	service *cv.Service
	records RecordLister
	logger  *logrus.Entry
}

// NewCVHandler creates a new CV handler. records may be nil when CV records are disabled.
func NewCVHandler(service *cv.Service, records RecordLister) *CVHandler {
	return &CVHandler{
		service: service,
		records: records,
		logger:  utils.GetLogger().WithField("component", "cv-handler"),
	}
}

// GenerateCV generates a CV PDF for the given user
// @Summary Generate CV
// @Description Generate a one-page CV PDF from the user's stored details using a language model
// @Tags CV
// @Accept json
// @Produce application/pdf
// @Produce json
// @Param request body models.GenerateCVRequest true "User id and details"
// @Success 200 {file} file "Generated CV"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 502 {object} models.ErrorResponse "Text generation failed"
// @Failure 500 {object} models.ErrorResponse "Rendering or storage failed"
// @Router /generate-cv [post]
func (h *CVHandler) GenerateCV(c *gin.Context) {
	var req models.GenerateCVRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid request body",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
		return
	}

	if req.UserID.IsZero() {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid request body",
			Code:    http.StatusBadRequest,
			Details: "user_id is required",
		})
		return
	}

	log := h.logger.WithFields(logrus.Fields{
		"request_id": RequestID(c),
		"user_id":    req.UserID.String(),
	})

	result, err := h.service.Generate(c.Request.Context(), req.UserID.String(), &req.UserDetails)
	if err != nil {
		status := http.StatusInternalServerError
		message := "CV generation failed"
		switch {
		case errors.Is(err, cv.ErrInvalidUserID), errors.Is(err, cv.ErrMissingUserID):
			status = http.StatusBadRequest
			message = "Invalid request body"
		case errors.Is(err, cv.ErrGeneration), errors.Is(err, cv.ErrNoSections):
			status = http.StatusBadGateway
			message = "Text generation failed"
		}

		log.WithError(err).Error("GenerateCV failed")
		c.JSON(status, models.ErrorResponse{
			Error:   message,
			Code:    status,
			Details: err.Error(),
		})
		return
	}

	c.Header("X-CV-Location", result.Location)
	c.Header("X-CV-Pages", strconv.Itoa(result.Pages))
	sendPDF(c, result.FileName, result.PDF)
}

// GetCV returns a previously generated CV
// @Summary Download CV
// @Description Download the last CV generated for a user. Bucket backends redirect to a signed URL.
// @Tags CV
// @Produce application/pdf
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {file} file "Stored CV"
// @Success 307 "Redirect to a signed download URL"
// @Failure 400 {object} models.ErrorResponse "Invalid user id"
// @Failure 404 {object} models.ErrorResponse "No CV for this user"
// @Router /cvs/{userID} [get]
func (h *CVHandler) GetCV(c *gin.Context) {
	ctx := c.Request.Context()
	userID := c.Param("userID")
	log := h.logger.WithField("user_id", userID)

	link, err := h.service.Link(ctx, userID)
	if err != nil {
		if cvLookupFailed(c, err) {
			return
		}
		log.WithError(err).Warn("Signed URL failed, streaming the CV instead")
	} else if link != "" {
		c.Redirect(http.StatusTemporaryRedirect, link)
		return
	}

	data, err := h.service.Open(ctx, userID)
	if err != nil {
		if cvLookupFailed(c, err) {
			return
		}

		log.WithError(err).Error("GetCV failed")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "Failed to read CV",
			Code:    http.StatusInternalServerError,
			Details: err.Error(),
		})
		return
	}

	sendPDF(c, cv.FileName(userID), data)
}

// GetCVRecord returns the generation record of a user's CV
// @Summary CV record
// @Description Metadata of the last CV generated for a user
// @Tags CV
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {object} models.CVRecord
// @Failure 404 {object} models.ErrorResponse "No record"
// @Failure 501 {object} models.ErrorResponse "CV records are disabled"
// @Router /cvs/{userID}/record [get]
func (h *CVHandler) GetCVRecord(c *gin.Context) {
	if !h.recordsEnabled(c) {
		return
	}

	rec, err := h.records.GetCVRecord(c.Request.Context(), c.Param("userID"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error: "CV record not found",
				Code:  http.StatusNotFound,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "Failed to read CV record",
			Code:    http.StatusInternalServerError,
			Details: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, rec)
}

// ListCVs lists recently generated CVs
// @Summary Recent CVs
// @Description List the most recently generated CVs, newest first
// @Tags CV
// @Produce json
// @Param limit query int false "Maximum number of records" default(20)
// @Success 200 {array} models.CVRecord
// @Failure 501 {object} models.ErrorResponse "CV records are disabled"
// @Router /cvs [get]
func (h *CVHandler) ListCVs(c *gin.Context) {
	if !h.recordsEnabled(c) {
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit <= 0 || limit > 100 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "limit must be between 1 and 100",
			Code:  http.StatusBadRequest,
		})
		return
	}

	records, err := h.records.ListRecentCVs(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "Failed to list CV records",
			Code:    http.StatusInternalServerError,
			Details: err.Error(),
		})
		return
	}
	if records == nil {
		records = []models.CVRecord{}
	}

	c.JSON(http.StatusOK, records)
}

// cvLookupFailed answers requests for missing CVs or malformed user ids
func cvLookupFailed(c *gin.Context, err error) bool {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: "CV not found",
			Code:  http.StatusNotFound,
		})
	case errors.Is(err, cv.ErrInvalidUserID), errors.Is(err, cv.ErrMissingUserID):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid user id",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
	default:
		return false
	}
	return true
}

func (h *CVHandler) recordsEnabled(c *gin.Context) bool {
	if h.records != nil {
		return true
	}
	c.JSON(http.StatusNotImplemented, models.ErrorResponse{
		Error: "CV records are disabled",
		Code:  http.StatusNotImplemented,
	})
	return false
}

func sendPDF(c *gin.Context, fileName string, data []byte) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	c.Data(http.StatusOK, "application/pdf", data)
}
