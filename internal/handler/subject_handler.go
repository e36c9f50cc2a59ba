package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Harsha51888/attendance-tracker/internal/model"
	"github.com/Harsha51888/attendance-tracker/internal/response"
	"github.com/Harsha51888/attendance-tracker/internal/service"
	"github.com/Harsha51888/attendance-tracker/internal/store"
	"github.com/Harsha51888/attendance-tracker/internal/validator"
)

type SubjectHandler struct {
	subjectService *service.SubjectService
}

func NewSubjectHandler(subjectService *service.SubjectService) *SubjectHandler {
	return &SubjectHandler{subjectService: subjectService}
}

// List godoc
// GET /api/v1/subjects
func (h *SubjectHandler) List(c *gin.Context) {
	reports, err := h.subjectService.List(c.Request.Context())
	if err != nil {
		failStorage(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"subjects":  reports,
		"threshold": h.subjectService.Threshold(),
	})
}

// Create godoc
// POST /api/v1/subjects
func (h *SubjectHandler) Create(c *gin.Context) {
	var req model.CreateSubjectRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	sub, err := h.subjectService.Add(c.Request.Context(), req)
	if err != nil {
		if isValidationError(err) {
			response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation,
				map[string]string{"detail": err.Error()})
			return
		}
		failStorage(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"subject": sub})
}

// MarkClass godoc
// POST /api/v1/subjects/:position/classes
func (h *SubjectHandler) MarkClass(c *gin.Context) {
	position, err := strconv.Atoi(c.Param("position"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidPosition)
		return
	}

	var req model.MarkClassRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	if err := h.subjectService.MarkClass(c.Request.Context(), position, *req.Attended); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		failStorage(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "class recorded successfully"})
}

// Delete godoc
// DELETE /api/v1/subjects/:position
func (h *SubjectHandler) Delete(c *gin.Context) {
	position, err := strconv.Atoi(c.Param("position"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidPosition)
		return
	}

	if err := h.subjectService.Remove(c.Request.Context(), position); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		failStorage(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "subject deleted successfully"})
}

// isValidationError reports whether err is one of the subject invariant
// violations rejected by Append.
func isValidationError(err error) bool {
	return errors.Is(err, model.ErrEmptyName) ||
		errors.Is(err, model.ErrNonPositiveCredits) ||
		errors.Is(err, model.ErrNegativeCount) ||
		errors.Is(err, model.ErrAttendedOverTotal)
}

// failStorage maps storage failures onto response codes. Corrupt state is
// surfaced distinctly so the caller knows data still exists but is unreadable.
func failStorage(c *gin.Context, err error) {
	if errors.Is(err, store.ErrCorruptState) {
		response.Fail(c, http.StatusInternalServerError, response.ErrCorruptState)
		return
	}
	response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
}
