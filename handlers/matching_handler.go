package handlers

import (
	"errors"
	"net/http"

	"mentorexpress/models"
	"mentorexpress/repository"
	"mentorexpress/services"
	"mentorexpress/utils"
)

type MatchingHandler struct {
	matching *services.MatchingService
	students *StudentHandler
}

func NewMatchingHandler(matching *services.MatchingService, students *StudentHandler) *MatchingHandler {
	return &MatchingHandler{matching: matching, students: students}
}

// writeServiceError maps pipeline and storage errors onto API codes. The
// caller can always tell a retryable outage (503) apart from a terminal
// empty-filter result or a missing entity (404).
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrMLUnavailable):
		utils.WriteCustomErrorResponse(w, http.StatusServiceUnavailable, models.CodeMLUnavailable, err.Error(), map[string]interface{}{})
	case errors.Is(err, services.ErrNoMentorsAvailable):
		utils.WriteErrorResponse(w, http.StatusNotFound, models.CodeNoMentorsAvailable, map[string]interface{}{})
	case errors.Is(err, services.ErrStudentNotFound):
		utils.WriteErrorResponse(w, http.StatusNotFound, models.CodeStudentNotFound, map[string]interface{}{})
	case errors.Is(err, services.ErrMentorNotFound):
		utils.WriteErrorResponse(w, http.StatusNotFound, models.CodeMentorNotFound, map[string]interface{}{})
	case errors.Is(err, repository.ErrDuplicateEmail):
		utils.WriteErrorResponse(w, http.StatusConflict, models.CodeDuplicateEmail, map[string]interface{}{})
	default:
		utils.WriteCustomErrorResponse(w, http.StatusInternalServerError, models.CodeServerError, err.Error(), map[string]interface{}{})
	}
}

// SubmitHelpRequest godoc
// @Summary Submit a help request
// @Description Stores the request, classifies it, and returns either a wellbeing referral or a ranked mentor list
// @Tags matching
// @Accept json
// @Produce json
// @Param request body models.CreateStudentInput true "help request payload"
// @Success 200 {object} models.APIResponse
// @Failure 400 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse "no mentors match the filter"
// @Failure 409 {object} models.APIResponse "email already registered"
// @Failure 503 {object} models.APIResponse "ML service unavailable"
// @Router /api/matching/request [post]
func (h *MatchingHandler) SubmitHelpRequest(w http.ResponseWriter, r *http.Request) {
	var in models.CreateStudentInput
	if !utils.DecodeJSONBody(w, r, &in) {
		return
	}
	if !h.students.validateCreateStudent(w, &in) {
		return
	}

	outcome, err := h.matching.SubmitHelpRequest(&in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.WriteSuccessResponse(w, outcome)
}

// ConfirmSelection godoc
// @Summary Confirm a mentor selection
// @Description Notifies both parties that the student picked this mentor; no match record is stored
// @Tags matching
// @Accept json
// @Produce json
// @Param selection body models.ConfirmSelectionInput true "student and mentor ids"
// @Success 200 {object} models.APIResponse
// @Failure 400 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Router /api/matching/confirm [post]
func (h *MatchingHandler) ConfirmSelection(w http.ResponseWriter, r *http.Request) {
	var in models.ConfirmSelectionInput
	if !utils.DecodeJSONBody(w, r, &in) {
		return
	}
	if in.StudentID <= 0 || in.MentorID <= 0 {
		utils.WriteErrorResponse(w, http.StatusBadRequest, models.CodeMissingParams, map[string]interface{}{
			"required": []string{"student_id", "mentor_id"},
		})
		return
	}

	confirmation, err := h.matching.ConfirmSelection(&in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.WriteSuccessResponse(w, confirmation)
}
