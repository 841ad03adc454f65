package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"mentorexpress/models"
	"mentorexpress/repository"
	"mentorexpress/utils"
)

type MentorHandler struct {
	repo  *repository.MentorRepository
	vocab *models.Vocabulary
}

func NewMentorHandler(repo *repository.MentorRepository, vocab *models.Vocabulary) *MentorHandler {
	return &MentorHandler{repo: repo, vocab: vocab}
}

func (h *MentorHandler) validateCreateMentor(w http.ResponseWriter, in *models.CreateMentorInput) bool {
	missing := make([]string, 0)
	if strings.TrimSpace(in.FullName) == "" {
		missing = append(missing, "full_name")
	}
	if strings.TrimSpace(in.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(in.Bio) == "" {
		missing = append(missing, "bio")
	}
	if strings.TrimSpace(in.Availability) == "" {
		missing = append(missing, "availability")
	}
	if len(missing) > 0 {
		utils.WriteErrorResponse(w, http.StatusBadRequest, models.CodeMissingParams, map[string]interface{}{
			"missing": missing,
		})
		return false
	}

	if !strings.Contains(in.Email, "@") {
		utils.WriteCustomErrorResponse(w, http.StatusBadRequest, models.CodeInvalidParams, "invalid email", map[string]interface{}{"param": "email"})
		return false
	}

	invalid := make([]string, 0)
	if !h.vocab.ValidCampus(in.Campus) {
		invalid = append(invalid, "campus")
	}
	if !h.vocab.ValidCareer(in.Career) {
		invalid = append(invalid, "career")
	}
	if !h.vocab.ValidSubject(in.SpecialtySubject) {
		invalid = append(invalid, "specialty_subject")
	}
	if !h.vocab.ValidLanguage(in.Language) {
		invalid = append(invalid, "language")
	}
	if !h.vocab.ValidModality(in.Modality) {
		invalid = append(invalid, "modality")
	}
	if len(invalid) > 0 {
		utils.WriteErrorResponse(w, http.StatusBadRequest, models.CodeInvalidParams, map[string]interface{}{
			"invalid": invalid,
		})
		return false
	}
	return true
}

// Create godoc
// @Summary Create a mentor
// @Tags mentors
// @Accept json
// @Produce json
// @Param mentor body models.CreateMentorInput true "mentor payload"
// @Success 200 {object} models.APIResponse
// @Failure 400 {object} models.APIResponse
// @Failure 409 {object} models.APIResponse
// @Router /api/mentors [post]
func (h *MentorHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in models.CreateMentorInput
	if !utils.DecodeJSONBody(w, r, &in) {
		return
	}
	if !h.validateCreateMentor(w, &in) {
		return
	}

	mentor, err := h.repo.Create(&in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.WriteSuccessResponse(w, mentor)
}

// List godoc
// @Summary List mentors
// @Description Lists mentors, optionally filtered by campus, specialty subject or modality (first filter present wins)
// @Tags mentors
// @Produce json
// @Param campus query string false "campus code"
// @Param specialty_subject query string false "subject code"
// @Param modality query string false "modality code"
// @Success 200 {object} models.APIResponse
// @Router /api/mentors [get]
func (h *MentorHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		mentors []*models.Mentor
		err     error
	)

	switch {
	case r.URL.Query().Get("campus") != "":
		mentors, err = h.repo.ListByCampus(models.Campus(r.URL.Query().Get("campus")))
	case r.URL.Query().Get("specialty_subject") != "":
		mentors, err = h.repo.ListBySpecialtySubject(models.Subject(r.URL.Query().Get("specialty_subject")))
	case r.URL.Query().Get("modality") != "":
		mentors, err = h.repo.ListByModality(models.Modality(r.URL.Query().Get("modality")))
	default:
		mentors, err = h.repo.List()
	}
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.WriteSuccessResponse(w, mentors)
}

// Match godoc
// @Summary Filter mentors for matching
// @Description Returns mentors matching every provided filter; empty filters mean no constraint
// @Tags mentors
// @Produce json
// @Param campus query string false "campus code"
// @Param subject query string false "subject code"
// @Param modality query string false "modality code"
// @Param language query string false "language code"
// @Success 200 {object} models.APIResponse
// @Router /api/mentors/match [get]
func (h *MentorHandler) Match(w http.ResponseWriter, r *http.Request) {
	filter := models.MentorFilter{
		Campus:   models.Campus(r.URL.Query().Get("campus")),
		Subject:  models.Subject(r.URL.Query().Get("subject")),
		Modality: models.Modality(r.URL.Query().Get("modality")),
		Language: models.Language(r.URL.Query().Get("language")),
	}

	mentors, err := h.repo.FindMatching(filter)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.WriteSuccessResponse(w, mentors)
}

// Get godoc
// @Summary Get a mentor by id
// @Tags mentors
// @Produce json
// @Param id path int true "mentor id"
// @Success 200 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Router /api/mentors/{id} [get]
func (h *MentorHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := utils.ParseID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	mentor, err := h.repo.GetByID(id)
	if err != nil {
		if utils.IsSQLNoRowsError(err) {
			utils.WriteErrorResponse(w, http.StatusNotFound, models.CodeMentorNotFound, map[string]interface{}{"id": id})
			return
		}
		writeServiceError(w, err)
		return
	}
	utils.WriteSuccessResponse(w, mentor)
}

// Update godoc
// @Summary Update a mentor
// @Description Applies a partial update; omitted fields are unchanged
// @Tags mentors
// @Accept json
// @Produce json
// @Param id path int true "mentor id"
// @Param mentor body models.UpdateMentorInput true "fields to update"
// @Success 200 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Router /api/mentors/{id} [patch]
func (h *MentorHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := utils.ParseID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	var in models.UpdateMentorInput
	if !utils.DecodeJSONBody(w, r, &in) {
		return
	}

	mentor, err := h.repo.Update(id, &in)
	if err != nil {
		if utils.IsSQLNoRowsError(err) {
			utils.WriteErrorResponse(w, http.StatusNotFound, models.CodeMentorNotFound, map[string]interface{}{"id": id})
			return
		}
		writeServiceError(w, err)
		return
	}
	utils.WriteSuccessResponse(w, mentor)
}

// Delete godoc
// @Summary Delete a mentor
// @Tags mentors
// @Produce json
// @Param id path int true "mentor id"
// @Success 200 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Router /api/mentors/{id} [delete]
func (h *MentorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := utils.ParseID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	if err := h.repo.Delete(id); err != nil {
		if utils.IsSQLNoRowsError(err) {
			utils.WriteErrorResponse(w, http.StatusNotFound, models.CodeMentorNotFound, map[string]interface{}{"id": id})
			return
		}
		writeServiceError(w, err)
		return
	}
	utils.WriteSuccessResponse(w, map[string]interface{}{"id": id})
}
