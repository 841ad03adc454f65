package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"mentorexpress/models"
	"mentorexpress/repository"
	"mentorexpress/utils"
)

type StudentHandler struct {
	repo  *repository.StudentRepository
	vocab *models.Vocabulary
}

func NewStudentHandler(repo *repository.StudentRepository, vocab *models.Vocabulary) *StudentHandler {
	return &StudentHandler{repo: repo, vocab: vocab}
}

// validateCreateStudent checks required fields and enum membership. Returns
// false after writing the error response.
func (h *StudentHandler) validateCreateStudent(w http.ResponseWriter, in *models.CreateStudentInput) bool {
	missing := make([]string, 0)
	if strings.TrimSpace(in.FullName) == "" {
		missing = append(missing, "full_name")
	}
	if strings.TrimSpace(in.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(in.Request) == "" {
		missing = append(missing, "request")
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
	if in.CurrentYear < 1 {
		utils.WriteCustomErrorResponse(w, http.StatusBadRequest, models.CodeInvalidParams, "current_year must be at least 1", map[string]interface{}{"param": "current_year"})
		return false
	}

	invalid := make([]string, 0)
	if !h.vocab.ValidCampus(in.Campus) {
		invalid = append(invalid, "campus")
	}
	if !h.vocab.ValidCareer(in.Career) {
		invalid = append(invalid, "career")
	}
	if !h.vocab.ValidSubject(in.Subject) {
		invalid = append(invalid, "subject")
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
// @Summary Create a student
// @Description Registers a student record without running the matching pipeline
// @Tags students
// @Accept json
// @Produce json
// @Param student body models.CreateStudentInput true "student payload"
// @Success 200 {object} models.APIResponse
// @Failure 400 {object} models.APIResponse
// @Failure 409 {object} models.APIResponse
// @Router /api/students [post]
func (h *StudentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in models.CreateStudentInput
	if !utils.DecodeJSONBody(w, r, &in) {
		return
	}
	if !h.validateCreateStudent(w, &in) {
		return
	}

	student, err := h.repo.Create(&in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.WriteSuccessResponse(w, student)
}

// List godoc
// @Summary List students
// @Description Lists students, optionally filtered by campus, career or subject (first filter present wins)
// @Tags students
// @Produce json
// @Param campus query string false "campus code"
// @Param career query string false "career code"
// @Param subject query string false "subject code"
// @Success 200 {object} models.APIResponse
// @Router /api/students [get]
func (h *StudentHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		students []*models.Student
		err      error
	)

	switch {
	case r.URL.Query().Get("campus") != "":
		students, err = h.repo.ListByCampus(models.Campus(r.URL.Query().Get("campus")))
	case r.URL.Query().Get("career") != "":
		students, err = h.repo.ListByCareer(models.Career(r.URL.Query().Get("career")))
	case r.URL.Query().Get("subject") != "":
		students, err = h.repo.ListBySubject(models.Subject(r.URL.Query().Get("subject")))
	default:
		students, err = h.repo.List()
	}
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.WriteSuccessResponse(w, students)
}

// Get godoc
// @Summary Get a student by id
// @Tags students
// @Produce json
// @Param id path int true "student id"
// @Success 200 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Router /api/students/{id} [get]
func (h *StudentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := utils.ParseID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	student, err := h.repo.GetByID(id)
	if err != nil {
		if utils.IsSQLNoRowsError(err) {
			utils.WriteErrorResponse(w, http.StatusNotFound, models.CodeStudentNotFound, map[string]interface{}{"id": id})
			return
		}
		writeServiceError(w, err)
		return
	}
	utils.WriteSuccessResponse(w, student)
}

// Update godoc
// @Summary Update a student
// @Description Applies a partial update; omitted fields are unchanged
// @Tags students
// @Accept json
// @Produce json
// @Param id path int true "student id"
// @Param student body models.UpdateStudentInput true "fields to update"
// @Success 200 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Router /api/students/{id} [patch]
func (h *StudentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := utils.ParseID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	var in models.UpdateStudentInput
	if !utils.DecodeJSONBody(w, r, &in) {
		return
	}

	student, err := h.repo.Update(id, &in)
	if err != nil {
		if utils.IsSQLNoRowsError(err) {
			utils.WriteErrorResponse(w, http.StatusNotFound, models.CodeStudentNotFound, map[string]interface{}{"id": id})
			return
		}
		writeServiceError(w, err)
		return
	}
	utils.WriteSuccessResponse(w, student)
}

// Delete godoc
// @Summary Delete a student
// @Tags students
// @Produce json
// @Param id path int true "student id"
// @Success 200 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Router /api/students/{id} [delete]
func (h *StudentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := utils.ParseID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	if err := h.repo.Delete(id); err != nil {
		if utils.IsSQLNoRowsError(err) {
			utils.WriteErrorResponse(w, http.StatusNotFound, models.CodeStudentNotFound, map[string]interface{}{"id": id})
			return
		}
		writeServiceError(w, err)
		return
	}
	utils.WriteSuccessResponse(w, map[string]interface{}{"id": id})
}
