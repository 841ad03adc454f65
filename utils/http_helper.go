package utils

import (
	"encoding/json"
	"net/http"
	"strconv"

	"mentorexpress/models"
)

// WriteFormattedJSON writes indented JSON for easier manual inspection.
func WriteFormattedJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "    ")
	encoder.Encode(data)
}

func WriteSuccessResponse(w http.ResponseWriter, data interface{}) {
	WriteFormattedJSON(w, http.StatusOK, models.NewSuccessResponse(data))
}

func WriteErrorResponse(w http.ResponseWriter, status, code int, data interface{}) {
	WriteFormattedJSON(w, status, models.NewErrorResponse(code, data))
}

func WriteCustomErrorResponse(w http.ResponseWriter, status, code int, message string, data interface{}) {
	WriteFormattedJSON(w, status, models.NewCustomErrorResponse(code, message, data))
}

// ParseID validates a numeric path parameter, writing the error response
// itself when the value is missing or malformed.
func ParseID(w http.ResponseWriter, raw string) (int64, bool) {
	if raw == "" {
		WriteErrorResponse(w, http.StatusBadRequest, models.CodeMissingParams, map[string]interface{}{
			"param": "id",
		})
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		WriteCustomErrorResponse(w, http.StatusBadRequest, models.CodeInvalidParams, "id must be a positive integer", map[string]interface{}{
			"param": "id",
		})
		return 0, false
	}
	return id, true
}

// DecodeJSONBody decodes the request body, writing the error response on
// malformed input.
func DecodeJSONBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		WriteCustomErrorResponse(w, http.StatusBadRequest, models.CodeInvalidParams, "invalid JSON body: "+err.Error(), map[string]interface{}{})
		return false
	}
	return true
}
