package models

// API response codes.
const (
	CodeSuccess = 0

	// Client errors (1000-1999)
	CodeInvalidParams      = 1000
	CodeMissingParams      = 1001
	CodeStudentNotFound    = 1002
	CodeMentorNotFound     = 1003
	CodeDuplicateEmail     = 1004
	CodeNoMentorsAvailable = 1005

	// Server errors (2000-2999)
	CodeServerError   = 2000
	CodeDatabaseError = 2001
	CodeMLUnavailable = 2002
	CodeMatchingError = 2003
)

var CodeMessages = map[int]string{
	CodeSuccess:            "success",
	CodeInvalidParams:      "invalid parameters",
	CodeMissingParams:      "missing required parameters",
	CodeStudentNotFound:    "student not found",
	CodeMentorNotFound:     "mentor not found",
	CodeDuplicateEmail:     "email already registered",
	CodeNoMentorsAvailable: "no mentors available for the requested criteria",
	CodeServerError:        "internal server error",
	CodeDatabaseError:      "database error",
	CodeMLUnavailable:      "ML service unavailable",
	CodeMatchingError:      "matching error",
}

// APIResponse is the envelope for every endpoint.
type APIResponse struct {
	Code    int         `json:"code" example:"0"`
	Message string      `json:"message" example:"success"`
	Data    interface{} `json:"data,omitempty"`
}

func NewSuccessResponse(data interface{}) APIResponse {
	return APIResponse{
		Code:    CodeSuccess,
		Message: CodeMessages[CodeSuccess],
		Data:    data,
	}
}

func NewErrorResponse(code int, data interface{}) APIResponse {
	message, exists := CodeMessages[code]
	if !exists {
		message = "unknown error"
	}
	return APIResponse{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

// NewCustomErrorResponse overrides the canned message for a code.
func NewCustomErrorResponse(code int, message string, data interface{}) APIResponse {
	return APIResponse{
		Code:    code,
		Message: message,
		Data:    data,
	}
}
