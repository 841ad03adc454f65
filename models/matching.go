package models

// RequestType is the label the triage model assigns to a help request.
type RequestType string

const (
	RequestAcademic  RequestType = "academica"
	RequestEmotional RequestType = "emocional"
)

// ClassificationVerdict is the triage result for one help request. It lives
// for a single pipeline run and is never persisted.
type ClassificationVerdict struct {
	Type          RequestType `json:"type"`
	Confidence    float64     `json:"confidence"`
	ProbAcademic  float64     `json:"prob_academic"`
	ProbEmotional float64     `json:"prob_emotional"`
}

// MatchScores are the per-attribute indicators behind a composite score,
// kept only for explainability.
type MatchScores struct {
	TextSimilarity float64 `json:"text_similarity"`
	Campus         float64 `json:"campus"`
	Career         float64 `json:"career"`
	Subject        float64 `json:"subject"`
	Language       float64 `json:"language"`
	Modality       float64 `json:"modality"`
}

// MatchCandidate is one ranked mentor, enriched with display fields from the
// stored mentor record.
type MatchCandidate struct {
	MentorID         int64       `json:"mentor_id"`
	FullName         string      `json:"full_name"`
	Email            string      `json:"email"`
	Campus           Campus      `json:"campus"`
	Career           Career      `json:"career"`
	SpecialtySubject Subject     `json:"specialty_subject"`
	Score            float64     `json:"score"`
	Scores           MatchScores `json:"scores"`
}

// OutcomeKind tags the two shapes a matching run can produce.
type OutcomeKind string

const (
	OutcomeReferral OutcomeKind = "referral"
	OutcomeMatches  OutcomeKind = "matches"
)

// MatchOutcome is the result of one help-request run. Exactly one of Message
// or Candidates is meaningful, selected by Kind: a referral carries the
// message, an academic match carries the ordered candidate list.
type MatchOutcome struct {
	Kind       OutcomeKind      `json:"kind"`
	StudentID  int64            `json:"student_id"`
	Confidence float64          `json:"confidence"`
	Message    string           `json:"message,omitempty"`
	Candidates []MatchCandidate `json:"candidates,omitempty"`
}

// ConfirmSelectionInput identifies the student/mentor pair being confirmed.
type ConfirmSelectionInput struct {
	StudentID int64 `json:"student_id" example:"1"`
	MentorID  int64 `json:"mentor_id" example:"3"`
}

// SelectionConfirmation summarizes a confirmed pairing. No record is
// persisted; repeating the call re-sends the notifications.
type SelectionConfirmation struct {
	StudentID    int64   `json:"student_id"`
	StudentName  string  `json:"student_name"`
	MentorID     int64   `json:"mentor_id"`
	MentorName   string  `json:"mentor_name"`
	Subject      Subject `json:"subject"`
	MentorEmail  string  `json:"mentor_email"`
	StudentEmail string  `json:"student_email"`
}
