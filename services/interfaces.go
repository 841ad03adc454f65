package services

import "mentorexpress/models"

// StudentStore is the student persistence surface the matching pipeline uses.
type StudentStore interface {
	Create(in *models.CreateStudentInput) (*models.Student, error)
	GetByID(id int64) (*models.Student, error)
}

// MentorStore is the mentor persistence surface the matching pipeline uses.
type MentorStore interface {
	GetByID(id int64) (*models.Mentor, error)
	FindMatching(filter models.MentorFilter) ([]*models.Mentor, error)
}

// MLService is the classification and ranking oracle pair.
type MLService interface {
	// Classify labels the free-text request as academic or emotional.
	Classify(request string) (*models.ClassificationVerdict, error)

	// RankMentors scores the candidates against the student profile and
	// returns at most topK results, best first. Profiles are already in the
	// oracle's display vocabulary.
	RankMentors(student StudentProfile, mentors []MentorProfile, topK int) ([]RankedMentor, error)

	// HealthCheck reports whether the ML service answers its health probe.
	HealthCheck() bool
}

// Notifier delivers outcome messages. Every call is best-effort from the
// pipeline's perspective: failures are logged by the caller, never surfaced.
type Notifier interface {
	SendEmotionalSupportEmail(student *models.Student) error
	SendMatchResultsEmail(student *models.Student, candidates []models.MatchCandidate) error
	SendMentorMatchEmail(mentor *models.Mentor, student *models.Student) error
	SendStudentConfirmationEmail(student *models.Student, mentor *models.Mentor) error
	SendMentorConfirmationEmail(mentor *models.Mentor, student *models.Student) error
}
