package services

import "errors"

// Failure conditions the matching pipeline can surface. Handlers map these
// onto API codes; anything else is a generic server error.
var (
	// ErrMLUnavailable covers both oracles being unreachable or timing out.
	// Callers may retry; the service never retries internally.
	ErrMLUnavailable = errors.New("ML service unavailable")

	// ErrNoMentorsAvailable is terminal: the store filter matched nothing.
	ErrNoMentorsAvailable = errors.New("no mentors match the requested criteria")

	ErrStudentNotFound = errors.New("student not found")
	ErrMentorNotFound  = errors.New("mentor not found")

	// ErrRankingContract reports the ranking oracle returning a mentor id
	// that was not in the candidate list it was given.
	ErrRankingContract = errors.New("ranking result references unknown mentor")
)
