package services

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"mentorexpress/logger"
	"mentorexpress/models"
)

// ReferralMessage is the body returned on the emotional branch.
const ReferralMessage = "Hemos recibido tu solicitud y te hemos derivado al equipo de Bienestar Estudiantil, que te contactará pronto."

// MatchingService drives the help-request pipeline: persist the request,
// classify it, and either refer the student to wellbeing support or filter,
// rank and notify mentor candidates. Persistence is not transactional with
// the oracle calls: a request that fails after step 1 stays stored.
type MatchingService struct {
	students StudentStore
	mentors  MentorStore
	ml       MLService
	notifier Notifier
	vocab    *models.Vocabulary
	topK     int
}

func NewMatchingService(students StudentStore, mentors MentorStore, ml MLService, notifier Notifier, vocab *models.Vocabulary, topK int) *MatchingService {
	if topK <= 0 {
		topK = 5
	}
	return &MatchingService{
		students: students,
		mentors:  mentors,
		ml:       ml,
		notifier: notifier,
		vocab:    vocab,
		topK:     topK,
	}
}

// SubmitHelpRequest runs the full pipeline for one validated help request.
// The returned outcome is either a referral or an ordered candidate list,
// never both.
func (s *MatchingService) SubmitHelpRequest(in *models.CreateStudentInput) (*models.MatchOutcome, error) {
	student, err := s.students.Create(in)
	if err != nil {
		return nil, err
	}
	logger.Info("help request stored", "student_id", student.ID, "campus", student.Campus, "subject", student.Subject)

	verdict, err := s.ml.Classify(student.Request)
	if err != nil {
		// The stored request stays retrievable; only the pipeline aborts.
		return nil, err
	}

	if verdict.Type == models.RequestEmotional {
		if err := s.notifier.SendEmotionalSupportEmail(student); err != nil {
			logger.Error("emotional support email failed", "student_id", student.ID, "error", err)
		}
		return &models.MatchOutcome{
			Kind:       models.OutcomeReferral,
			StudentID:  student.ID,
			Confidence: verdict.Confidence,
			Message:    ReferralMessage,
		}, nil
	}

	candidates, err := s.mentors.FindMatching(models.MentorFilter{
		Campus:   student.Campus,
		Subject:  student.Subject,
		Modality: student.Modality,
		Language: student.Language,
	})
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, ErrNoMentorsAvailable
	}

	profile, mentorProfiles, err := s.translate(student, candidates)
	if err != nil {
		return nil, err
	}

	ranked, err := s.ml.RankMentors(profile, mentorProfiles, s.topK)
	if err != nil {
		return nil, err
	}

	matched, err := s.enrich(ranked, candidates)
	if err != nil {
		return nil, err
	}

	s.notifyMatches(student, matched, candidates)

	return &models.MatchOutcome{
		Kind:       models.OutcomeMatches,
		StudentID:  student.ID,
		Confidence: verdict.Confidence,
		Candidates: matched,
	}, nil
}

// translate maps the student and every candidate into the ML display
// vocabulary. A code outside the vocabulary means stored data and vocabulary
// have drifted, which is a server fault, not a caller one.
func (s *MatchingService) translate(student *models.Student, candidates []*models.Mentor) (StudentProfile, []MentorProfile, error) {
	var profile StudentProfile
	var err error

	if profile.Campus, err = s.vocab.DisplayCampus(student.Campus); err != nil {
		return profile, nil, err
	}
	if profile.Carrera, err = s.vocab.DisplayCareer(student.Career); err != nil {
		return profile, nil, err
	}
	if profile.Asignatura, err = s.vocab.DisplaySubject(student.Subject); err != nil {
		return profile, nil, err
	}
	if profile.Idioma, err = s.vocab.DisplayLanguage(student.Language); err != nil {
		return profile, nil, err
	}
	if profile.Modalidad, err = s.vocab.DisplayModality(student.Modality); err != nil {
		return profile, nil, err
	}
	profile.Solicitud = student.Request

	mentorProfiles := make([]MentorProfile, 0, len(candidates))
	for _, m := range candidates {
		mp := MentorProfile{ID: m.ID, Bio: m.Bio}
		if mp.Campus, err = s.vocab.DisplayCampus(m.Campus); err != nil {
			return profile, nil, err
		}
		if mp.Carrera, err = s.vocab.DisplayCareer(m.Career); err != nil {
			return profile, nil, err
		}
		if mp.Especialidad, err = s.vocab.DisplaySubject(m.SpecialtySubject); err != nil {
			return profile, nil, err
		}
		if mp.Idioma, err = s.vocab.DisplayLanguage(m.Language); err != nil {
			return profile, nil, err
		}
		if mp.Modalidad, err = s.vocab.DisplayModality(m.Modality); err != nil {
			return profile, nil, err
		}
		mentorProfiles = append(mentorProfiles, mp)
	}

	return profile, mentorProfiles, nil
}

// enrich joins the oracle's ranking with the in-memory candidate list,
// preserving the oracle's order and length. An id outside the candidate list
// violates the ranking contract and fails the whole call.
func (s *MatchingService) enrich(ranked []RankedMentor, candidates []*models.Mentor) ([]models.MatchCandidate, error) {
	byID := make(map[int64]*models.Mentor, len(candidates))
	for _, m := range candidates {
		byID[m.ID] = m
	}

	matched := make([]models.MatchCandidate, 0, len(ranked))
	for _, r := range ranked {
		mentor, ok := byID[r.MentorID]
		if !ok {
			return nil, fmt.Errorf("%w: mentor_id %d", ErrRankingContract, r.MentorID)
		}
		matched = append(matched, models.MatchCandidate{
			MentorID:         mentor.ID,
			FullName:         mentor.FullName,
			Email:            mentor.Email,
			Campus:           mentor.Campus,
			Career:           mentor.Career,
			SpecialtySubject: mentor.SpecialtySubject,
			Score:            r.MatchScore,
			Scores: models.MatchScores{
				TextSimilarity: r.TextSimilarity,
				Campus:         r.MatchDetails.MatchCampus,
				Career:         r.MatchDetails.MatchCarrera,
				Subject:        r.MatchDetails.MatchAsignatura,
				Language:       r.MatchDetails.MatchIdioma,
				Modality:       r.MatchDetails.MatchModalidad,
			},
		})
	}
	return matched, nil
}

// notifyMatches dispatches the result emails. Each mentor notification runs
// in its own goroutine so one slow or failing recipient never blocks the
// others; failures are logged and swallowed.
func (s *MatchingService) notifyMatches(student *models.Student, matched []models.MatchCandidate, candidates []*models.Mentor) {
	if err := s.notifier.SendMatchResultsEmail(student, matched); err != nil {
		logger.Error("match results email failed", "student_id", student.ID, "error", err)
	}

	byID := make(map[int64]*models.Mentor, len(candidates))
	for _, m := range candidates {
		byID[m.ID] = m
	}

	var wg sync.WaitGroup
	for _, c := range matched {
		mentor := byID[c.MentorID]
		wg.Add(1)
		go func(m *models.Mentor) {
			defer wg.Done()
			if err := s.notifier.SendMentorMatchEmail(m, student); err != nil {
				logger.Error("mentor match email failed", "mentor_id", m.ID, "error", err)
			}
		}(mentor)
	}
	wg.Wait()
}

// ConfirmSelection notifies both parties of a chosen pairing. Any existing
// student/mentor pair is accepted; no match record is persisted, so calling
// again just re-sends the notifications.
func (s *MatchingService) ConfirmSelection(in *models.ConfirmSelectionInput) (*models.SelectionConfirmation, error) {
	student, err := s.students.GetByID(in.StudentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}

	mentor, err := s.mentors.GetByID(in.MentorID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMentorNotFound
		}
		return nil, err
	}

	if err := s.notifier.SendStudentConfirmationEmail(student, mentor); err != nil {
		logger.Error("student confirmation email failed", "student_id", student.ID, "error", err)
	}
	if err := s.notifier.SendMentorConfirmationEmail(mentor, student); err != nil {
		logger.Error("mentor confirmation email failed", "mentor_id", mentor.ID, "error", err)
	}

	logger.Info("selection confirmed", "student_id", student.ID, "mentor_id", mentor.ID)

	return &models.SelectionConfirmation{
		StudentID:    student.ID,
		StudentName:  student.FullName,
		StudentEmail: student.Email,
		MentorID:     mentor.ID,
		MentorName:   mentor.FullName,
		MentorEmail:  mentor.Email,
		Subject:      mentor.SpecialtySubject,
	}, nil
}
