package services

import (
	"database/sql"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mentorexpress/models"
)

// --- fakes ---

type fakeStudentStore struct {
	nextID    int64
	students  map[int64]*models.Student
	createErr error
}

func newFakeStudentStore() *fakeStudentStore {
	return &fakeStudentStore{students: make(map[int64]*models.Student)}
}

func (f *fakeStudentStore) Create(in *models.CreateStudentInput) (*models.Student, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.nextID++
	s := &models.Student{
		ID:          f.nextID,
		FullName:    in.FullName,
		Email:       in.Email,
		Campus:      in.Campus,
		Career:      in.Career,
		Subject:     in.Subject,
		CurrentYear: in.CurrentYear,
		Language:    in.Language,
		Modality:    in.Modality,
		Request:     in.Request,
	}
	f.students[s.ID] = s
	return s, nil
}

func (f *fakeStudentStore) GetByID(id int64) (*models.Student, error) {
	s, ok := f.students[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return s, nil
}

type fakeMentorStore struct {
	mentors []*models.Mentor
}

func (f *fakeMentorStore) GetByID(id int64) (*models.Mentor, error) {
	for _, m := range f.mentors {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (f *fakeMentorStore) FindMatching(filter models.MentorFilter) ([]*models.Mentor, error) {
	matched := make([]*models.Mentor, 0)
	for _, m := range f.mentors {
		if filter.Campus != "" && m.Campus != filter.Campus {
			continue
		}
		if filter.Subject != "" && m.SpecialtySubject != filter.Subject {
			continue
		}
		if filter.Modality != "" && m.Modality != filter.Modality {
			continue
		}
		if filter.Language != "" && m.Language != filter.Language {
			continue
		}
		matched = append(matched, m)
	}
	return matched, nil
}

type fakeML struct {
	verdict     *models.ClassificationVerdict
	classifyErr error

	ranked    []RankedMentor
	rankErr   error
	rankCalls int
	lastRank  matchRequest
}

func (f *fakeML) Classify(request string) (*models.ClassificationVerdict, error) {
	if f.classifyErr != nil {
		return nil, f.classifyErr
	}
	return f.verdict, nil
}

func (f *fakeML) RankMentors(student StudentProfile, mentors []MentorProfile, topK int) ([]RankedMentor, error) {
	f.rankCalls++
	f.lastRank = matchRequest{Student: student, Mentors: mentors, TopK: topK}
	if f.rankErr != nil {
		return nil, f.rankErr
	}
	return f.ranked, nil
}

func (f *fakeML) HealthCheck() bool { return true }

type fakeNotifier struct {
	mutex sync.Mutex
	fail  bool

	emotional      int
	matchResults   int
	mentorMatch    int
	studentConfirm int
	mentorConfirm  int
}

func (f *fakeNotifier) record(counter *int) error {
	f.mutex.Lock()
	defer f.mutex.Unlock()
	*counter++
	if f.fail {
		return errors.New("smtp down")
	}
	return nil
}

func (f *fakeNotifier) SendEmotionalSupportEmail(*models.Student) error {
	return f.record(&f.emotional)
}

func (f *fakeNotifier) SendMatchResultsEmail(*models.Student, []models.MatchCandidate) error {
	return f.record(&f.matchResults)
}

func (f *fakeNotifier) SendMentorMatchEmail(*models.Mentor, *models.Student) error {
	return f.record(&f.mentorMatch)
}

func (f *fakeNotifier) SendStudentConfirmationEmail(*models.Student, *models.Mentor) error {
	return f.record(&f.studentConfirm)
}

func (f *fakeNotifier) SendMentorConfirmationEmail(*models.Mentor, *models.Student) error {
	return f.record(&f.mentorConfirm)
}

// --- helpers ---

func testMentor(id int64, name string) *models.Mentor {
	return &models.Mentor{
		ID:               id,
		FullName:         name,
		Email:            name + "@universidad.cl",
		Campus:           models.CampusVinaDelMar,
		Career:           models.CareerComputerEngineering,
		SpecialtySubject: models.SubjectProgramming,
		Language:         models.LanguageSpanish,
		Modality:         models.ModalityOnline,
		Bio:              "experiencia en software",
		Availability:     "tardes",
	}
}

func testInput() *models.CreateStudentInput {
	return &models.CreateStudentInput{
		FullName:    "Ana García",
		Email:       "ana@universidad.cl",
		Campus:      models.CampusVinaDelMar,
		Career:      models.CareerComputerEngineering,
		Subject:     models.SubjectProgramming,
		CurrentYear: 2,
		Language:    models.LanguageSpanish,
		Modality:    models.ModalityOnline,
		Request:     "necesito ayuda con estructuras de datos",
	}
}

func academicVerdict(confidence float64) *models.ClassificationVerdict {
	return &models.ClassificationVerdict{
		Type:          models.RequestAcademic,
		Confidence:    confidence,
		ProbAcademic:  confidence,
		ProbEmotional: 1 - confidence,
	}
}

func rankedMentor(id int64, score float64) RankedMentor {
	r := RankedMentor{MentorID: id, MatchScore: score, TextSimilarity: score / 2}
	r.MatchDetails.MatchCampus = 1
	r.MatchDetails.MatchAsignatura = 1
	return r
}

func newTestService(students *fakeStudentStore, mentors *fakeMentorStore, ml *fakeML, notifier *fakeNotifier) *MatchingService {
	return NewMatchingService(students, mentors, ml, notifier, models.NewVocabulary(), 5)
}

// --- SubmitHelpRequest ---

func TestSubmitHelpRequestEmotional(t *testing.T) {
	students := newFakeStudentStore()
	ml := &fakeML{verdict: &models.ClassificationVerdict{Type: models.RequestEmotional, Confidence: 0.88}}
	notifier := &fakeNotifier{}
	svc := newTestService(students, &fakeMentorStore{mentors: []*models.Mentor{testMentor(1, "carlos")}}, ml, notifier)

	outcome, err := svc.SubmitHelpRequest(testInput())
	require.NoError(t, err)

	assert.Equal(t, models.OutcomeReferral, outcome.Kind)
	assert.Equal(t, ReferralMessage, outcome.Message)
	assert.InDelta(t, 0.88, outcome.Confidence, 1e-9)
	assert.Empty(t, outcome.Candidates)

	assert.Equal(t, 0, ml.rankCalls, "ranking oracle must not be called on the emotional branch")
	assert.Equal(t, 1, notifier.emotional)
	assert.Equal(t, 0, notifier.matchResults)
}

func TestSubmitHelpRequestAcademic(t *testing.T) {
	students := newFakeStudentStore()
	mentors := &fakeMentorStore{mentors: []*models.Mentor{testMentor(1, "carlos"), testMentor(2, "maria")}}
	ml := &fakeML{
		verdict: academicVerdict(0.92),
		ranked:  []RankedMentor{rankedMentor(2, 0.81), rankedMentor(1, 0.64)},
	}
	notifier := &fakeNotifier{}
	svc := newTestService(students, mentors, ml, notifier)

	outcome, err := svc.SubmitHelpRequest(testInput())
	require.NoError(t, err)

	assert.Equal(t, models.OutcomeMatches, outcome.Kind)
	assert.InDelta(t, 0.92, outcome.Confidence, 1e-9)
	require.Len(t, outcome.Candidates, 2)

	// Oracle order is preserved: best score first.
	assert.Equal(t, int64(2), outcome.Candidates[0].MentorID)
	assert.Equal(t, "maria", outcome.Candidates[0].FullName)
	assert.Equal(t, "maria@universidad.cl", outcome.Candidates[0].Email)
	assert.Equal(t, models.CampusVinaDelMar, outcome.Candidates[0].Campus)
	assert.Equal(t, models.SubjectProgramming, outcome.Candidates[0].SpecialtySubject)
	assert.InDelta(t, 0.81, outcome.Candidates[0].Score, 1e-9)
	assert.Equal(t, int64(1), outcome.Candidates[1].MentorID)
	assert.InDelta(t, 0.64, outcome.Candidates[1].Score, 1e-9)

	// One email to the student plus one per ranked mentor.
	assert.Equal(t, 1, notifier.matchResults)
	assert.Equal(t, 2, notifier.mentorMatch)
	assert.Equal(t, 0, notifier.emotional)

	// The oracle received display vocabulary, not enum codes.
	assert.Equal(t, "Viña del Mar", ml.lastRank.Student.Campus)
	assert.Equal(t, "Programación", ml.lastRank.Student.Asignatura)
	require.Len(t, ml.lastRank.Mentors, 2)
	assert.Equal(t, "Ingeniería en Computación", ml.lastRank.Mentors[0].Carrera)
	assert.Equal(t, 5, ml.lastRank.TopK)
}

func TestSubmitHelpRequestNoMentors(t *testing.T) {
	students := newFakeStudentStore()
	// Mentor exists but on another campus, so the filter matches nothing.
	other := testMentor(1, "carlos")
	other.Campus = models.CampusConcepcion
	ml := &fakeML{verdict: academicVerdict(0.9)}
	svc := newTestService(students, &fakeMentorStore{mentors: []*models.Mentor{other}}, ml, &fakeNotifier{})

	_, err := svc.SubmitHelpRequest(testInput())
	assert.ErrorIs(t, err, ErrNoMentorsAvailable)
	assert.Equal(t, 0, ml.rankCalls)
}

func TestSubmitHelpRequestClassifierUnavailable(t *testing.T) {
	students := newFakeStudentStore()
	ml := &fakeML{classifyErr: ErrMLUnavailable}
	svc := newTestService(students, &fakeMentorStore{}, ml, &fakeNotifier{})

	_, err := svc.SubmitHelpRequest(testInput())
	assert.ErrorIs(t, err, ErrMLUnavailable)

	// The stored request survives the aborted pipeline.
	stored, err := students.GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, "ana@universidad.cl", stored.Email)
}

func TestSubmitHelpRequestRankerUnavailable(t *testing.T) {
	students := newFakeStudentStore()
	mentors := &fakeMentorStore{mentors: []*models.Mentor{testMentor(1, "carlos")}}
	ml := &fakeML{verdict: academicVerdict(0.9), rankErr: ErrMLUnavailable}
	svc := newTestService(students, mentors, ml, &fakeNotifier{})

	_, err := svc.SubmitHelpRequest(testInput())
	assert.ErrorIs(t, err, ErrMLUnavailable)

	stored, err := students.GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stored.ID)
}

func TestSubmitHelpRequestRankingContractViolation(t *testing.T) {
	students := newFakeStudentStore()
	mentors := &fakeMentorStore{mentors: []*models.Mentor{testMentor(1, "carlos")}}
	// Oracle returns an id that was never in the candidate list.
	ml := &fakeML{verdict: academicVerdict(0.9), ranked: []RankedMentor{rankedMentor(99, 0.5)}}
	notifier := &fakeNotifier{}
	svc := newTestService(students, mentors, ml, notifier)

	_, err := svc.SubmitHelpRequest(testInput())
	assert.ErrorIs(t, err, ErrRankingContract)
	assert.Equal(t, 0, notifier.matchResults)
	assert.Equal(t, 0, notifier.mentorMatch)
}

func TestSubmitHelpRequestNotificationFailuresAreSwallowed(t *testing.T) {
	students := newFakeStudentStore()
	mentors := &fakeMentorStore{mentors: []*models.Mentor{testMentor(1, "carlos"), testMentor(2, "maria")}}
	ml := &fakeML{
		verdict: academicVerdict(0.9),
		ranked:  []RankedMentor{rankedMentor(1, 0.7), rankedMentor(2, 0.6)},
	}
	notifier := &fakeNotifier{fail: true}
	svc := newTestService(students, mentors, ml, notifier)

	outcome, err := svc.SubmitHelpRequest(testInput())
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeMatches, outcome.Kind)
	require.Len(t, outcome.Candidates, 2)

	// Every notification was still attempted.
	assert.Equal(t, 1, notifier.matchResults)
	assert.Equal(t, 2, notifier.mentorMatch)
}

func TestSubmitHelpRequestPersistFailureIsFatal(t *testing.T) {
	students := newFakeStudentStore()
	students.createErr = errors.New("connection lost")
	ml := &fakeML{verdict: academicVerdict(0.9)}
	svc := newTestService(students, &fakeMentorStore{}, ml, &fakeNotifier{})

	_, err := svc.SubmitHelpRequest(testInput())
	require.Error(t, err)
	assert.Equal(t, 0, ml.rankCalls)
}

// --- ConfirmSelection ---

func TestConfirmSelection(t *testing.T) {
	students := newFakeStudentStore()
	student, err := students.Create(testInput())
	require.NoError(t, err)

	mentor := testMentor(3, "maria")
	notifier := &fakeNotifier{}
	svc := newTestService(students, &fakeMentorStore{mentors: []*models.Mentor{mentor}}, &fakeML{}, notifier)

	confirmation, err := svc.ConfirmSelection(&models.ConfirmSelectionInput{StudentID: student.ID, MentorID: mentor.ID})
	require.NoError(t, err)

	assert.Equal(t, student.ID, confirmation.StudentID)
	assert.Equal(t, mentor.ID, confirmation.MentorID)
	assert.Equal(t, "maria", confirmation.MentorName)
	assert.Equal(t, models.SubjectProgramming, confirmation.Subject)

	assert.Equal(t, 1, notifier.studentConfirm)
	assert.Equal(t, 1, notifier.mentorConfirm)
}

func TestConfirmSelectionUnknownStudent(t *testing.T) {
	notifier := &fakeNotifier{}
	svc := newTestService(newFakeStudentStore(), &fakeMentorStore{mentors: []*models.Mentor{testMentor(1, "carlos")}}, &fakeML{}, notifier)

	_, err := svc.ConfirmSelection(&models.ConfirmSelectionInput{StudentID: 42, MentorID: 1})
	assert.ErrorIs(t, err, ErrStudentNotFound)
	assert.Equal(t, 0, notifier.studentConfirm)
	assert.Equal(t, 0, notifier.mentorConfirm)
}

func TestConfirmSelectionUnknownMentor(t *testing.T) {
	students := newFakeStudentStore()
	student, err := students.Create(testInput())
	require.NoError(t, err)

	notifier := &fakeNotifier{}
	svc := newTestService(students, &fakeMentorStore{}, &fakeML{}, notifier)

	_, err = svc.ConfirmSelection(&models.ConfirmSelectionInput{StudentID: student.ID, MentorID: 99})
	assert.ErrorIs(t, err, ErrMentorNotFound)
	assert.Equal(t, 0, notifier.studentConfirm)
	assert.Equal(t, 0, notifier.mentorConfirm)
}
