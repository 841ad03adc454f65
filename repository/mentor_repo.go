package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"mentorexpress/db"
	"mentorexpress/models"
)

const mentorColumns = `id, full_name, email, campus, career, specialty_subject, language, modality, bio, availability, created_at, updated_at`

func scanMentor(row interface{ Scan(dest ...any) error }) (*models.Mentor, error) {
	m := &models.Mentor{}
	err := row.Scan(
		&m.ID, &m.FullName, &m.Email, &m.Campus, &m.Career, &m.SpecialtySubject,
		&m.Language, &m.Modality, &m.Bio, &m.Availability,
		&m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return m, nil
}

type MentorRepository struct{}

func NewMentorRepository() *MentorRepository {
	return &MentorRepository{}
}

func (r *MentorRepository) Create(in *models.CreateMentorInput) (*models.Mentor, error) {
	res, err := db.DB.Exec(`
        INSERT INTO mentors (full_name, email, campus, career, specialty_subject, language, modality, bio, availability, created_at, updated_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, NOW(), NOW())
    `, in.FullName, in.Email, in.Campus, in.Career, in.SpecialtySubject, in.Language, in.Modality, in.Bio, in.Availability)
	if err != nil {
		if isDuplicateEntry(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return r.GetByID(id)
}

func (r *MentorRepository) GetByID(id int64) (*models.Mentor, error) {
	row := db.DB.QueryRow(`SELECT `+mentorColumns+` FROM mentors WHERE id=?`, id)
	return scanMentor(row)
}

func (r *MentorRepository) GetByEmail(email string) (*models.Mentor, error) {
	row := db.DB.QueryRow(`SELECT `+mentorColumns+` FROM mentors WHERE email=?`, email)
	return scanMentor(row)
}

func (r *MentorRepository) List() ([]*models.Mentor, error) {
	return r.queryMentors(`SELECT ` + mentorColumns + ` FROM mentors ORDER BY created_at DESC`)
}

func (r *MentorRepository) ListByCampus(campus models.Campus) ([]*models.Mentor, error) {
	return r.queryMentors(`SELECT `+mentorColumns+` FROM mentors WHERE campus=? ORDER BY created_at DESC`, campus)
}

func (r *MentorRepository) ListBySpecialtySubject(subject models.Subject) ([]*models.Mentor, error) {
	return r.queryMentors(`SELECT `+mentorColumns+` FROM mentors WHERE specialty_subject=? ORDER BY created_at DESC`, subject)
}

func (r *MentorRepository) ListByModality(modality models.Modality) ([]*models.Mentor, error) {
	return r.queryMentors(`SELECT `+mentorColumns+` FROM mentors WHERE modality=? ORDER BY created_at DESC`, modality)
}

// FindMatching returns mentors matching every set field of the filter, in
// insertion order so equal ranking scores keep a stable order downstream.
func (r *MentorRepository) FindMatching(filter models.MentorFilter) ([]*models.Mentor, error) {
	conds := make([]string, 0, 4)
	args := make([]any, 0, 4)

	if filter.Campus != "" {
		conds = append(conds, "campus=?")
		args = append(args, filter.Campus)
	}
	if filter.Subject != "" {
		conds = append(conds, "specialty_subject=?")
		args = append(args, filter.Subject)
	}
	if filter.Modality != "" {
		conds = append(conds, "modality=?")
		args = append(args, filter.Modality)
	}
	if filter.Language != "" {
		conds = append(conds, "language=?")
		args = append(args, filter.Language)
	}

	query := `SELECT ` + mentorColumns + ` FROM mentors`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	query += ` ORDER BY id`

	return r.queryMentors(query, args...)
}

func (r *MentorRepository) queryMentors(query string, args ...any) ([]*models.Mentor, error) {
	rows, err := db.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	mentors := make([]*models.Mentor, 0)
	for rows.Next() {
		m, err := scanMentor(rows)
		if err != nil {
			return nil, err
		}
		mentors = append(mentors, m)
	}
	return mentors, rows.Err()
}

func (r *MentorRepository) Update(id int64, in *models.UpdateMentorInput) (*models.Mentor, error) {
	sets := make([]string, 0, 9)
	args := make([]any, 0, 10)

	addSet := func(column string, value any) {
		sets = append(sets, column+"=?")
		args = append(args, value)
	}

	if in.FullName != nil {
		addSet("full_name", *in.FullName)
	}
	if in.Email != nil {
		addSet("email", *in.Email)
	}
	if in.Campus != nil {
		addSet("campus", *in.Campus)
	}
	if in.Career != nil {
		addSet("career", *in.Career)
	}
	if in.SpecialtySubject != nil {
		addSet("specialty_subject", *in.SpecialtySubject)
	}
	if in.Language != nil {
		addSet("language", *in.Language)
	}
	if in.Modality != nil {
		addSet("modality", *in.Modality)
	}
	if in.Bio != nil {
		addSet("bio", *in.Bio)
	}
	if in.Availability != nil {
		addSet("availability", *in.Availability)
	}
	if len(sets) == 0 {
		return r.GetByID(id)
	}

	sets = append(sets, "updated_at=NOW()")
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE mentors SET %s WHERE id=?`, strings.Join(sets, ", "))
	if _, err := db.DB.Exec(query, args...); err != nil {
		if isDuplicateEntry(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	return r.GetByID(id)
}

func (r *MentorRepository) Delete(id int64) error {
	res, err := db.DB.Exec(`DELETE FROM mentors WHERE id=?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
