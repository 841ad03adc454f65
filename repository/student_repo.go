package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"

	"mentorexpress/db"
	"mentorexpress/models"
)

// ErrDuplicateEmail reports a violated unique-email constraint.
var ErrDuplicateEmail = errors.New("email already registered")

const mysqlDuplicateEntry = 1062

func isDuplicateEntry(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == mysqlDuplicateEntry
}

const studentColumns = `id, full_name, email, campus, career, subject, current_year, language, modality, request, created_at, updated_at`

func scanStudent(row interface{ Scan(dest ...any) error }) (*models.Student, error) {
	s := &models.Student{}
	err := row.Scan(
		&s.ID, &s.FullName, &s.Email, &s.Campus, &s.Career, &s.Subject,
		&s.CurrentYear, &s.Language, &s.Modality, &s.Request,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

type StudentRepository struct{}

func NewStudentRepository() *StudentRepository {
	return &StudentRepository{}
}

// Create inserts the student and returns the stored row, including the
// assigned id and timestamps.
func (r *StudentRepository) Create(in *models.CreateStudentInput) (*models.Student, error) {
	res, err := db.DB.Exec(`
        INSERT INTO students (full_name, email, campus, career, subject, current_year, language, modality, request, created_at, updated_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, NOW(), NOW())
    `, in.FullName, in.Email, in.Campus, in.Career, in.Subject, in.CurrentYear, in.Language, in.Modality, in.Request)
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

func (r *StudentRepository) GetByID(id int64) (*models.Student, error) {
	row := db.DB.QueryRow(`SELECT `+studentColumns+` FROM students WHERE id=?`, id)
	return scanStudent(row)
}

func (r *StudentRepository) GetByEmail(email string) (*models.Student, error) {
	row := db.DB.QueryRow(`SELECT `+studentColumns+` FROM students WHERE email=?`, email)
	return scanStudent(row)
}

// List returns all students, newest first. When a filter field is set, only
// one is applied, matching the query semantics of the list endpoint.
func (r *StudentRepository) List() ([]*models.Student, error) {
	return r.queryStudents(`SELECT ` + studentColumns + ` FROM students ORDER BY created_at DESC`)
}

func (r *StudentRepository) ListByCampus(campus models.Campus) ([]*models.Student, error) {
	return r.queryStudents(`SELECT `+studentColumns+` FROM students WHERE campus=? ORDER BY created_at DESC`, campus)
}

func (r *StudentRepository) ListByCareer(career models.Career) ([]*models.Student, error) {
	return r.queryStudents(`SELECT `+studentColumns+` FROM students WHERE career=? ORDER BY created_at DESC`, career)
}

func (r *StudentRepository) ListBySubject(subject models.Subject) ([]*models.Student, error) {
	return r.queryStudents(`SELECT `+studentColumns+` FROM students WHERE subject=? ORDER BY created_at DESC`, subject)
}

func (r *StudentRepository) queryStudents(query string, args ...any) ([]*models.Student, error) {
	rows, err := db.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	students := make([]*models.Student, 0)
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

// Update applies the non-nil fields of in and returns the updated row.
func (r *StudentRepository) Update(id int64, in *models.UpdateStudentInput) (*models.Student, error) {
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
	if in.Subject != nil {
		addSet("subject", *in.Subject)
	}
	if in.CurrentYear != nil {
		addSet("current_year", *in.CurrentYear)
	}
	if in.Language != nil {
		addSet("language", *in.Language)
	}
	if in.Modality != nil {
		addSet("modality", *in.Modality)
	}
	if in.Request != nil {
		addSet("request", *in.Request)
	}
	if len(sets) == 0 {
		return r.GetByID(id)
	}

	sets = append(sets, "updated_at=NOW()")
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE students SET %s WHERE id=?`, strings.Join(sets, ", "))
	if _, err := db.DB.Exec(query, args...); err != nil {
		if isDuplicateEntry(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	return r.GetByID(id)
}

func (r *StudentRepository) Delete(id int64) error {
	res, err := db.DB.Exec(`DELETE FROM students WHERE id=?`, id)
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
