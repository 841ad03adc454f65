package models

import "time"

// Student holds a stored help request: the student's profile plus the
// free-text description of what they need.
type Student struct {
	ID          int64     `db:"id" json:"id"`
	FullName    string    `db:"full_name" json:"full_name"`
	Email       string    `db:"email" json:"email"`
	Campus      Campus    `db:"campus" json:"campus"`
	Career      Career    `db:"career" json:"career"`
	Subject     Subject   `db:"subject" json:"subject"`
	CurrentYear int       `db:"current_year" json:"current_year"`
	Language    Language  `db:"language" json:"language"`
	Modality    Modality  `db:"modality" json:"modality"`
	Request     string    `db:"request" json:"request"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// CreateStudentInput is the payload for creating a student / submitting a
// help request. All fields are required.
type CreateStudentInput struct {
	FullName    string   `json:"full_name" example:"Ana García"`
	Email       string   `json:"email" example:"ana.garcia@universidad.cl"`
	Campus      Campus   `json:"campus" example:"VINA_DEL_MAR"`
	Career      Career   `json:"career" example:"COMPUTER_ENGINEERING"`
	Subject     Subject  `json:"subject" example:"PROGRAMMING"`
	CurrentYear int      `json:"current_year" example:"2"`
	Language    Language `json:"language" example:"SPANISH_ENGLISH"`
	Modality    Modality `json:"modality" example:"ONLINE"`
	Request     string   `json:"request" example:"Necesito ayuda con estructuras de datos"`
}

// UpdateStudentInput is a partial update; nil fields are left unchanged.
type UpdateStudentInput struct {
	FullName    *string   `json:"full_name,omitempty"`
	Email       *string   `json:"email,omitempty"`
	Campus      *Campus   `json:"campus,omitempty"`
	Career      *Career   `json:"career,omitempty"`
	Subject     *Subject  `json:"subject,omitempty"`
	CurrentYear *int      `json:"current_year,omitempty"`
	Language    *Language `json:"language,omitempty"`
	Modality    *Modality `json:"modality,omitempty"`
	Request     *string   `json:"request,omitempty"`
}
