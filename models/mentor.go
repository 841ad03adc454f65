package models

import "time"

// Mentor is a stored mentoring offer, filterable by campus, specialty
// subject, language and modality.
type Mentor struct {
	ID               int64     `db:"id" json:"id"`
	FullName         string    `db:"full_name" json:"full_name"`
	Email            string    `db:"email" json:"email"`
	Campus           Campus    `db:"campus" json:"campus"`
	Career           Career    `db:"career" json:"career"`
	SpecialtySubject Subject   `db:"specialty_subject" json:"specialty_subject"`
	Language         Language  `db:"language" json:"language"`
	Modality         Modality  `db:"modality" json:"modality"`
	Bio              string    `db:"bio" json:"bio"`
	Availability     string    `db:"availability" json:"availability"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time `db:"updated_at" json:"updated_at"`
}

type CreateMentorInput struct {
	FullName         string   `json:"full_name" example:"Dr. Carlos Rodríguez"`
	Email            string   `json:"email" example:"carlos.rodriguez@universidad.cl"`
	Campus           Campus   `json:"campus" example:"VINA_DEL_MAR"`
	Career           Career   `json:"career" example:"COMPUTER_ENGINEERING"`
	SpecialtySubject Subject  `json:"specialty_subject" example:"PROGRAMMING"`
	Language         Language `json:"language" example:"SPANISH_ENGLISH"`
	Modality         Modality `json:"modality" example:"ONLINE"`
	Bio              string   `json:"bio" example:"Profesor con 15 años de experiencia"`
	Availability     string   `json:"availability" example:"Lunes a viernes 14:00-18:00"`
}

// UpdateMentorInput is a partial update; nil fields are left unchanged.
type UpdateMentorInput struct {
	FullName         *string   `json:"full_name,omitempty"`
	Email            *string   `json:"email,omitempty"`
	Campus           *Campus   `json:"campus,omitempty"`
	Career           *Career   `json:"career,omitempty"`
	SpecialtySubject *Subject  `json:"specialty_subject,omitempty"`
	Language         *Language `json:"language,omitempty"`
	Modality         *Modality `json:"modality,omitempty"`
	Bio              *string   `json:"bio,omitempty"`
	Availability     *string   `json:"availability,omitempty"`
}

// MentorFilter narrows mentor lookups for matching. Empty fields mean no
// constraint on that attribute.
type MentorFilter struct {
	Campus   Campus
	Subject  Subject
	Modality Modality
	Language Language
}
