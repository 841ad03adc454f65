package services

import (
	"fmt"
	"strings"

	"mentorexpress/logger"
	"mentorexpress/models"
)

// EmailService writes outgoing mail to the log. Wiring a real SMTP provider
// is a deployment concern; every caller treats delivery as best-effort.
type EmailService struct {
	vocab *models.Vocabulary
}

func NewEmailService(vocab *models.Vocabulary) *EmailService {
	return &EmailService{vocab: vocab}
}

func (e *EmailService) subjectDisplay(s models.Subject) string {
	if disp, err := e.vocab.DisplaySubject(s); err == nil {
		return disp
	}
	return string(s)
}

func (e *EmailService) send(to, subject, body string) error {
	logger.Info("sending email", "to", to, "subject", subject)
	logger.Debug("email body", "to", to, "body", body)
	return nil
}

func (e *EmailService) SendEmotionalSupportEmail(student *models.Student) error {
	body := fmt.Sprintf(`Hola %s,

Hemos recibido tu solicitud y notamos que podrías beneficiarte del apoyo
de nuestro equipo de Bienestar Estudiantil.

Te invitamos a contactar con ellos para recibir el apoyo emocional que
necesitas.

Contacto: bienestar@universidad.cl
Teléfono: +56 2 1234 5678
Oficina: Edificio Central, 2do piso

¡Estamos aquí para apoyarte!

Equipo MentorExpress`, student.FullName)

	return e.send(student.Email, "Derivación a Bienestar Estudiantil", body)
}

func (e *EmailService) SendMatchResultsEmail(student *models.Student, candidates []models.MatchCandidate) error {
	lines := make([]string, 0, len(candidates))
	for i, c := range candidates {
		lines = append(lines, fmt.Sprintf("%d. %s - %.0f%% compatibilidad", i+1, c.FullName, c.Score*100))
	}

	body := fmt.Sprintf(`Hola %s,

¡Buenas noticias! Hemos encontrado %d mentores compatibles con tu solicitud:

%s

Los mentores recibirán tu solicitud y pronto te contactarán para coordinar
una sesión de ayuda.

¡Mucho éxito en tus estudios!

Equipo MentorExpress`, student.FullName, len(candidates), strings.Join(lines, "\n"))

	return e.send(student.Email, "¡Hemos encontrado mentores para ti!", body)
}

func (e *EmailService) SendMentorMatchEmail(mentor *models.Mentor, student *models.Student) error {
	body := fmt.Sprintf(`Hola %s,

Un estudiante (%s) necesita ayuda en %s:

"%s"

Por favor revisa tu disponibilidad y contacta al estudiante lo antes posible.

¡Gracias por ser parte de MentorExpress!

Equipo MentorExpress`, mentor.FullName, student.FullName, e.subjectDisplay(student.Subject), student.Request)

	return e.send(mentor.Email, "Nuevo estudiante compatible con tu perfil", body)
}

func (e *EmailService) SendStudentConfirmationEmail(student *models.Student, mentor *models.Mentor) error {
	body := fmt.Sprintf(`Hola %s,

Tu sesión de mentoría ha sido confirmada con %s, especialista en %s.

Tu mentor te contactará al correo %s para coordinar el horario.

¡Mucho éxito!

Equipo MentorExpress`, student.FullName, mentor.FullName, e.subjectDisplay(mentor.SpecialtySubject), student.Email)

	return e.send(student.Email, "Mentoría confirmada", body)
}

func (e *EmailService) SendMentorConfirmationEmail(mentor *models.Mentor, student *models.Student) error {
	body := fmt.Sprintf(`Hola %s,

%s ha confirmado la mentoría contigo para %s:

"%s"

Por favor contacta al estudiante en %s para coordinar la sesión.

Equipo MentorExpress`, mentor.FullName, student.FullName, e.subjectDisplay(student.Subject), student.Request, student.Email)

	return e.send(mentor.Email, "Mentoría confirmada con un estudiante", body)
}
