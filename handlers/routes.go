package handlers

import (
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	"mentorexpress/config"
	_ "mentorexpress/docs" // swagger annotations
	"mentorexpress/models"
	"mentorexpress/repository"
	"mentorexpress/services"
)

// RegisterRoutes wires repositories, services and handlers onto the router.
func RegisterRoutes(r *chi.Mux, cfg *config.Config, vocab *models.Vocabulary, ml services.MLService) {
	studentRepo := repository.NewStudentRepository()
	mentorRepo := repository.NewMentorRepository()
	notifier := services.NewEmailService(vocab)
	matching := services.NewMatchingService(studentRepo, mentorRepo, ml, notifier, vocab, cfg.ML.TopK)

	studentHandler := NewStudentHandler(studentRepo, vocab)
	mentorHandler := NewMentorHandler(mentorRepo, vocab)
	matchingHandler := NewMatchingHandler(matching, studentHandler)

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.Route("/api/students", func(r chi.Router) {
		r.Post("/", studentHandler.Create)
		r.Get("/", studentHandler.List)
		r.Get("/{id}", studentHandler.Get)
		r.Patch("/{id}", studentHandler.Update)
		r.Delete("/{id}", studentHandler.Delete)
	})

	r.Route("/api/mentors", func(r chi.Router) {
		r.Post("/", mentorHandler.Create)
		r.Get("/", mentorHandler.List)
		r.Get("/match", mentorHandler.Match)
		r.Get("/{id}", mentorHandler.Get)
		r.Patch("/{id}", mentorHandler.Update)
		r.Delete("/{id}", mentorHandler.Delete)
	})

	r.Route("/api/matching", func(r chi.Router) {
		r.Post("/request", matchingHandler.SubmitHelpRequest)
		r.Post("/confirm", matchingHandler.ConfirmSelection)
	})
}
