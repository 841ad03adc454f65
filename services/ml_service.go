package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"mentorexpress/config"
	"mentorexpress/logger"
	"mentorexpress/models"
)

// StudentProfile is the requester profile in the ML service's display
// vocabulary, as sent on the wire.
type StudentProfile struct {
	Campus     string `json:"campus"`
	Carrera    string `json:"carrera"`
	Asignatura string `json:"asignatura"`
	Idioma     string `json:"idioma"`
	Modalidad  string `json:"modalidad"`
	Solicitud  string `json:"solicitud"`
}

// MentorProfile is one ranking candidate in display vocabulary.
type MentorProfile struct {
	ID           int64  `json:"id"`
	Campus       string `json:"campus"`
	Carrera      string `json:"carrera"`
	Especialidad string `json:"especialidad"`
	Idioma       string `json:"idioma"`
	Modalidad    string `json:"modalidad"`
	Bio          string `json:"bio"`
}

// RankedMentor is one entry of the ranking oracle's response, best first.
type RankedMentor struct {
	MentorID       int64   `json:"mentor_id"`
	MatchScore     float64 `json:"match_score"`
	TextSimilarity float64 `json:"text_similarity"`
	MatchDetails   struct {
		MatchCampus     float64 `json:"match_campus"`
		MatchCarrera    float64 `json:"match_carrera"`
		MatchAsignatura float64 `json:"match_asignatura"`
		MatchIdioma     float64 `json:"match_idioma"`
		MatchModalidad  float64 `json:"match_modalidad"`
	} `json:"match_details"`
}

type triageRequest struct {
	Solicitud string `json:"solicitud"`
}

type triageResponse struct {
	Solicitud       string  `json:"solicitud"`
	TipoRecomendado string  `json:"tipo_recomendado"`
	Confianza       float64 `json:"confianza"`
	Probabilidades  struct {
		Academica float64 `json:"academica"`
		Emocional float64 `json:"emocional"`
	} `json:"probabilidades"`
}

type matchRequest struct {
	Student StudentProfile  `json:"student"`
	Mentors []MentorProfile `json:"mentors"`
	TopK    int             `json:"top_k"`
}

// MLClient talks to the triage and matching models over HTTP. The triage
// call carries a short timeout; the match call a longer one since it scales
// with the candidate list. Timeouts and connection failures both map to
// ErrMLUnavailable and are never retried here.
type MLClient struct {
	baseURL      string
	triageClient *http.Client
	matchClient  *http.Client
	healthClient *http.Client
}

func NewMLClient(cfg *config.Config) *MLClient {
	return &MLClient{
		baseURL:      cfg.ML.BaseURL,
		triageClient: &http.Client{Timeout: time.Duration(cfg.ML.TriageTimeoutSec) * time.Second},
		matchClient:  &http.Client{Timeout: time.Duration(cfg.ML.MatchTimeoutSec) * time.Second},
		healthClient: &http.Client{Timeout: time.Duration(cfg.ML.HealthTimeoutSec) * time.Second},
	}
}

func (c *MLClient) Classify(request string) (*models.ClassificationVerdict, error) {
	var tr triageResponse
	if err := c.post(c.triageClient, "/triaje", triageRequest{Solicitud: request}, &tr); err != nil {
		return nil, err
	}

	logger.Info("triage completed", "type", tr.TipoRecomendado, "confidence", tr.Confianza)

	switch models.RequestType(tr.TipoRecomendado) {
	case models.RequestAcademic, models.RequestEmotional:
	default:
		return nil, fmt.Errorf("unexpected triage label %q", tr.TipoRecomendado)
	}

	return &models.ClassificationVerdict{
		Type:          models.RequestType(tr.TipoRecomendado),
		Confidence:    tr.Confianza,
		ProbAcademic:  tr.Probabilidades.Academica,
		ProbEmotional: tr.Probabilidades.Emocional,
	}, nil
}

func (c *MLClient) RankMentors(student StudentProfile, mentors []MentorProfile, topK int) ([]RankedMentor, error) {
	logger.Info("requesting mentor ranking", "candidates", len(mentors), "top_k", topK)

	var ranked []RankedMentor
	payload := matchRequest{Student: student, Mentors: mentors, TopK: topK}
	if err := c.post(c.matchClient, "/match", payload, &ranked); err != nil {
		return nil, err
	}

	logger.Info("ranking completed", "results", len(ranked))
	return ranked, nil
}

func (c *MLClient) HealthCheck() bool {
	resp, err := c.healthClient.Get(c.baseURL + "/health")
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// post sends payload to path and decodes the response into out. Transport
// errors (including client timeouts) and 5xx answers become ErrMLUnavailable.
func (c *MLClient) post(client *http.Client, path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		logger.Error("ML request failed", "path", path, "error", err)
		return fmt.Errorf("%w: %v", ErrMLUnavailable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading ML response: %w", err)
	}

	if resp.StatusCode >= http.StatusInternalServerError {
		logger.Error("ML service error", "path", path, "status", resp.StatusCode, "response", string(respBody))
		return fmt.Errorf("%w: HTTP %d", ErrMLUnavailable, resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("ML service error (HTTP %d): %s", resp.StatusCode, string(respBody))
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("decoding ML response: %w", err)
	}
	return nil
}
