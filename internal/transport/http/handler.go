package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"quiz-catalog-service/internal/app"
	"quiz-catalog-service/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// DefaultPageLimit is the page size used when the caller omits limit.
const DefaultPageLimit = 30

// MaxPageLimit caps how many quizzes one page may request.
const MaxPageLimit = 100

// Handler exposes the catalog and scoring API over REST.
type Handler struct {
	service *app.QuizService
	log     *slog.Logger
}

func NewHandler(service *app.QuizService, log *slog.Logger) *Handler {
	return &Handler{service: service, log: log}
}

// Router builds the chi router with CORS and request logging. A missing id
// segment (e.g. POST /api/quiz) falls through to chi's 404, mirroring the
// routing-level behavior callers rely on.
func (h *Handler) Router(allowedOrigins []string) chi.Router {
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))
	r.Use(requestLogger(h.log))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	r.Route("/api", func(r chi.Router) {
		r.Get("/quizzes", h.queryQuizzes)
		r.Get("/quiz/{id}", h.getQuiz)
		r.Post("/quiz/{id}", h.submitAnswers)
	})
	return r
}

type quizListResponse struct {
	Results []quizPayload `json:"results"`
}

type quizPayload struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Difficulty string   `json:"difficulty"`
	Length     int      `json:"length"`
	Tags       []string `json:"tags"`
}

type questionListResponse struct {
	Results []questionPayload `json:"results"`
}

// questionPayload deliberately has no correct field; the answer key never
// leaves the server on this endpoint.
type questionPayload struct {
	ID      string            `json:"id"`
	QuizID  string            `json:"quizId"`
	Prompt  string            `json:"question"`
	Answers map[string]string `json:"answers"`
	Type    string            `json:"type"`
	Media   string            `json:"media"`
}

type submitRequest struct {
	Answers map[string]string `json:"answers"`
}

// queryQuizzes handles GET /api/quizzes. With no parameters it returns the
// first page of everything; q carries '+'-joined keywords and filter a
// comma-list of difficulties to exclude (trailing comma tolerated).
func (h *Handler) queryQuizzes(w http.ResponseWriter, r *http.Request) {
	desc := parseQuery(r.URL.Query().Get("page"), r.URL.Query().Get("limit"),
		r.URL.Query().Get("q"), r.URL.Query().Get("filter"))

	quizzes, err := h.service.SearchQuizzes(r.Context(), desc)
	if err != nil {
		h.log.Error("quiz query failed", "err", err)
		writeJSON(w, http.StatusInternalServerError, "Database Query Failed")
		return
	}

	resp := quizListResponse{Results: make([]quizPayload, 0, len(quizzes))}
	for _, quiz := range quizzes {
		tags := quiz.Tags
		if tags == nil {
			tags = []string{}
		}
		resp.Results = append(resp.Results, quizPayload{
			ID:         quiz.ID,
			Name:       quiz.Name,
			Difficulty: string(quiz.Difficulty),
			Length:     quiz.Length,
			Tags:       tags,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// getQuiz handles GET /api/quiz/{id}: all questions for the quiz, answer
// key stripped. A malformed id is a 400; a well-formed unknown id is a 200
// with empty results.
func (h *Handler) getQuiz(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	questions, err := h.service.QuizQuestions(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidQuizID) {
			writeJSON(w, http.StatusBadRequest, "Invalid Quiz ID")
			return
		}
		h.log.Error("question lookup failed", "quizId", id, "err", err)
		writeJSON(w, http.StatusInternalServerError, "Database Query Failed")
		return
	}

	resp := questionListResponse{Results: make([]questionPayload, 0, len(questions))}
	for _, q := range questions {
		answers := q.Answers
		if answers == nil {
			answers = map[string]string{}
		}
		resp.Results = append(resp.Results, questionPayload{
			ID:      q.ID,
			QuizID:  q.QuizID,
			Prompt:  q.Prompt,
			Answers: answers,
			Type:    string(q.Type),
			Media:   string(q.Media),
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// submitAnswers handles POST /api/quiz/{id}: scores the submitted answer
// set and returns the report, with corrections for every wrong answer.
func (h *Handler) submitAnswers(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	// A body that fails to decode is treated as carrying no answers; the
	// service turns the nil set into ErrMissingAnswers.
	var req submitRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	report, err := h.service.SubmitAnswers(r.Context(), id, domain.SubmittedAnswers(req.Answers))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidQuizID):
			writeJSON(w, http.StatusBadRequest, "Invalid Quiz ID")
		case errors.Is(err, domain.ErrMissingAnswers):
			writeJSON(w, http.StatusBadRequest, "No Answers in Request Body")
		case errors.Is(err, domain.ErrNoQuestions):
			writeJSON(w, http.StatusBadRequest, "No Questions Associated with ID")
		default:
			h.log.Error("scoring failed", "quizId", id, "err", err)
			writeJSON(w, http.StatusInternalServerError, "Error Processing Request")
		}
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func parseQuery(pageRaw, limitRaw, keywordsRaw, filterRaw string) domain.QueryDescriptor {
	desc := domain.QueryDescriptor{Page: 1, Limit: DefaultPageLimit}

	if page, err := strconv.Atoi(pageRaw); err == nil && page >= 1 {
		desc.Page = page
	}
	if limit, err := strconv.Atoi(limitRaw); err == nil && limit >= 1 {
		if limit > MaxPageLimit {
			limit = MaxPageLimit
		}
		desc.Limit = limit
	}

	// '+' in the query string has already been decoded to spaces here.
	desc.Keywords = strings.Fields(keywordsRaw)

	for _, item := range strings.Split(filterRaw, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		desc.ExcludedDifficulties = append(desc.ExcludedDifficulties, domain.Difficulty(item))
	}
	return desc
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
