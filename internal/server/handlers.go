package server

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/abhisek/mathcoach/internal/feedback"
	"github.com/abhisek/mathcoach/internal/llm"
	"github.com/abhisek/mathcoach/internal/problemgen"
	"github.com/abhisek/mathcoach/internal/store"
	"github.com/abhisek/mathcoach/internal/tutor"
)

// generateRequest is the body for problem generation.
type generateRequest struct {
	Level        string `json:"level"`
	Topic        string `json:"topic"`
	Difficulty   string `json:"difficulty" binding:"required,oneof=easy medium hard"`
	QuestionType string `json:"question_type" binding:"required,oneof=subjective multiple_choice"`
	Model        string `json:"model"`
}

func (r generateRequest) toInput() problemgen.GenerateInput {
	return problemgen.GenerateInput{
		Level:        r.Level,
		Topic:        r.Topic,
		Difficulty:   problemgen.Difficulty(r.Difficulty),
		QuestionType: problemgen.QuestionType(r.QuestionType),
		Model:        r.Model,
	}
}

// createSessionRequest carries a problem the client wants to practise,
// normally the content returned by problem generation, plus the config
// it was generated under.
type createSessionRequest struct {
	Level        string             `json:"level"`
	Topic        string             `json:"topic"`
	Difficulty   string             `json:"difficulty" binding:"required,oneof=easy medium hard"`
	QuestionType string             `json:"question_type" binding:"required,oneof=subjective multiple_choice"`
	Statement    string             `json:"statement" binding:"required"`
	Answer       string             `json:"answer" binding:"required"`
	Working      []workingStepInput `json:"working" binding:"required,min=1,dive"`
	Choices      []choiceInput      `json:"choices" binding:"dive"`
}

type workingStepInput struct {
	Step        int    `json:"step"`
	Explanation string `json:"explanation"`
	Formula     string `json:"formula" binding:"required"`
}

type choiceInput struct {
	ID    string `json:"id" binding:"required"`
	Label string `json:"label"`
	Value string `json:"value"`
}

func (r createSessionRequest) toInput() tutor.CreateSessionInput {
	in := tutor.CreateSessionInput{
		Level:        r.Level,
		Topic:        r.Topic,
		Difficulty:   r.Difficulty,
		QuestionType: r.QuestionType,
		Statement:    r.Statement,
		Answer:       r.Answer,
		Working:      make([]store.WorkingStep, len(r.Working)),
	}
	for i, w := range r.Working {
		in.Working[i] = store.WorkingStep{Step: w.Step, Explanation: w.Explanation, Formula: w.Formula}
	}
	for _, c := range r.Choices {
		in.Choices = append(in.Choices, store.Choice{ID: c.ID, Label: c.Label, Value: c.Value})
	}
	return in
}

type submitRequest struct {
	Answer string `json:"answer" binding:"required"`
}

type hintAttachRequest struct {
	Hint string `json:"hint" binding:"required"`
}

type hintRequest struct {
	Statement string   `json:"statement" binding:"required"`
	Working   []string `json:"working"`
}

// submissionView is the API shape of one submission.
type submissionView struct {
	ID          string    `json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	AnswerText  string    `json:"answer_text"`
	ParsedValue *float64  `json:"parsed_value,omitempty"`
	Correct     *bool     `json:"correct,omitempty"`
	Feedback    string    `json:"feedback"`
}

// sessionView is the API shape of a session. Submissions and the
// canonical answer appear on the detail view only.
type sessionView struct {
	ID           string              `json:"id"`
	CreatedAt    time.Time           `json:"created_at"`
	Level        string              `json:"level,omitempty"`
	Topic        string              `json:"topic,omitempty"`
	Difficulty   string              `json:"difficulty,omitempty"`
	QuestionType string              `json:"question_type,omitempty"`
	Statement    string              `json:"statement"`
	Answer       string              `json:"answer,omitempty"`
	Working      []store.WorkingStep `json:"working,omitempty"`
	Choices      []store.Choice      `json:"choices,omitempty"`
	Hint         string              `json:"hint,omitempty"`
	Status       string              `json:"status"`
	Latest       *submissionView     `json:"latest_submission,omitempty"`
	Submissions  []submissionView    `json:"submissions,omitempty"`
}

func viewSubmission(sub *store.Submission) submissionView {
	return submissionView{
		ID:          sub.ID,
		CreatedAt:   sub.CreatedAt,
		AnswerText:  sub.AnswerText,
		ParsedValue: sub.ParsedValue,
		Correct:     sub.Correct,
		Feedback:    sub.Feedback,
	}
}

func viewSession(s *store.Session, detail bool) sessionView {
	v := sessionView{
		ID:           s.ID,
		CreatedAt:    s.CreatedAt,
		Level:        s.Level,
		Topic:        s.Topic,
		Difficulty:   s.Difficulty,
		QuestionType: s.QuestionType,
		Statement:    s.Statement,
		Choices:      s.Choices,
		Hint:         s.Hint,
		Status:       s.Status(),
	}
	if latest := s.Latest(); latest != nil {
		lv := viewSubmission(latest)
		v.Latest = &lv
	}
	if detail {
		v.Answer = s.Answer
		v.Working = s.Working
		for _, sub := range s.Submissions {
			v.Submissions = append(v.Submissions, viewSubmission(sub))
		}
	}
	return v
}

func (s *Server) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) generateProblem(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := s.svc.GenerateProblem(c.Request.Context(), req.toInput())
	if err != nil {
		s.writeError(c, err)
		return
	}
	ok(c, p)
}

func (s *Server) createSession(c *gin.Context) {
	var req createSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body")
		return
	}

	sess, err := s.svc.CreateSession(c.Request.Context(), req.toInput())
	if err != nil {
		s.writeError(c, err)
		return
	}
	created(c, viewSession(sess, true))
}

func (s *Server) listSessions(c *gin.Context) {
	f := store.Filter{
		Status:     c.Query("status"),
		Difficulty: c.Query("difficulty"),
	}

	switch f.Status {
	case "", "all", store.StatusCorrect, store.StatusIncorrect, store.StatusPending:
	default:
		fail(c, http.StatusBadRequest, "unknown status filter")
		return
	}

	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			fail(c, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		f.Limit = limit
	}

	sessions, err := s.svc.ListSessions(c.Request.Context(), f)
	if err != nil {
		s.writeError(c, err)
		return
	}

	views := make([]sessionView, len(sessions))
	for i, sess := range sessions {
		views[i] = viewSession(sess, false)
	}
	ok(c, gin.H{"sessions": views})
}

func (s *Server) getSession(c *gin.Context) {
	sess, err := s.svc.GetSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	ok(c, viewSession(sess, true))
}

func (s *Server) submitAnswer(c *gin.Context) {
	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body")
		return
	}

	sub, err := s.svc.SubmitAnswer(c.Request.Context(), c.Param("id"), req.Answer)
	if err != nil {
		s.writeError(c, err)
		return
	}
	created(c, viewSubmission(sub))
}

func (s *Server) attachHint(c *gin.Context) {
	var req hintAttachRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := s.svc.AttachHint(c.Request.Context(), c.Param("id"), req.Hint)
	if err != nil {
		s.writeError(c, err)
		return
	}
	ok(c, gin.H{"updated": updated})
}

func (s *Server) requestHint(c *gin.Context) {
	var req hintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body")
		return
	}

	hint, err := s.svc.RequestHint(c.Request.Context(), feedback.HintInput{
		Statement: req.Statement,
		Working:   req.Working,
	})
	if err != nil {
		s.writeError(c, err)
		return
	}
	ok(c, gin.H{"hint": hint})
}

// writeError maps pipeline errors to the response taxonomy. Internal
// detail goes to the log, never to the client.
func (s *Server) writeError(c *gin.Context, err error) {
	var verr *problemgen.ValidationError

	switch {
	case errors.Is(err, store.ErrNotFound):
		fail(c, http.StatusNotFound, "session not found")
	case errors.Is(err, tutor.ErrAnswerNotNumeric):
		fail(c, http.StatusUnprocessableEntity, "could not read a number from the answer, please restate it")
	case errors.As(err, &verr):
		s.logger.Warn("generated problem rejected", zap.Error(err))
		fail(c, http.StatusInternalServerError, "generation failed")
	case llm.IsGenerationFailure(err):
		s.logger.Error("generation failed", zap.Error(err))
		fail(c, http.StatusInternalServerError, "generation failed")
	default:
		s.logger.Error("request failed", zap.Error(err))
		fail(c, http.StatusInternalServerError, "internal error")
	}
}
