package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/abhisek/mathcoach/internal/answer"
	"github.com/abhisek/mathcoach/internal/feedback"
	"github.com/abhisek/mathcoach/internal/llm"
	"github.com/abhisek/mathcoach/internal/problemgen"
	"github.com/abhisek/mathcoach/internal/store"
	"github.com/abhisek/mathcoach/internal/tutor"
)

func newTestServer(t *testing.T, mock *llm.MockProvider) *Server {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	st, err := store.Open(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	cfg := llm.DefaultConfig()
	cfg.Provider = "mock"
	reg := llm.NewRegistry(cfg, nil, nil)
	reg.RegisterProvider("", mock)

	svc := tutor.New(
		problemgen.New(reg, problemgen.DefaultConfig()),
		feedback.New(reg),
		answer.NewResolver(reg, nil),
		st.Sessions(),
		nil,
		zap.NewNop(),
	)
	return New(svc, nil, zap.NewNop(), nil)
}

func problemResponse() llm.MockResponse {
	p := problemgen.Problem{
		Statement: "A rope 2 m long is cut into 4 equal pieces. How long is each piece in metres?",
		Answer:    "0.5",
		Working: []problemgen.WorkingStep{
			{Step: 1, Explanation: "Divide the length by the number of pieces", Formula: "2 / 4 = 0.5"},
		},
	}
	raw, _ := json.Marshal(p)
	return llm.MockResponse{Content: raw}
}

func textResponse(text string) llm.MockResponse {
	raw, _ := json.Marshal(map[string]string{"text": text})
	return llm.MockResponse{Content: raw}
}

func createSessionBody(answer string) string {
	return fmt.Sprintf(`{
		"level": "P5", "topic": "Measurement",
		"difficulty": "easy", "question_type": "subjective",
		"statement": "A rope 2 m long is cut into 4 equal pieces. How long is each piece in metres?",
		"answer": %q,
		"working": [{"step": 1, "explanation": "Divide the length by the number of pieces", "formula": "2 / 4 = 0.5"}]
	}`, answer)
}

func doJSON(t *testing.T, srv *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp struct {
		Code    int            `json:"code"`
		Message string         `json:"message"`
		Data    map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Data
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t, llm.NewMockProvider())
	w := doJSON(t, srv, http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, w.Code)
}

func TestGenerateProblem(t *testing.T) {
	srv := newTestServer(t, llm.NewMockProvider(problemResponse()))

	w := doJSON(t, srv, http.MethodPost, "/api/problems",
		`{"level":"P5","topic":"Measurement","difficulty":"easy","question_type":"subjective"}`)
	require.Equal(t, http.StatusOK, w.Code)

	data := decodeData(t, w)
	require.Equal(t, "0.5", data["answer"])
}

func TestGenerateProblemBadRequest(t *testing.T) {
	srv := newTestServer(t, llm.NewMockProvider())

	w := doJSON(t, srv, http.MethodPost, "/api/problems",
		`{"difficulty":"impossible","question_type":"subjective"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenerateProblemBackendFailure(t *testing.T) {
	srv := newTestServer(t, llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}}))

	w := doJSON(t, srv, http.MethodPost, "/api/problems",
		`{"difficulty":"easy","question_type":"subjective"}`)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Contains(t, w.Body.String(), "generation failed")
}

func TestSessionLifecycle(t *testing.T) {
	srv := newTestServer(t, llm.NewMockProvider(
		textResponse("Nice work dividing evenly."),
	))

	// Create from client-supplied problem content.
	w := doJSON(t, srv, http.MethodPost, "/api/sessions", createSessionBody("0.5"))
	require.Equal(t, http.StatusCreated, w.Code)
	sessionID := decodeData(t, w)["id"].(string)
	require.NotEmpty(t, sessionID)

	// Submit a correct answer.
	w = doJSON(t, srv, http.MethodPost, "/api/sessions/"+sessionID+"/submissions",
		`{"answer":"1/2"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	sub := decodeData(t, w)
	require.Equal(t, true, sub["correct"])

	// Detail shows the submission and status.
	w = doJSON(t, srv, http.MethodGet, "/api/sessions/"+sessionID, "")
	require.Equal(t, http.StatusOK, w.Code)
	detail := decodeData(t, w)
	require.Equal(t, store.StatusCorrect, detail["status"])
	require.Len(t, detail["submissions"], 1)

	// Attach a hint.
	w = doJSON(t, srv, http.MethodPut, "/api/sessions/"+sessionID+"/hint",
		`{"hint":"How many pieces share the rope?"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, true, decodeData(t, w)["updated"])

	// List shows the session.
	w = doJSON(t, srv, http.MethodGet, "/api/sessions?status=correct", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, decodeData(t, w)["sessions"], 1)
}

func TestCreateSessionNonNumericAnswer(t *testing.T) {
	srv := newTestServer(t, llm.NewMockProvider())

	w := doJSON(t, srv, http.MethodPost, "/api/sessions", createSessionBody("about half"))
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	// Nothing was persisted.
	w = doJSON(t, srv, http.MethodGet, "/api/sessions", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Empty(t, decodeData(t, w)["sessions"])
}

func TestCreateSessionBadRequest(t *testing.T) {
	srv := newTestServer(t, llm.NewMockProvider())

	// Config alone is not a session; the problem content is required.
	w := doJSON(t, srv, http.MethodPost, "/api/sessions",
		`{"difficulty":"easy","question_type":"subjective"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetSessionNotFound(t *testing.T) {
	srv := newTestServer(t, llm.NewMockProvider())
	w := doJSON(t, srv, http.MethodGet, "/api/sessions/does-not-exist", "")
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestSubmitAnswerStatusMapping(t *testing.T) {
	srv := newTestServer(t, llm.NewMockProvider(
		// Extraction fallback for the unparseable answer fails.
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
	))

	w := doJSON(t, srv, http.MethodPost, "/api/sessions", createSessionBody("0.5"))
	require.Equal(t, http.StatusCreated, w.Code)
	sessionID := decodeData(t, w)["id"].(string)

	// Missing body field.
	w = doJSON(t, srv, http.MethodPost, "/api/sessions/"+sessionID+"/submissions", `{}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown session.
	w = doJSON(t, srv, http.MethodPost, "/api/sessions/nope/submissions", `{"answer":"1"}`)
	require.Equal(t, http.StatusNotFound, w.Code)

	// Unparseable answer.
	w = doJSON(t, srv, http.MethodPost, "/api/sessions/"+sessionID+"/submissions",
		`{"answer":"banana"}`)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestListSessionsBadFilters(t *testing.T) {
	srv := newTestServer(t, llm.NewMockProvider())

	w := doJSON(t, srv, http.MethodGet, "/api/sessions?status=bogus", "")
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, srv, http.MethodGet, "/api/sessions?limit=zero", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAttachHintMissingSession(t *testing.T) {
	srv := newTestServer(t, llm.NewMockProvider())

	w := doJSON(t, srv, http.MethodPut, "/api/sessions/nope/hint", `{"hint":"x"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, false, decodeData(t, w)["updated"])
}

func TestRequestHint(t *testing.T) {
	srv := newTestServer(t, llm.NewMockProvider(textResponse("What operation splits a length into equal parts?")))

	w := doJSON(t, srv, http.MethodPost, "/api/hints",
		`{"statement":"A rope 2 m long is cut into 4 equal pieces.","working":["2 / 4 = 0.5"]}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotEmpty(t, decodeData(t, w)["hint"])
}

func TestRequestHintFailureIs500(t *testing.T) {
	srv := newTestServer(t, llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}}))

	w := doJSON(t, srv, http.MethodPost, "/api/hints", `{"statement":"x"}`)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Contains(t, w.Body.String(), "generation failed")
}
