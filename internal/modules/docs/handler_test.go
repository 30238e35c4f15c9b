package docs

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := NewMemoryStore(26)
	require.NoError(t, err)
	svc := NewService(store, &stubGenerator{}, &stubGenerator{}, &letterFreqEmbedder{}, zap.NewNop())

	r := gin.New()
	api := r.Group("/api/v2")
	NewHandler(svc).RegisterRoutes(api)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestIngestRejectsShortDocText(t *testing.T) {
	r := newTestRouter(t)

	// 40 chars, below the 50-char minimum.
	short := strings.Repeat("a", 40)
	w := postJSON(r, "/api/v2/docs/ingest", `{"userId":"u1","docText":"`+short+`"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExplainRejectsUnknownAgeRange(t *testing.T) {
	r := newTestRouter(t)

	body := `{"userId":"u1","ageRange":"5-7","docText":"` + strings.Repeat("a", 60) + `"}`
	w := postJSON(r, "/api/v2/docs/explain", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSearchRejectsOversizedLimit(t *testing.T) {
	r := newTestRouter(t)

	w := postJSON(r, "/api/v2/docs/search", `{"userId":"u1","query":"lunch program","limit":11}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestIngestRequiresSomeUserID(t *testing.T) {
	r := newTestRouter(t)

	w := postJSON(r, "/api/v2/docs/ingest", `{"docText":"`+strings.Repeat("a", 60)+`"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
