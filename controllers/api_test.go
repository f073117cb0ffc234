package controllers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"blogmetrics/controllers"
	"blogmetrics/models"
	"blogmetrics/repository"
	"blogmetrics/router"
	"blogmetrics/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAPI(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := repository.NewMemoryStore()
	visitors, err := services.NewVisitorIdentifier("test-salt")
	require.NoError(t, err)

	likeCtrl := controllers.NewLikeController(services.NewLikeService(store, nil, nil), visitors)
	viewCtrl := controllers.NewViewController(services.NewViewService(store, nil, nil))
	rankCtrl := controllers.NewRankController(nil)

	return router.SetupRouter(likeCtrl, viewCtrl, rankCtrl, nil)
}

func doRequest(r *gin.Engine, method, target, forwardedFor string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	if forwardedFor != "" {
		req.Header.Set("X-Forwarded-For", forwardedFor)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestViews_GetUnknownSlugIs404(t *testing.T) {
	r := setupAPI(t)

	rec := doRequest(r, http.MethodGet, "/api/views/never-seen", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Article with slug 'never-seen' not found", body["message"])
}

func TestViews_PostCreatesThenIncrements(t *testing.T) {
	r := setupAPI(t)

	rec := doRequest(r, http.MethodPost, "/api/views/hello-world", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), decodeBody(t, rec)["viewCount"])

	rec = doRequest(r, http.MethodPost, "/api/views/hello-world", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(2), decodeBody(t, rec)["viewCount"])

	rec = doRequest(r, http.MethodGet, "/api/views/hello-world", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(2), decodeBody(t, rec)["viewCount"])
}

func TestLikes_GetNoLikesYetIs200Zeros(t *testing.T) {
	r := setupAPI(t)

	rec := doRequest(r, http.MethodGet, "/api/likes/never-seen", "198.51.100.1")
	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(0), body["totalLikeCount"])
	assert.Equal(t, float64(0), body["userLikeCount"])
}

func TestLikes_UpsertAndAggregatePerVisitor(t *testing.T) {
	r := setupAPI(t)

	rec := doRequest(r, http.MethodPost, "/api/likes/go-generics?count=2", "198.51.100.1")
	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(2), body["totalLikeCount"])
	assert.Equal(t, float64(2), body["userLikeCount"])

	// 另一个地址是另一个访客
	rec = doRequest(r, http.MethodPost, "/api/likes/go-generics?count=3", "198.51.100.2")
	assert.Equal(t, http.StatusOK, rec.Code)
	body = decodeBody(t, rec)
	assert.Equal(t, float64(5), body["totalLikeCount"])
	assert.Equal(t, float64(3), body["userLikeCount"])

	// 同一地址经多级代理转发仍是同一个访客
	rec = doRequest(r, http.MethodGet, "/api/likes/go-generics", "198.51.100.1, 10.0.0.1")
	assert.Equal(t, http.StatusOK, rec.Code)
	body = decodeBody(t, rec)
	assert.Equal(t, float64(5), body["totalLikeCount"])
	assert.Equal(t, float64(2), body["userLikeCount"])
}

func TestLikes_UpsertOverwrites(t *testing.T) {
	r := setupAPI(t)

	doRequest(r, http.MethodPost, "/api/likes/go-generics?count=3", "198.51.100.1")
	rec := doRequest(r, http.MethodPost, "/api/likes/go-generics?count=1", "198.51.100.1")
	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(1), body["totalLikeCount"])
	assert.Equal(t, float64(1), body["userLikeCount"])
}

func TestLikes_CountValidation(t *testing.T) {
	r := setupAPI(t)
	doRequest(r, http.MethodPost, "/api/likes/go-generics?count=2", "198.51.100.1")

	for _, target := range []string{
		"/api/likes/go-generics?count=-1",
		fmt.Sprintf("/api/likes/go-generics?count=%d", models.MaxUserLikeCount+1),
		"/api/likes/go-generics?count=abc",
		"/api/likes/go-generics",
	} {
		rec := doRequest(r, http.MethodPost, target, "198.51.100.1")
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
		assert.Equal(t, "Invalid count", decodeBody(t, rec)["message"], target)
	}

	// 被拒绝的请求不改状态
	rec := doRequest(r, http.MethodGet, "/api/likes/go-generics", "198.51.100.1")
	body := decodeBody(t, rec)
	assert.Equal(t, float64(2), body["totalLikeCount"])
	assert.Equal(t, float64(2), body["userLikeCount"])

	// 边界值 0 和上限本身合法
	rec = doRequest(r, http.MethodPost,
		fmt.Sprintf("/api/likes/go-generics?count=%d", models.MaxUserLikeCount), "198.51.100.1")
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = doRequest(r, http.MethodPost, "/api/likes/go-generics?count=0", "198.51.100.1")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(0), decodeBody(t, rec)["userLikeCount"])
}

func TestLikes_NoForwardedHeaderFallsBackToSentinel(t *testing.T) {
	r := setupAPI(t)

	// 没有转发头的请求都归到同一个哨兵访客
	doRequest(r, http.MethodPost, "/api/likes/go-generics?count=2", "")
	rec := doRequest(r, http.MethodGet, "/api/likes/go-generics", "")
	body := decodeBody(t, rec)
	assert.Equal(t, float64(2), body["userLikeCount"])
}

func TestUnsupportedMethodIs405(t *testing.T) {
	r := setupAPI(t)

	for _, target := range []string{"/api/likes/go-generics", "/api/views/go-generics"} {
		rec := doRequest(r, http.MethodDelete, target, "")
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code, target)
		assert.Equal(t, "Method Not Allowed", decodeBody(t, rec)["message"], target)
	}
}
