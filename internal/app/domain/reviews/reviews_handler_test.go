package reviews

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fernweh-travel/fernweh/internal/app/models"
)

func reviewsRouter(repo Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewReviewsHandlers(NewServiceImpl(repo, nil, zap.NewNop()), zap.NewNop())
	r.GET("/api/reviews", h.GetReviews)
	r.POST("/api/reviews", h.CreateReview)
	return r
}

func TestCreateReviewHandler(t *testing.T) {
	repo := new(mockRepository)
	r := reviewsRouter(repo)

	want := &models.Review{EventID: "rec_jp_001", UserName: "u1", Rating: 5, Review: "Loved it"}
	repo.On("Create", mock.Anything, "rec_jp_001", 5, "Loved it", "u1").Return(want, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reviews",
		strings.NewReader(`{"eventId":"rec_jp_001","rating":5,"review":"Loved it","userName":"u1"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.NotNil(t, body["review"])
}

func TestCreateReviewHandlerMissingFields(t *testing.T) {
	repo := new(mockRepository)
	r := reviewsRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reviews",
		strings.NewReader(`{"eventId":"rec_jp_001"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateReviewHandlerRatingOutOfRange(t *testing.T) {
	repo := new(mockRepository)
	r := reviewsRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reviews",
		strings.NewReader(`{"eventId":"rec_jp_001","rating":9,"userName":"u1"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestGetReviewsHandlerByEvent(t *testing.T) {
	repo := new(mockRepository)
	r := reviewsRouter(repo)

	repo.On("FindByEvent", mock.Anything, "rec_jp_001").
		Return([]models.Review{{EventID: "rec_jp_001", UserName: "u1", Rating: 5}}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/reviews?eventId=rec_jp_001", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"reviews":[`)
}

func TestGetReviewsHandlerByUserName(t *testing.T) {
	repo := new(mockRepository)
	r := reviewsRouter(repo)

	repo.On("FindByUserName", mock.Anything, "u1").
		Return([]models.Review{{EventID: "rec_jp_001", UserName: "u1", Rating: 4}}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/reviews?userName=u1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"userName":"u1"`)
}

func TestGetReviewsEmptyResultIsNotNull(t *testing.T) {
	repo := new(mockRepository)
	r := reviewsRouter(repo)

	repo.On("FindAll", mock.Anything).Return([]models.Review(nil), nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/reviews", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"reviews":[]`)
}
