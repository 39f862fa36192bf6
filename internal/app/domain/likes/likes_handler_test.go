package likes

import (
	"context"
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

type mockService struct{ mock.Mock }

func (m *mockService) GetLikesByUser(ctx context.Context, userID string) ([]models.Like, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Like), args.Error(1)
}

func (m *mockService) GetAllLikes(ctx context.Context) ([]models.Like, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Like), args.Error(1)
}

func (m *mockService) IsLiked(ctx context.Context, userID, eventID string) (bool, error) {
	args := m.Called(ctx, userID, eventID)
	return args.Bool(0), args.Error(1)
}

func (m *mockService) LikeEvent(ctx context.Context, userID, eventID string) (*models.Like, error) {
	args := m.Called(ctx, userID, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Like), args.Error(1)
}

func (m *mockService) UnlikeEvent(ctx context.Context, userID, eventID string) error {
	args := m.Called(ctx, userID, eventID)
	return args.Error(0)
}

func likesRouter(svc Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewLikesHandlers(svc, zap.NewNop())
	r.GET("/api/likes", h.GetLikes)
	r.POST("/api/likes", h.CreateLike)
	r.DELETE("/api/likes", h.DeleteLike)
	return r
}

func TestCreateLikeFirstTime(t *testing.T) {
	svc := new(mockService)
	r := likesRouter(svc)

	like := &models.Like{UserID: "u1", EventID: "rec_jp_001"}
	svc.On("IsLiked", mock.Anything, "u1", "rec_jp_001").Return(false, nil)
	svc.On("LikeEvent", mock.Anything, "u1", "rec_jp_001").Return(like, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/likes",
		strings.NewReader(`{"userId":"u1","eventId":"rec_jp_001"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, true, body["liked"])
	assert.NotNil(t, body["like"])
}

func TestCreateLikeRepeatIsNoOp(t *testing.T) {
	svc := new(mockService)
	r := likesRouter(svc)

	like := &models.Like{UserID: "u1", EventID: "rec_jp_001"}
	svc.On("IsLiked", mock.Anything, "u1", "rec_jp_001").Return(true, nil)
	svc.On("LikeEvent", mock.Anything, "u1", "rec_jp_001").Return(like, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/likes",
		strings.NewReader(`{"userId":"u1","eventId":"rec_jp_001"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Event already liked", body["message"])
	assert.Equal(t, true, body["liked"])
}

func TestCreateLikeMissingFields(t *testing.T) {
	svc := new(mockService)
	r := likesRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/likes", strings.NewReader(`{"userId":"u1"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "LikeEvent", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetLikesLikedCheck(t *testing.T) {
	svc := new(mockService)
	r := likesRouter(svc)

	svc.On("IsLiked", mock.Anything, "u1", "rec_jp_001").Return(true, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/likes?userId=u1&eventId=rec_jp_001", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["liked"])
}

func TestGetLikesByUserEmptyListNotNull(t *testing.T) {
	svc := new(mockService)
	r := likesRouter(svc)

	svc.On("GetLikesByUser", mock.Anything, "u1").Return([]models.Like(nil), nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/likes?userId=u1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"likes":[]`)
}

func TestDeleteLikeMissingParams(t *testing.T) {
	svc := new(mockService)
	r := likesRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/likes?userId=u1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "UnlikeEvent", mock.Anything, mock.Anything, mock.Anything)
}

func TestDeleteLikeNotFound(t *testing.T) {
	svc := new(mockService)
	r := likesRouter(svc)

	svc.On("UnlikeEvent", mock.Anything, "u1", "never-liked").Return(models.ErrNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/likes?userId=u1&eventId=never-liked", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Like not found")
}

func TestDeleteLikeSuccess(t *testing.T) {
	svc := new(mockService)
	r := likesRouter(svc)

	svc.On("UnlikeEvent", mock.Anything, "u1", "rec_jp_001").Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/likes?userId=u1&eventId=rec_jp_001", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["liked"])
}
