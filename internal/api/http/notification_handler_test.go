package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	api "github.com/rubentalstra/BAK/internal/api/http"
	"github.com/rubentalstra/BAK/internal/domain"
)

func TestNotificationHandler_HandleList(t *testing.T) {
	uid := "user-1"

	t.Run("Unauthenticated", func(t *testing.T) {
		mockNote := new(MockNotificationService)
		mockIdentity := new(MockIdentityService)
		handler := api.NewNotificationHandler(mockNote, mockIdentity)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/notifications", nil)
		rec := httptest.NewRecorder()
		handler.HandleList(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		mockNote.AssertNotCalled(t, "GetNotifications")
	})

	t.Run("DefaultsPagination", func(t *testing.T) {
		mockNote := new(MockNotificationService)
		mockIdentity := new(MockIdentityService)
		handler := api.NewNotificationHandler(mockNote, mockIdentity)

		mockIdentity.On("VerifyToken", mock.Anything, "token").Return(uid, nil).Once()
		mockNote.On("GetNotifications", mock.Anything, uid, int32(1), int32(20)).
			Return([]domain.Notification{{ID: 1, UserID: uid, Title: "Association Request Approved"}}, int32(1), nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/notifications", nil)
		req.Header.Set("Authorization", "Bearer token")
		rec := httptest.NewRecorder()
		handler.HandleList(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp struct {
			Notifications []domain.Notification `json:"notifications"`
			Total         int32                 `json:"total"`
		}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, int32(1), resp.Total)
		assert.Len(t, resp.Notifications, 1)
		mockNote.AssertExpectations(t)
	})

	t.Run("CustomPagination", func(t *testing.T) {
		mockNote := new(MockNotificationService)
		mockIdentity := new(MockIdentityService)
		handler := api.NewNotificationHandler(mockNote, mockIdentity)

		mockIdentity.On("VerifyToken", mock.Anything, "token").Return(uid, nil).Once()
		mockNote.On("GetNotifications", mock.Anything, uid, int32(3), int32(50)).
			Return([]domain.Notification{}, int32(0), nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/notifications?page=3&page_size=50", nil)
		req.Header.Set("Authorization", "Bearer token")
		rec := httptest.NewRecorder()
		handler.HandleList(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		mockNote.AssertExpectations(t)
	})
}

func TestNotificationHandler_HandleMarkAsRead(t *testing.T) {
	uid := "user-1"

	newMarkAsReadRequest := func(id string) *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/notifications/"+id+"/read", nil)
		req.Header.Set("Authorization", "Bearer token")
		return mux.SetURLVars(req, map[string]string{"id": id})
	}

	t.Run("Success", func(t *testing.T) {
		mockNote := new(MockNotificationService)
		mockIdentity := new(MockIdentityService)
		handler := api.NewNotificationHandler(mockNote, mockIdentity)

		mockIdentity.On("VerifyToken", mock.Anything, "token").Return(uid, nil).Once()
		mockNote.On("MarkAsRead", mock.Anything, uid, int64(7)).Return(nil).Once()

		rec := httptest.NewRecorder()
		handler.HandleMarkAsRead(rec, newMarkAsReadRequest("7"))

		assert.Equal(t, http.StatusOK, rec.Code)
		mockNote.AssertExpectations(t)
	})

	t.Run("InvalidID", func(t *testing.T) {
		mockNote := new(MockNotificationService)
		mockIdentity := new(MockIdentityService)
		handler := api.NewNotificationHandler(mockNote, mockIdentity)

		mockIdentity.On("VerifyToken", mock.Anything, "token").Return(uid, nil).Once()

		rec := httptest.NewRecorder()
		handler.HandleMarkAsRead(rec, newMarkAsReadRequest("abc"))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockNote.AssertNotCalled(t, "MarkAsRead")
	})

	t.Run("NotOwned", func(t *testing.T) {
		mockNote := new(MockNotificationService)
		mockIdentity := new(MockIdentityService)
		handler := api.NewNotificationHandler(mockNote, mockIdentity)

		mockIdentity.On("VerifyToken", mock.Anything, "token").Return(uid, nil).Once()
		mockNote.On("MarkAsRead", mock.Anything, uid, int64(9)).Return(assert.AnError).Once()

		rec := httptest.NewRecorder()
		handler.HandleMarkAsRead(rec, newMarkAsReadRequest("9"))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
