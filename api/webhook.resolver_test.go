package api

import (
	mock_repository "coinwatch/internal/repository/mocks"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func postWebhook(t *testing.T, handler ApiHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	handler.Router().ServeHTTP(w, req)
	return w
}

func Test_webhook(t *testing.T) {
	t.Run("registers the event's user id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		subscriberRepository := mock_repository.NewMockSubscriberRepository(ctrl)
		subscriberRepository.EXPECT().Register(gomock.Any(), "U1").Return(true, nil)

		handler := ApiHandler{SubscriberRepository: subscriberRepository}

		w := postWebhook(t, handler, `{"events":[{"source":{"userId":"U1"}}]}`)
		require.Equal(t, 200, w.Code)
		require.Equal(t, "OK", w.Body.String())
	})

	t.Run("registers every event in a batch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		subscriberRepository := mock_repository.NewMockSubscriberRepository(ctrl)
		subscriberRepository.EXPECT().Register(gomock.Any(), "U1").Return(false, nil)
		subscriberRepository.EXPECT().Register(gomock.Any(), "U2").Return(true, nil)

		handler := ApiHandler{SubscriberRepository: subscriberRepository}

		w := postWebhook(t, handler, `{"events":[{"source":{"userId":"U1"}},{"source":{"userId":"U2"}}]}`)
		require.Equal(t, 200, w.Code)
	})

	t.Run("acknowledges an empty body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		subscriberRepository := mock_repository.NewMockSubscriberRepository(ctrl)

		handler := ApiHandler{SubscriberRepository: subscriberRepository}

		w := postWebhook(t, handler, "")
		require.Equal(t, 200, w.Code)
		require.Equal(t, "OK", w.Body.String())
	})

	t.Run("acknowledges a malformed body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		subscriberRepository := mock_repository.NewMockSubscriberRepository(ctrl)

		handler := ApiHandler{SubscriberRepository: subscriberRepository}

		w := postWebhook(t, handler, `{"events": "not-an-array"`)
		require.Equal(t, 200, w.Code)
	})

	t.Run("skips events without a user id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		subscriberRepository := mock_repository.NewMockSubscriberRepository(ctrl)

		handler := ApiHandler{SubscriberRepository: subscriberRepository}

		w := postWebhook(t, handler, `{"events":[{"source":{}}]}`)
		require.Equal(t, 200, w.Code)
	})

	t.Run("acknowledges even when registration fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		subscriberRepository := mock_repository.NewMockSubscriberRepository(ctrl)
		subscriberRepository.EXPECT().Register(gomock.Any(), "U1").Return(false, fmt.Errorf("pool exhausted"))

		handler := ApiHandler{SubscriberRepository: subscriberRepository}

		w := postWebhook(t, handler, `{"events":[{"source":{"userId":"U1"}}]}`)
		require.Equal(t, 200, w.Code)
		require.Equal(t, "OK", w.Body.String())
	})
}
