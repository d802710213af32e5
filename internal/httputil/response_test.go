package httputil

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
	return c, w
}

func TestInternalErrorResponse(t *testing.T) {
	resp := InternalErrorResponse()

	assert.Equal(t, "internal_error", resp.Error)
	assert.Equal(t, "An internal error occurred", resp.Message)
	assert.Empty(t, resp.Code)
}

func TestHandleBadRequestGin(t *testing.T) {
	t.Run("with logger", func(t *testing.T) {
		c, w := newTestContext()
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))

		HandleBadRequestGin(c, errors.New("invalid character 'x'"), logger)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"bad_request","message":"invalid character 'x'"}`, w.Body.String())
	})

	t.Run("nil logger", func(t *testing.T) {
		c, w := newTestContext()

		HandleBadRequestGin(c, errors.New("body must be a JSON object"), nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
