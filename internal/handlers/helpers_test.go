package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"

	"fire-tracker/internal/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// newJSONContext builds an echo context for a request with an optional JSON body
func newJSONContext(e *echo.Echo, method, target string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	var payload []byte
	switch v := body.(type) {
	case nil:
	case string:
		payload = []byte(v)
	default:
		payload, _ = json.Marshal(v)
	}

	req := httptest.NewRequest(method, target, bytes.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// withUser sets the authenticated user the way RequireAuth does
func withUser(c echo.Context, userID uuid.UUID) echo.Context {
	c.Set("user_id", userID)
	return c
}

func decodeErrorCode(rec *httptest.ResponseRecorder) string {
	var resp errors.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		return ""
	}
	return string(resp.Error.Code)
}
