package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

const (
	surveyID = "0b6d2a5e-3a1f-4c59-9a3e-7f0f1f4f2c11"
	teamID   = "5a0f3c2e-8d4b-4f6a-b1c2-3d4e5f6a7b8c"
	token    = "9c1e7b4a-2f3d-4e5a-8b6c-1d2e3f4a5b6c"
	empA     = "11111111-1111-4111-8111-111111111111"
	empB     = "22222222-2222-4222-8222-222222222222"
)

func doRequest(t *testing.T, app *fiber.App, method, target string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	payload := map[string]interface{}{}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &payload))
	}
	return resp, payload
}
