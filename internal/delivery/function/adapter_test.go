package function

import (
	"context"
	"encoding/base64"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echoHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "text/plain")
		w.Header().Set("X-Method", r.Method)
		w.Header().Set("X-Endpoint", r.URL.Query().Get("endpoint"))
		w.Header().Set("X-Caller", r.Header.Get("X-User-Id"))
		w.WriteHeader(http.StatusAccepted)
		w.Write(body)
	})
}

func newTestAdapter() *Adapter {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewAdapter(echoHandler(), log)
}

func TestAdapter_Invoke(t *testing.T) {
	envelope, err := newTestAdapter().Invoke(context.Background(), Event{
		HTTPMethod:            http.MethodPost,
		Path:                  "/",
		QueryStringParameters: map[string]string{"endpoint": "patients"},
		Headers:               map[string]string{"X-User-Id": "user-3"},
		Body:                  `{"full_name":"Anna"}`,
	})

	require.NoError(t, err)
	assert.Equal(t, http.StatusAccepted, envelope.StatusCode)
	assert.Equal(t, `{"full_name":"Anna"}`, envelope.Body)
	assert.Equal(t, http.MethodPost, envelope.Headers["X-Method"])
	assert.Equal(t, "patients", envelope.Headers["X-Endpoint"])
	assert.Equal(t, "user-3", envelope.Headers["X-Caller"])
	assert.False(t, envelope.IsBase64Encoded)
}

func TestAdapter_DefaultsAndBase64(t *testing.T) {
	envelope, err := newTestAdapter().Invoke(context.Background(), Event{
		Body:            base64.StdEncoding.EncodeToString([]byte(`{"name":"ECG"}`)),
		IsBase64Encoded: true,
	})

	require.NoError(t, err)
	assert.Equal(t, http.MethodGet, envelope.Headers["X-Method"])
	assert.Equal(t, `{"name":"ECG"}`, envelope.Body)
}

func TestAdapter_UndecodableBodyIsDropped(t *testing.T) {
	envelope, err := newTestAdapter().Invoke(context.Background(), Event{
		HTTPMethod:      http.MethodPut,
		Body:            "***",
		IsBase64Encoded: true,
	})

	require.NoError(t, err)
	assert.Empty(t, envelope.Body)
}

func TestErrorEnvelope(t *testing.T) {
	envelope := ErrorEnvelope(errors.New(`failed to load config: either DATABASE_URL or DB_NAME must be set`))

	assert.Equal(t, http.StatusInternalServerError, envelope.StatusCode)
	assert.Equal(t, "application/json", envelope.Headers["Content-Type"])
	assert.Equal(t, "*", envelope.Headers["Access-Control-Allow-Origin"])
	assert.JSONEq(t, `{"error":"failed to load config: either DATABASE_URL or DB_NAME must be set"}`, envelope.Body)
	assert.False(t, envelope.IsBase64Encoded)
}
