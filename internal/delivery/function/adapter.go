// Package function serves the API behind a serverless function trigger. The
// trigger delivers one Event per call and expects an Envelope back.
package function

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"
)

type Event struct {
	HTTPMethod            string            `json:"httpMethod"`
	Path                  string            `json:"path"`
	QueryStringParameters map[string]string `json:"queryStringParameters"`
	Headers               map[string]string `json:"headers"`
	Body                  string            `json:"body"`
	IsBase64Encoded       bool              `json:"isBase64Encoded"`
}

type Envelope struct {
	StatusCode      int               `json:"statusCode"`
	Headers         map[string]string `json:"headers"`
	Body            string            `json:"body"`
	IsBase64Encoded bool              `json:"isBase64Encoded"`
}

type Adapter struct {
	handler http.Handler
	log     *logrus.Logger
}

func NewAdapter(handler http.Handler, log *logrus.Logger) *Adapter {
	return &Adapter{
		handler: handler,
		log:     log,
	}
}

// Invoke runs event through the HTTP handler and captures the response.
func (a *Adapter) Invoke(ctx context.Context, event Event) (*Envelope, error) {
	req, err := a.toRequest(ctx, event)
	if err != nil {
		return nil, err
	}

	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)

	headers := make(map[string]string, len(rec.Header()))
	for key := range rec.Header() {
		headers[key] = rec.Header().Get(key)
	}

	return &Envelope{
		StatusCode:      rec.Code,
		Headers:         headers,
		Body:            rec.Body.String(),
		IsBase64Encoded: false,
	}, nil
}

// ErrorEnvelope reports err as a 500 when no handler could be built to serve
// the event.
func ErrorEnvelope(err error) *Envelope {
	body, _ := json.Marshal(map[string]string{"error": err.Error()})
	return &Envelope{
		StatusCode: http.StatusInternalServerError,
		Headers: map[string]string{
			"Content-Type":                "application/json",
			"Access-Control-Allow-Origin": "*",
		},
		Body: string(body),
	}
}

func (a *Adapter) toRequest(ctx context.Context, event Event) (*http.Request, error) {
	method := event.HTTPMethod
	if method == "" {
		method = http.MethodGet
	}

	path := event.Path
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	query := url.Values{}
	for key, value := range event.QueryStringParameters {
		query.Set(key, value)
	}

	body := event.Body
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			// An undecodable body is treated like a malformed one.
			a.log.Warnf("Failed to decode base64 body: %+v", err)
			decoded = nil
		}
		body = string(decoded)
	}

	target := (&url.URL{Path: path, RawQuery: query.Encode()}).String()
	req, err := http.NewRequestWithContext(ctx, method, target, strings.NewReader(body))
	if err != nil {
		return nil, err
	}

	for key, value := range event.Headers {
		req.Header.Set(key, value)
	}

	return req, nil
}
