// Command invoke reads one function event from stdin, serves it and prints
// the response envelope. Failures before the handler runs are printed as a
// 500 envelope as well.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"clinic-registry/cmd/bootstrap"
	"clinic-registry/internal/delivery/function"

	"github.com/sirupsen/logrus"
)

func main() {
	// stdout carries only the envelope.
	logrus.SetOutput(os.Stderr)

	envelope := invoke(context.Background())
	if err := json.NewEncoder(os.Stdout).Encode(envelope); err != nil {
		logrus.Fatalf("Failed to write envelope: %v", err)
	}
}

func invoke(ctx context.Context) *function.Envelope {
	var event function.Event
	if err := json.NewDecoder(os.Stdin).Decode(&event); err != nil {
		logrus.Errorf("Failed to decode event: %v", err)
		return function.ErrorEnvelope(fmt.Errorf("failed to decode event: %w", err))
	}

	app, err := bootstrap.New(bootstrap.WithLogOutput(os.Stderr))
	if err != nil {
		logrus.Errorf("Failed to initialize application: %v", err)
		return function.ErrorEnvelope(err)
	}
	defer app.Close()

	envelope, err := app.Invoke(ctx, event)
	if err != nil {
		logrus.Errorf("Failed to invoke: %v", err)
		return function.ErrorEnvelope(err)
	}

	return envelope
}
