package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	subscriberHTTP "github.com/allisson/mailinglist/internal/subscriber/http"
)

// RunRegisterSubscriber registers a subscriber through the same controller the
// HTTP endpoint uses and prints the resulting status and body. Any status other
// than 201 is returned as an error so the process exits non-zero.
func RunRegisterSubscriber(
	ctx context.Context,
	controller *subscriberHTTP.Controller,
	logger *slog.Logger,
	name string,
	email string,
	format string,
	io IOTuple,
) error {
	logger.Info("registering subscriber", slog.String("email", email))

	resp := controller.Handle(ctx, subscriberHTTP.Request{
		Body: map[string]any{
			"name":  name,
			"email": email,
		},
	})

	if err := writeRegisterResponse(resp, format, io); err != nil {
		return err
	}

	if resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("subscriber registration failed with status %d", resp.StatusCode)
	}

	logger.Info("subscriber registered successfully", slog.String("email", email))
	return nil
}

func writeRegisterResponse(resp subscriberHTTP.Response, format string, io IOTuple) error {
	if format == "json" {
		jsonBytes, err := json.MarshalIndent(map[string]any{
			"status_code": resp.StatusCode,
			"body":        resp.Body,
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal response: %w", err)
		}
		_, _ = fmt.Fprintln(io.Writer, string(jsonBytes))
		return nil
	}

	body, err := json.Marshal(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to marshal response body: %w", err)
	}
	_, _ = fmt.Fprintf(io.Writer, "Status: %d %s\n", resp.StatusCode, http.StatusText(resp.StatusCode))
	_, _ = fmt.Fprintf(io.Writer, "Body: %s\n", body)
	return nil
}
