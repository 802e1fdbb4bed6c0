// Package ai bridges the POS to the Gemini streaming completion API. The
// bridge reads application state as context, never mutates it, and every
// request ends in exactly one terminal outcome: success with text, or one of
// the classified errors below.
package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"victory-pos/internal/models"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

const defaultModel = "gemini-2.0-flash-001"

var (
	ErrMissingKey    = errors.New("ai: api key not configured")
	ErrInvalidKey    = errors.New("ai: api key invalid or expired")
	ErrQuota         = errors.New("ai: quota exhausted")
	ErrEmptyResponse = errors.New("ai: provider returned no content")
)

// Assistant issues streaming completion requests scoped to a user's role.
type Assistant struct {
	apiKey string
	model  string
	now    func() time.Time
}

func NewAssistant(apiKey string) *Assistant {
	return &Assistant{apiKey: apiKey, model: defaultModel, now: time.Now}
}

// Ask streams the answer to a business question. Each text fragment is handed
// to onFragment as it arrives. Cancelling ctx aborts the upstream stream; no
// fragment is delivered for the missing-credential case. A stream that
// completes without ever producing text is a failure, not an empty success.
func (a *Assistant) Ask(ctx context.Context, question string, snap models.Snapshot, role models.Role, onFragment func(string)) error {
	if a.apiKey == "" {
		return ErrMissingKey
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(a.apiKey))
	if err != nil {
		return classify(err)
	}
	defer client.Close()

	model := client.GenerativeModel(a.model)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(BuildContext(role, snap, a.now()))},
	}
	model.SetTemperature(0.2)

	iter := model.GenerateContentStream(ctx, genai.Text(question))

	gotText := false
	for {
		resp, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return classify(err)
		}

		for _, cand := range resp.Candidates {
			if cand.Content == nil {
				continue
			}
			for _, part := range cand.Content.Parts {
				if txt, ok := part.(genai.Text); ok && txt != "" {
					gotText = true
					onFragment(string(txt))
				}
			}
		}
	}

	if !gotText {
		return ErrEmptyResponse
	}
	return nil
}

// classify folds provider failures into the error taxonomy. Anything not
// recognised stays a generic, wrapped network failure.
func classify(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case 400, 401, 403, 404:
			return fmt.Errorf("%w: %s", ErrInvalidKey, apiErr.Message)
		case 429:
			return fmt.Errorf("%w: %s", ErrQuota, apiErr.Message)
		}
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "API_KEY_INVALID"), strings.Contains(msg, "API key not valid"):
		return fmt.Errorf("%w: %v", ErrInvalidKey, err)
	case strings.Contains(msg, "RESOURCE_EXHAUSTED"):
		return fmt.Errorf("%w: %v", ErrQuota, err)
	}
	return fmt.Errorf("ai: request failed: %w", err)
}

// UserMessage maps a terminal error to the message shown to the operator.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, ErrMissingKey):
		return "AI service is not configured. Set GEMINI_API_KEY to enable the assistant."
	case errors.Is(err, ErrInvalidKey):
		return "The configured AI key is invalid or expired. Check the GEMINI_API_KEY value."
	case errors.Is(err, ErrQuota):
		return "AI quota is exhausted. Please try again later."
	case errors.Is(err, ErrEmptyResponse):
		return "The assistant gave no answer. Please rephrase your question and try again."
	default:
		return "Could not reach the AI service. Check your connection and try again."
	}
}
