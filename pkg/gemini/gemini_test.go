package gemini_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"focusflow/pkg/gemini"
)

func TestNew_Validate(t *testing.T) {
	if _, err := gemini.New(gemini.Config{}); err == nil {
		t.Fatal("expected error for missing API key")
	}

	c, err := gemini.New(gemini.Config{APIKey: "k"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Model() != gemini.DefaultModel {
		t.Errorf("Model() = %q, want %q", c.Model(), gemini.DefaultModel)
	}
}

func TestGenerateContent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if r.URL.Query().Get("key") != "test-api-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req map[string]any
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		contents := req["contents"].([]any)
		text := contents[0].(map[string]any)["parts"].([]any)[0].(map[string]any)["text"].(string)
		if text == "cause_500" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		if text == "want_json" {
			gc, _ := req["generationConfig"].(map[string]any)
			if gc["responseMimeType"] != "application/json" {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"candidates": [
				{"content": {"parts": [{"text": "mocked response string"}], "role": "model"}}
			],
			"usageMetadata": {"promptTokenCount": 7, "candidatesTokenCount": 3, "totalTokenCount": 10}
		}`))
	}))
	defer ts.Close()

	client, err := gemini.New(gemini.Config{APIKey: "test-api-key", APIURL: ts.URL})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	t.Run("Success Flow", func(t *testing.T) {
		resp, err := client.GenerateContent(context.Background(), &gemini.Request{
			SystemInstruction: &gemini.Content{Parts: []gemini.Part{{Text: "be brief"}}},
			Messages:          []gemini.Content{{Role: "user", Parts: []gemini.Part{{Text: "Hello world"}}}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Content.Parts[0].Text != "mocked response string" {
			t.Errorf("unexpected content: %s", resp.Content.Parts[0].Text)
		}
		if resp.Usage.TotalTokens != 10 || resp.Usage.InputTokens != 7 {
			t.Errorf("unexpected usage: %+v", resp.Usage)
		}
	})

	t.Run("JSON Output Flow", func(t *testing.T) {
		_, err := client.GenerateContent(context.Background(), &gemini.Request{
			Messages:   []gemini.Content{{Role: "user", Parts: []gemini.Part{{Text: "want_json"}}}},
			JSONOutput: true,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("Server Error Flow", func(t *testing.T) {
		_, err := client.GenerateContent(context.Background(), &gemini.Request{
			Messages: []gemini.Content{{Role: "user", Parts: []gemini.Part{{Text: "cause_500"}}}},
		})
		var apiErr *gemini.APIError
		if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusInternalServerError {
			t.Fatalf("err = %v, want APIError 500", err)
		}
		if apiErr.RateLimited() || apiErr.BadRequest() {
			t.Errorf("500 classified as %+v", apiErr)
		}
	})
}
