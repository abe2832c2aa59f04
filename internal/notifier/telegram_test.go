package notifier

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func newTestNotifier(baseURL string) *TelegramNotifier {
	n := NewTelegramNotifier("test-token", "42", "")
	n.BaseURL = baseURL
	return n
}

func TestTelegramSendMessageShape(t *testing.T) {
	var gotPath string
	var gotPayload map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&gotPayload); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	n := newTestNotifier(srv.URL)
	if err := n.Send(context.Background(), "Price Alert", "Bitcoin reached $50,000"); err != nil {
		t.Fatalf("send: %v", err)
	}

	if gotPath != "/bottest-token/sendMessage" {
		t.Fatalf("path = %q", gotPath)
	}
	if gotPayload["chat_id"] != "42" {
		t.Fatalf("chat_id = %q", gotPayload["chat_id"])
	}
	if gotPayload["parse_mode"] != "HTML" {
		t.Fatalf("parse_mode = %q", gotPayload["parse_mode"])
	}
	if !strings.HasPrefix(gotPayload["text"], "<b>Price Alert</b>\n") {
		t.Fatalf("text = %q, want bold title prefix", gotPayload["text"])
	}
}

func TestTelegramSendErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "too many requests", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	n := newTestNotifier(srv.URL)
	if err := n.Send(context.Background(), "t", "b"); err == nil {
		t.Fatal("expected error on non-200 status")
	}
}

func TestTelegramRetryRecovers(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			http.Error(w, "flaky", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	n := newTestNotifier(srv.URL)
	if err := n.SendWithRetry(context.Background(), "t", "b", 2); err != nil {
		t.Fatalf("retry: %v", err)
	}
	if attempts != 2 {
		t.Fatalf("attempts = %d, want 2", attempts)
	}
}

func TestTelegramRetryStopsOnCancel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	n := newTestNotifier(srv.URL)
	start := time.Now()
	err := n.SendWithRetry(ctx, "t", "b", 5)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("cancelled retry took %v, backoff should not run", elapsed)
	}
}
