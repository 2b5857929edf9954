package discord

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"leetcode-sync/internal/domain/model"
)

func TestSendPostsEmbed(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode: %v", err)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	hook := NewWebhook(srv.URL, time.Second, nil)
	hook.now = func() time.Time { return time.Date(2026, time.October, 17, 9, 0, 0, 0, time.UTC) }

	err := hook.Send(context.Background(), model.Notification{
		Title:       "LeetCode sync",
		Description: "2 new submissions saved",
		Fields:      []model.NotificationField{{Name: "Written", Value: "2", Inline: true}},
		Footer:      "run 6f1c",
	})
	if err != nil {
		t.Fatalf("send: %v", err)
	}

	embeds, ok := got["embeds"].([]any)
	if !ok || len(embeds) != 1 {
		t.Fatalf("unexpected embeds: %v", got["embeds"])
	}
	embed := embeds[0].(map[string]any)
	if embed["title"] != "LeetCode sync" {
		t.Fatalf("title = %v", embed["title"])
	}
	if embed["timestamp"] != "2026-10-17T09:00:00Z" {
		t.Fatalf("timestamp = %v", embed["timestamp"])
	}
	if footer := embed["footer"].(map[string]any); footer["text"] != "run 6f1c" {
		t.Fatalf("footer = %v", footer)
	}
	fields := embed["fields"].([]any)
	if len(fields) != 1 || fields[0].(map[string]any)["value"] != "2" {
		t.Fatalf("unexpected fields: %v", fields)
	}
}

func TestBuildEmbedDefaultsAndLimits(t *testing.T) {
	hook := NewWebhook("http://example.invalid", time.Second, nil)
	hook.now = func() time.Time { return time.Unix(0, 0) }

	fields := make([]model.NotificationField, 30)
	for i := range fields {
		fields[i] = model.NotificationField{Name: "n", Value: strings.Repeat("v", 2000)}
	}

	got := hook.buildEmbed(model.Notification{Title: "t", Fields: fields})
	if got.Footer.Text != "leetcode-sync" {
		t.Fatalf("footer = %q", got.Footer.Text)
	}
	if len(got.Fields) != 25 {
		t.Fatalf("expected 25 fields, got %d", len(got.Fields))
	}
	if len(got.Fields[0].Value) != 1024 {
		t.Fatalf("field value length = %d", len(got.Fields[0].Value))
	}
}

func TestSendRejectsErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	err := NewWebhook(srv.URL, time.Second, nil).Send(context.Background(), model.Notification{Title: "x"})
	if err == nil || !strings.Contains(err.Error(), "status 400") {
		t.Fatalf("expected status error, got %v", err)
	}
}

func TestSendRequiresURL(t *testing.T) {
	if err := NewWebhook("", time.Second, nil).Send(context.Background(), model.Notification{}); err == nil {
		t.Fatal("expected error for empty webhook URL")
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Fatalf("truncate = %q", got)
	}
	if got := truncate(strings.Repeat("a", 20), 10); got != "aaaaaaa..." {
		t.Fatalf("truncate = %q", got)
	}
}
