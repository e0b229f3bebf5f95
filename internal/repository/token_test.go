package repository

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/reclaim-app/backend/internal/models"
	"github.com/reclaim-app/backend/pkg/supabase"
)

// captureStore records the auth header of each store request and answers
// with a single row so the repositories can decode a result.
func captureStore(t *testing.T, response string) (*supabase.Client, *string) {
	t.Helper()
	var lastAuth string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lastAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(response))
	}))
	t.Cleanup(server.Close)

	return supabase.NewClient(server.URL, "service-key"), &lastAuth
}

func TestUrgeCreateUsesUserToken(t *testing.T) {
	client, lastAuth := captureStore(t, `[{"id":"a1","user_id":"u1","intensity":5,"overcome":null,"created_at":"2026-08-15T10:00:00Z"}]`)
	repo := NewUrgeRepository(client)

	ctx := WithUserToken(context.Background(), "user-jwt")
	if _, err := repo.Create(ctx, &models.Urge{UserID: "u1", Intensity: 5, Outcome: models.OutcomePending}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if *lastAuth != "Bearer user-jwt" {
		t.Errorf("create ran as %q, want the caller's token", *lastAuth)
	}
}

func TestUrgeResolveUsesUserToken(t *testing.T) {
	client, lastAuth := captureStore(t, `[{"id":"a1","user_id":"u1","intensity":5,"overcome":true,"created_at":"2026-08-15T10:00:00Z"}]`)
	repo := NewUrgeRepository(client)

	ctx := WithUserToken(context.Background(), "user-jwt")
	if _, err := repo.Resolve(ctx, "a1", models.OutcomeResisted); err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if *lastAuth != "Bearer user-jwt" {
		t.Errorf("resolve ran as %q, want the caller's token", *lastAuth)
	}
}

func TestJournalUpsertUsesUserToken(t *testing.T) {
	client, lastAuth := captureStore(t, `[{"id":"j1","user_id":"u1","date":"2026-08-15","mood":4}]`)
	repo := NewJournalRepository(client)

	ctx := WithUserToken(context.Background(), "user-jwt")
	if _, err := repo.Upsert(ctx, &models.JournalEntry{UserID: "u1", Date: "2026-08-15", Mood: 4}); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if *lastAuth != "Bearer user-jwt" {
		t.Errorf("upsert ran as %q, want the caller's token", *lastAuth)
	}
}

// Calls without a user in the context fall back to the service role
func TestCreateWithoutTokenUsesServiceRole(t *testing.T) {
	client, lastAuth := captureStore(t, `[{"id":"a1","user_id":"u1","intensity":5,"overcome":null,"created_at":"2026-08-15T10:00:00Z"}]`)
	repo := NewUrgeRepository(client)

	if _, err := repo.Create(context.Background(), &models.Urge{UserID: "u1", Intensity: 5}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if *lastAuth != "Bearer service-key" {
		t.Errorf("unscoped create ran as %q, want the service role", *lastAuth)
	}
}
