package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/robalobadob/haunted-chessboard/internal/souls"
)

func newTestServer(t *testing.T, adminHash string) (*httptest.Server, *souls.SQLiteStore) {
	t.Helper()
	st, err := souls.OpenSQLiteStore(filepath.Join(t.TempDir(), "souls.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })

	srv := New(st, "test_secret", adminHash)
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)
	return ts, st
}

func TestHealthAndSouls(t *testing.T) {
	ts, st := newTestServer(t, "")

	res, err := http.Get(ts.URL + "/health")
	if err != nil {
		t.Fatalf("health: %v", err)
	}
	if res.StatusCode != http.StatusOK {
		t.Fatalf("health status = %d", res.StatusCode)
	}
	res.Body.Close()

	_ = st.Record(context.Background(), souls.NewEntry("Viewer Hero", 90))

	res, err = http.Get(ts.URL + "/souls")
	if err != nil {
		t.Fatalf("souls: %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("souls status = %d", res.StatusCode)
	}
	var got []souls.Entry
	if err := json.NewDecoder(res.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Viewer Hero" || got[0].Health != 90 {
		t.Fatalf("souls = %+v", got)
	}
}

func TestAdminDisabledWithoutHash(t *testing.T) {
	ts, _ := newTestServer(t, "")

	res, err := http.Post(ts.URL+"/admin/token", "application/json",
		bytes.NewBufferString(`{"password":"whatever"}`))
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusForbidden {
		t.Fatalf("token status = %d, want 403", res.StatusCode)
	}
}

func TestAdminTokenAndPurge(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("open sesame"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	ts, st := newTestServer(t, string(hash))
	_ = st.Record(context.Background(), souls.NewEntry("Doomed Hero", 10))

	// Wrong password is rejected.
	res, _ := http.Post(ts.URL+"/admin/token", "application/json",
		bytes.NewBufferString(`{"password":"wrong"}`))
	res.Body.Close()
	if res.StatusCode != http.StatusUnauthorized {
		t.Fatalf("wrong password status = %d, want 401", res.StatusCode)
	}

	// Right password yields a token.
	res, err = http.Post(ts.URL+"/admin/token", "application/json",
		bytes.NewBufferString(`{"password":"open sesame"}`))
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	var tok struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(res.Body).Decode(&tok); err != nil {
		t.Fatalf("decode token: %v", err)
	}
	res.Body.Close()
	if tok.Token == "" {
		t.Fatal("empty token")
	}

	// Purge without the token is unauthorized.
	res, _ = http.Post(ts.URL+"/admin/purge", "application/json", nil)
	res.Body.Close()
	if res.StatusCode != http.StatusUnauthorized {
		t.Fatalf("bare purge status = %d, want 401", res.StatusCode)
	}

	// Purge with the token empties the hall.
	req, _ := http.NewRequest(http.MethodPost, ts.URL+"/admin/purge", nil)
	req.Header.Set("Authorization", "Bearer "+tok.Token)
	res, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("purge: %v", err)
	}
	var purged map[string]int64
	if err := json.NewDecoder(res.Body).Decode(&purged); err != nil {
		t.Fatalf("decode purge: %v", err)
	}
	res.Body.Close()
	if purged["released"] != 1 {
		t.Fatalf("released = %d, want 1", purged["released"])
	}

	if top, _ := st.Top(context.Background(), 10); len(top) != 0 {
		t.Fatalf("hall not empty after purge: %v", top)
	}
}
