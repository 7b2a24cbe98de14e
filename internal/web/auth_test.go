package web

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/fleetdesk/fleetdesk/internal/db"
	"github.com/fleetdesk/fleetdesk/internal/store"
)

const testJWTSecret = "test-secret"

// setupWebServer starts the page server with one registered agent.
func setupWebServer(t *testing.T) *httptest.Server {
	t.Helper()
	database := db.NewTestDB(t)

	hash, _ := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if _, err := store.CreateUser(context.Background(), database, "agent@example.com", string(hash), true); err != nil {
		t.Fatalf("creating test user: %v", err)
	}

	router, err := NewRouter(database, testJWTSecret)
	if err != nil {
		t.Fatalf("creating router: %v", err)
	}

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

// noRedirectClient returns responses as-is so redirects can be asserted.
func noRedirectClient() *http.Client {
	return &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func tokenCookie(resp *http.Response) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == "token" {
			return c
		}
	}
	return nil
}

func TestAppRedirectsWhenUnauthenticated(t *testing.T) {
	server := setupWebServer(t)
	client := noRedirectClient()

	resp, err := client.Get(server.URL + "/app")
	if err != nil {
		t.Fatalf("GET /app: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected 303 without a session, got %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/" {
		t.Errorf("expected redirect to /, got %q", loc)
	}
}

func TestLoginBadCredentials(t *testing.T) {
	server := setupWebServer(t)
	client := noRedirectClient()

	form := url.Values{"email": {"agent@example.com"}, "password": {"wrong"}}
	resp, err := client.PostForm(server.URL+"/login", form)
	if err != nil {
		t.Fatalf("POST /login: %v", err)
	}
	defer resp.Body.Close()

	// The form re-renders with the inline message; no navigation happens.
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 re-render, got %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "Email or Password are incorrect") {
		t.Error("expected inline credentials message in response")
	}
	if c := tokenCookie(resp); c != nil && c.Value != "" {
		t.Errorf("expected no session cookie, got %q", c.Value)
	}
}

func TestLoginSetsSessionAndLogoutEndsIt(t *testing.T) {
	server := setupWebServer(t)
	client := noRedirectClient()

	form := url.Values{"email": {"agent@example.com"}, "password": {"password"}}
	resp, err := client.PostForm(server.URL+"/login", form)
	if err != nil {
		t.Fatalf("POST /login: %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected 303 after login, got %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/app" {
		t.Errorf("expected redirect to /app, got %q", loc)
	}
	cookie := tokenCookie(resp)
	if cookie == nil || cookie.Value == "" {
		t.Fatal("expected a session cookie after login")
	}

	// The session works.
	req, _ := http.NewRequest("GET", server.URL+"/app", nil)
	req.AddCookie(cookie)
	resp, err = client.Do(req)
	if err != nil {
		t.Fatalf("GET /app: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 with session, got %d", resp.StatusCode)
	}

	// Log out with the same cookie.
	req, _ = http.NewRequest("POST", server.URL+"/logout", nil)
	req.AddCookie(cookie)
	resp, err = client.Do(req)
	if err != nil {
		t.Fatalf("POST /logout: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected 303 after logout, got %d", resp.StatusCode)
	}

	// A retained copy of the cookie must no longer be a session.
	req, _ = http.NewRequest("GET", server.URL+"/app", nil)
	req.AddCookie(cookie)
	resp, err = client.Do(req)
	if err != nil {
		t.Fatalf("GET /app after logout: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected 303 for logged-out session, got %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/" {
		t.Errorf("expected redirect to /, got %q", loc)
	}
}
