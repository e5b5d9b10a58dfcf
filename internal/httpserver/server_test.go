package httpserver

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/robalobadob/target/go-server/internal/store"
	"github.com/robalobadob/target/go-server/internal/words"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	if err := words.Init(); err != nil {
		t.Fatalf("init words: %v", err)
	}
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	schema, err := os.ReadFile("../../sql/001_init.sql")
	if err != nil {
		t.Fatalf("read schema: %v", err)
	}
	if _, err := db.Exec(string(schema)); err != nil {
		t.Fatalf("apply schema: %v", err)
	}
	return New(store.NewMemoryStore(), db)
}

// client keeps cookies across requests, like a browser would.
type client struct {
	t       *testing.T
	srv     *Server
	cookies map[string]*http.Cookie
}

func (c *client) do(method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	c.t.Helper()
	if c.cookies == nil {
		c.cookies = make(map[string]*http.Cookie)
	}
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			c.t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	for _, ck := range c.cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	c.srv.Router().ServeHTTP(w, req)
	for _, ck := range w.Result().Cookies() {
		if ck.MaxAge < 0 || ck.Value == "" {
			delete(c.cookies, ck.Name)
		} else {
			c.cookies[ck.Name] = ck
		}
	}

	var out map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	return w, out
}

func TestHealth(t *testing.T) {
	c := &client{t: t, srv: newTestServer(t)}
	w, _ := c.do(http.MethodGet, "/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestGameFlow(t *testing.T) {
	c := &client{t: t, srv: newTestServer(t)}

	w, res := c.do(http.MethodPost, "/game/new", map[string]string{"letters": "testmings"})
	if w.Code != http.StatusOK {
		t.Fatalf("new game status = %d: %s", w.Code, w.Body.String())
	}
	gameID, _ := res["gameId"].(string)
	if gameID == "" {
		t.Fatal("expected gameId")
	}
	if res["middle"] != "m" {
		t.Fatalf("middle = %v, want m", res["middle"])
	}
	if n, _ := res["possibleCount"].(float64); n < 1 {
		t.Fatalf("possibleCount = %v, want at least 1", res["possibleCount"])
	}

	guesses := []struct {
		word string
		want string
	}{
		{"stem", "correct"},
		{"stem", "duplicate"},
		{"mings", "unknown"}, // rule-valid, not a dictionary word
		{"tests", "invalid"}, // no middle letter
		{"xyz", "invalid"},
	}
	for _, g := range guesses {
		w, res := c.do(http.MethodPost, "/game/guess", map[string]string{"gameId": gameID, "word": g.word})
		if w.Code != http.StatusOK {
			t.Fatalf("guess %q status = %d: %s", g.word, w.Code, w.Body.String())
		}
		if res["result"] != g.want {
			t.Fatalf("guess %q = %v, want %s", g.word, res["result"], g.want)
		}
	}

	w, res = c.do(http.MethodPost, "/game/finish", map[string]string{"gameId": gameID})
	if w.Code != http.StatusOK {
		t.Fatalf("finish status = %d: %s", w.Code, w.Body.String())
	}
	if n, _ := res["correct"].(float64); n != 1 {
		t.Fatalf("correct = %v, want 1", res["correct"])
	}
	unknown, _ := res["unknown"].([]any)
	if len(unknown) != 1 || unknown[0] != "mings" {
		t.Fatalf("unknown = %v, want [mings]", unknown)
	}
	missed, _ := res["missed"].([]any)
	if len(missed) == 0 {
		t.Fatalf("missed = %v, expected at least one forgotten word", missed)
	}

	// Guessing after finish is rejected.
	w, _ = c.do(http.MethodPost, "/game/guess", map[string]string{"gameId": gameID, "word": "mists"})
	if w.Code != http.StatusConflict {
		t.Fatalf("guess after finish status = %d, want %d", w.Code, http.StatusConflict)
	}
}

func TestNewGameRejectsBadLetters(t *testing.T) {
	c := &client{t: t, srv: newTestServer(t)}
	w, _ := c.do(http.MethodPost, "/game/new", map[string]string{"letters": "abc"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestGuessUnknownGame(t *testing.T) {
	c := &client{t: t, srv: newTestServer(t)}
	w, _ := c.do(http.MethodPost, "/game/guess", map[string]string{"gameId": "nope", "word": "stem"})
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestAuthAndStats(t *testing.T) {
	c := &client{t: t, srv: newTestServer(t)}

	w, _ := c.do(http.MethodPost, "/auth/signup", map[string]string{"username": "player_one", "password": "supersecret"})
	if w.Code != http.StatusOK {
		t.Fatalf("signup status = %d: %s", w.Code, w.Body.String())
	}

	w, me := c.do(http.MethodGet, "/auth/me", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("me status = %d: %s", w.Code, w.Body.String())
	}
	if me["username"] != "player_one" {
		t.Fatalf("me = %v", me)
	}

	// Play a full game while logged in; stats should record it.
	_, res := c.do(http.MethodPost, "/game/new", map[string]string{"letters": "testmings"})
	gameID, _ := res["gameId"].(string)
	_, _ = c.do(http.MethodPost, "/game/guess", map[string]string{"gameId": gameID, "word": "stem"})
	_, _ = c.do(http.MethodPost, "/game/finish", map[string]string{"gameId": gameID})

	w, stats := c.do(http.MethodGet, "/stats/me", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("stats status = %d: %s", w.Code, w.Body.String())
	}
	if n, _ := stats["gamesPlayed"].(float64); n != 1 {
		t.Fatalf("gamesPlayed = %v, want 1", stats["gamesPlayed"])
	}
	if n, _ := stats["totalFound"].(float64); n != 1 {
		t.Fatalf("totalFound = %v, want 1", stats["totalFound"])
	}

	w, mine := c.do(http.MethodGet, "/games/mine", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("games/mine status = %d", w.Code)
	}
	_ = mine

	// Logout clears the cookie; gated routes then reject.
	_, _ = c.do(http.MethodPost, "/auth/logout", nil)
	w, _ = c.do(http.MethodGet, "/stats/me", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("stats after logout status = %d, want 401", w.Code)
	}
}

func TestSignupValidation(t *testing.T) {
	c := &client{t: t, srv: newTestServer(t)}
	w, _ := c.do(http.MethodPost, "/auth/signup", map[string]string{"username": "ab", "password": "supersecret"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("short username status = %d, want 400", w.Code)
	}
	w, _ = c.do(http.MethodPost, "/auth/signup", map[string]string{"username": "player_two", "password": "short"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("short password status = %d, want 400", w.Code)
	}
}

func TestDailyFlow(t *testing.T) {
	t.Setenv("DAILY_SALT", "test_salt")
	c := &client{t: t, srv: newTestServer(t)}

	w, res := c.do(http.MethodPost, "/daily/new", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("daily/new status = %d: %s", w.Code, w.Body.String())
	}
	if played, _ := res["played"].(bool); played {
		t.Fatal("fresh user should not have played today")
	}
	gameID, _ := res["gameId"].(string)
	if gameID == "" {
		t.Fatal("expected gameId")
	}

	// Same session is reused while in progress.
	_, again := c.do(http.MethodPost, "/daily/new", nil)
	if again["gameId"] != gameID {
		t.Fatalf("expected session reuse, got %v vs %v", again["gameId"], gameID)
	}

	w, gres := c.do(http.MethodPost, "/daily/guess", map[string]string{"gameId": gameID, "word": "zzzz"})
	if w.Code != http.StatusOK {
		t.Fatalf("daily/guess status = %d: %s", w.Code, w.Body.String())
	}
	if gres["state"] != "in_progress" {
		t.Fatalf("state = %v", gres["state"])
	}

	w, fres := c.do(http.MethodPost, "/daily/finish", map[string]string{"gameId": gameID})
	if w.Code != http.StatusOK {
		t.Fatalf("daily/finish status = %d: %s", w.Code, w.Body.String())
	}
	if fres["date"] == "" {
		t.Fatal("expected date in finish response")
	}

	// Once finished, today is locked.
	_, locked := c.do(http.MethodPost, "/daily/new", nil)
	if played, _ := locked["played"].(bool); !played {
		t.Fatal("expected played=true after finishing today's game")
	}

	w, lb := c.do(http.MethodGet, "/daily/leaderboard", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("leaderboard status = %d", w.Code)
	}
	top, _ := lb["top"].([]any)
	if len(top) != 1 {
		t.Fatalf("leaderboard rows = %d, want 1", len(top))
	}
}
