// internal/httpserver/routes_daily.go
//
// HTTP routes for the "Daily Target" mode.
// Exposes four endpoints under /daily:
//   - POST /daily/new         → start today's game (creates or reuses session)
//   - POST /daily/guess       → submit a guess for today's board
//   - POST /daily/finish      → close the session and record the result
//   - GET  /daily/leaderboard → fetch top 20 results for today (or a given date)
//
// Each user can play once per day (enforced by DB + in-memory session).
// Sessions are held in memory for active play and persisted to DB on finish.
// The board is deterministic per date: the grid generator is seeded from
// HMAC(salt, date), so every player solves the same letters.

package httpserver

import (
	"encoding/json"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/robalobadob/target/go-server/internal/daily"
	"github.com/robalobadob/target/go-server/internal/game"
	"github.com/robalobadob/target/go-server/internal/grid"
	"github.com/robalobadob/target/go-server/internal/words"
)

// dailyServer wraps dependencies for /daily endpoints.
type dailyServer struct {
	srv      *Server
	store    *daily.Store
	salt     string
	sessions map[string]*dailySession // active sessions keyed by userID|date
	mu       sync.Mutex               // guards sessions
}

// dailySession holds transient in-memory state for an in-progress daily game.
type dailySession struct {
	UserID string
	Date   string
	Game   *game.Game
	Start  time.Time
}

// mountDaily registers all /daily routes.
func (s *Server) mountDaily(r chi.Router) {
	dd := &dailyServer{
		srv:      s,
		store:    daily.NewStore(s.db),
		salt:     getEnv("DAILY_SALT", "local_dev_salt"),
		sessions: make(map[string]*dailySession),
	}
	r.Route("/daily", func(r chi.Router) {
		r.Post("/new", dd.handleNew)
		r.Post("/guess", dd.handleGuess)
		r.Post("/finish", dd.handleFinish)
		r.Get("/leaderboard", dd.handleLeaderboard)
	})
}

// boardForNow returns today's date key and the deterministic board.
func (d *dailyServer) boardForNow() (date string, board grid.Grid) {
	now := time.Now().UTC()
	date = daily.DateKey(now)
	seed := daily.GridSeed(now, d.salt)
	return date, grid.NewRandom(rand.New(rand.NewSource(seed)))
}

// userIDWithAnon returns the authenticated user ID if logged in,
// otherwise ensures an anonymous ID via Server.ensureAnonID.
func (d *dailyServer) userIDWithAnon(w http.ResponseWriter, r *http.Request) string {
	if me, _ := r.Context().Value(ctxUserKey{}).(*authUser); me != nil {
		return me.ID
	}
	return d.srv.ensureAnonID(w, r)
}

// -----------------------------------------------------------------------------
// /daily/new

// dailyNewRes is returned by /daily/new.
type dailyNewRes struct {
	GameID        string    `json:"gameId"`
	Date          string    `json:"date"`
	Grid          [3]string `json:"grid"`
	Middle        string    `json:"middle"`
	PossibleCount int       `json:"possibleCount"`
	Played        bool      `json:"played"`
}

// handleNew creates or reuses a daily session for the current date.
// - If user already has a DB row for today → return Played=true.
// - Otherwise create/reuse an in-memory session and return the board.
func (d *dailyServer) handleNew(w http.ResponseWriter, r *http.Request) {
	uid := d.userIDWithAnon(w, r)
	date, board := d.boardForNow()

	// Check if already played (persisted in DB).
	if played, err := d.store.AlreadyPlayed(r.Context(), uid, date); err == nil && played {
		_ = json.NewEncoder(w).Encode(dailyNewRes{Date: date, Played: true})
		return
	}

	// Reuse or create session in memory.
	key := uid + "|" + date
	d.mu.Lock()
	sess, ok := d.sessions[key]
	if !ok {
		sess = &dailySession{
			UserID: uid,
			Date:   date,
			Game:   game.New(board, words.All()),
			Start:  time.Now(),
		}
		d.sessions[key] = sess
	}
	d.mu.Unlock()

	_ = json.NewEncoder(w).Encode(dailyNewRes{
		GameID:        sess.Game.ID,
		Date:          date,
		Grid:          board.Rows(),
		Middle:        string(board.Middle()),
		PossibleCount: len(sess.Game.Possible),
		Played:        false,
	})
}

// -----------------------------------------------------------------------------
// /daily/guess

// dailyGuessReq is the request payload for /daily/guess.
type dailyGuessReq struct {
	GameID string `json:"gameId"`
	Word   string `json:"word"`
}

// dailyGuessRes is the response payload for /daily/guess.
type dailyGuessRes struct {
	Result     game.GuessResult `json:"result"`
	FoundCount int              `json:"foundCount"`
	State      string           `json:"state"` // in_progress | locked
}

// handleGuess validates and applies a guess for today's daily session.
func (d *dailyServer) handleGuess(w http.ResponseWriter, r *http.Request) {
	uid := d.userIDWithAnon(w, r)

	var p dailyGuessReq
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	if p.GameID == "" {
		http.Error(w, `{"error":"invalid"}`, http.StatusBadRequest)
		return
	}

	date, _ := d.boardForNow()

	// Find session.
	key := uid + "|" + date
	d.mu.Lock()
	sess, ok := d.sessions[key]
	d.mu.Unlock()
	if !ok || sess.Game.ID != p.GameID {
		http.Error(w, `{"error":"no_session"}`, http.StatusConflict)
		return
	}

	res, err := sess.Game.ApplyGuess(p.Word)
	if err != nil {
		_ = json.NewEncoder(w).Encode(dailyGuessRes{Result: res, FoundCount: len(sess.Game.Found), State: "locked"})
		return
	}
	_ = json.NewEncoder(w).Encode(dailyGuessRes{Result: res, FoundCount: len(sess.Game.Found), State: "in_progress"})
}

// -----------------------------------------------------------------------------
// /daily/finish

// dailyFinishReq is the request payload for /daily/finish.
type dailyFinishReq struct {
	GameID string `json:"gameId"`
}

// dailyFinishRes is the response payload for /daily/finish.
type dailyFinishRes struct {
	Date    string   `json:"date"`
	Correct int      `json:"correct"`
	Missed  []string `json:"missed"`
	Unknown []string `json:"unknown"`
}

// handleFinish closes today's session and persists the result row.
func (d *dailyServer) handleFinish(w http.ResponseWriter, r *http.Request) {
	uid := d.userIDWithAnon(w, r)

	var p dailyFinishReq
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}

	date, _ := d.boardForNow()
	key := uid + "|" + date
	d.mu.Lock()
	sess, ok := d.sessions[key]
	if ok {
		delete(d.sessions, key)
	}
	d.mu.Unlock()
	if !ok || sess.Game.ID != p.GameID {
		http.Error(w, `{"error":"no_session"}`, http.StatusConflict)
		return
	}

	rep := sess.Game.Finish()
	elapsed := int(time.Since(sess.Start).Milliseconds())
	_ = d.store.InsertResult(r.Context(), daily.Result{
		UserID: uid, Date: date, Found: rep.Correct, Possible: len(rep.Possible), ElapsedMs: elapsed,
	})

	_ = json.NewEncoder(w).Encode(dailyFinishRes{
		Date:    date,
		Correct: rep.Correct,
		Missed:  rep.Missed,
		Unknown: rep.Unknown,
	})
}

// -----------------------------------------------------------------------------
// /daily/leaderboard

// lbRes is returned by /daily/leaderboard.
type lbRes struct {
	Date string        `json:"date"`
	Top  []daily.LBRow `json:"top"`
}

// handleLeaderboard returns the leaderboard for the given date (default today).
func (d *dailyServer) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date, _ = d.boardForNow()
	}
	rows, err := d.store.Leaderboard(r.Context(), date, 20)
	if err != nil {
		http.Error(w, `{"error":"server_error"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(lbRes{Date: date, Top: rows})
}
