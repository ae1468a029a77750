package api

import (
	"bytes"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jrient/text-game/internal/catalog"
	"github.com/jrient/text-game/internal/engine"
	"github.com/jrient/text-game/internal/game"
	"github.com/jrient/text-game/internal/service"
	"github.com/jrient/text-game/internal/storage"
)

type memStore struct {
	games map[string]*storage.GameRecord
	runs  []*storage.RunRecord
}

func newMemStore() *memStore {
	return &memStore{games: map[string]*storage.GameRecord{}}
}

func (m *memStore) SaveGame(rec *storage.GameRecord) error {
	cp := *rec
	m.games[rec.GameID] = &cp
	return nil
}

func (m *memStore) GetGame(gameID string) (*storage.GameRecord, error) {
	if rec, ok := m.games[gameID]; ok {
		cp := *rec
		return &cp, nil
	}
	return nil, nil
}

func (m *memStore) DeleteGame(gameID string) error {
	delete(m.games, gameID)
	return nil
}

func (m *memStore) ActiveGames(since time.Time, limit int) ([]storage.ActiveGame, error) {
	return nil, nil
}

func (m *memStore) CleanupStale(before time.Time) (int64, error) { return 0, nil }

func (m *memStore) RecordRun(rec *storage.RunRecord) error {
	m.runs = append(m.runs, rec)
	return nil
}

func (m *memStore) Leaderboard(limit int) ([]storage.RunRecord, error) {
	var out []storage.RunRecord
	for _, r := range m.runs {
		out = append(out, *r)
	}
	return out, nil
}

func (m *memStore) Stats(activeSince time.Time) (*storage.StatsSummary, error) {
	return &storage.StatsSummary{TotalRuns: len(m.runs)}, nil
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	store := newMemStore()
	deps := service.Deps{
		Store:    store,
		Recorder: store,
		Engine:   engine.New(catalog.New(), rand.New(rand.NewSource(1))),
	}
	return NewHandler(deps).Router()
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createGame(t *testing.T, r *gin.Engine) *game.GameState {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/game/new", map[string]interface{}{
		"character":   "warrior",
		"player_name": "Tester",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create game: status %d body %s", w.Code, w.Body.String())
	}
	var gs game.GameState
	if err := json.Unmarshal(w.Body.Bytes(), &gs); err != nil {
		t.Fatalf("decode state: %v", err)
	}
	return &gs
}

func TestCreateAndGetGame(t *testing.T) {
	r := newTestRouter()
	gs := createGame(t, r)

	w := doJSON(t, r, http.MethodGet, "/api/game/"+gs.GameID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get game: status %d", w.Code)
	}
	var got game.GameState
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.GameID != gs.GameID || got.Phase != game.PhaseMap {
		t.Fatalf("state mismatch: %+v", got)
	}
}

func TestGetGameMissingIs404(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodGet, "/api/game/nope", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["kind"] != "not_found" {
		t.Fatalf("kind = %v, want not_found", body["kind"])
	}
}

func TestCreateGameUnknownCharacterIs404(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/game/new", map[string]interface{}{
		"character": "bard",
	})
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestPlayCardOutsideCombatIs409(t *testing.T) {
	r := newTestRouter()
	gs := createGame(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/game/"+gs.GameID+"/play-card", map[string]interface{}{
		"card_index":   0,
		"target_index": 0,
	})
	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", w.Code)
	}
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["kind"] != "invalid_phase" {
		t.Fatalf("kind = %v, want invalid_phase", body["kind"])
	}
}

func TestSelectNodeUnreachableIs400(t *testing.T) {
	r := newTestRouter()
	gs := createGame(t, r)

	var unreachable string
	for id, node := range gs.Map.Nodes {
		if node.Floor > 0 {
			unreachable = id
			break
		}
	}

	w := doJSON(t, r, http.MethodPost, "/api/game/"+gs.GameID+"/node", map[string]interface{}{
		"node_id": unreachable,
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestSelectNodeAdvancesRun(t *testing.T) {
	r := newTestRouter()
	gs := createGame(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/game/"+gs.GameID+"/node", map[string]interface{}{
		"node_id": gs.Map.AvailableNodes[0],
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body %s", w.Code, w.Body.String())
	}
	var got game.GameState
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Phase != game.PhaseCombat || got.Combat == nil {
		t.Fatalf("phase = %v, want combat", got.Phase)
	}
}

func TestMalformedBodyIs400(t *testing.T) {
	r := newTestRouter()
	gs := createGame(t, r)

	req := httptest.NewRequest(http.MethodPost, "/api/game/"+gs.GameID+"/node", bytes.NewBufferString("{"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestCharactersAndLeaderboard(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodGet, "/api/characters", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("characters: status %d", w.Code)
	}
	var chars map[string][]catalog.Character
	if err := json.Unmarshal(w.Body.Bytes(), &chars); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(chars["characters"]) != 3 {
		t.Fatalf("characters = %d, want 3", len(chars["characters"]))
	}

	w = doJSON(t, r, http.MethodGet, "/api/leaderboard?limit=5", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("leaderboard: status %d", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, "/api/stats", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("stats: status %d", w.Code)
	}
}

func TestAbandonViaAPI(t *testing.T) {
	r := newTestRouter()
	gs := createGame(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/game/"+gs.GameID+"/abandon", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("abandon: status %d body %s", w.Code, w.Body.String())
	}
	var got game.GameState
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Phase != game.PhaseGameOver {
		t.Fatalf("phase = %v, want game_over", got.Phase)
	}

	w = doJSON(t, r, http.MethodPost, "/api/game/"+gs.GameID+"/abandon", nil)
	if w.Code != http.StatusConflict {
		t.Fatalf("second abandon: status %d, want 409", w.Code)
	}
}
