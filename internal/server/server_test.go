package server

import (
	"encoding/json"
	"io"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/aratama/magiacircle/internal/domain"
	"github.com/aratama/magiacircle/internal/engine"
	"github.com/aratama/magiacircle/internal/version"
	"github.com/aratama/magiacircle/pkg/api"
	"github.com/aratama/magiacircle/pkg/dungeon"
	"github.com/aratama/magiacircle/pkg/logger"
	"github.com/gorilla/websocket"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func newTestServer(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()

	cfg := engine.NewConfig()
	cfg.Seed = 7
	cfg.Levels = 2

	pal := dungeon.DefaultPalette()
	atlas := dungeon.GenerateAtlas(rand.New(rand.NewSource(cfg.Seed)), cfg.Levels, pal)

	session, err := engine.NewSession(cfg, atlas, pal)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}

	srv := New(session, "0")
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)
	return srv, ts
}

func get(t *testing.T, url string) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestHealth(t *testing.T) {
	_, ts := newTestServer(t)

	resp := get(t, ts.URL+"/health")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if string(body) != "ok" {
		t.Errorf("body = %q", body)
	}
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("CORS header = %q", got)
	}
}

func TestVersion(t *testing.T) {
	_, ts := newTestServer(t)

	resp := get(t, ts.URL+"/version")
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type = %q", ct)
	}

	var info version.VersionInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if info.GoVersion == "" {
		t.Error("go version is empty")
	}
}

func TestHealthRejectsPost(t *testing.T) {
	_, ts := newTestServer(t)

	resp, err := http.Post(ts.URL+"/health", "text/plain", strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", resp.StatusCode)
	}
}

func TestDebugLevel(t *testing.T) {
	srv, ts := newTestServer(t)

	var dump LevelDump
	if err := json.NewDecoder(get(t, ts.URL+"/debug/level").Body).Decode(&dump); err != nil {
		t.Fatalf("decode: %v", err)
	}

	var height, width int
	srv.Session.View(func(w *domain.GameWorld) {
		height, width = w.Map.Height(), w.Map.Width()
	})

	if dump.Slice != domain.DefaultLevelSlice {
		t.Errorf("slice = %q", dump.Slice)
	}
	if len(dump.Rows) != height {
		t.Fatalf("rows = %d, want %d", len(dump.Rows), height)
	}
	for i, row := range dump.Rows {
		if len(row) != width {
			t.Fatalf("row %d width = %d, want %d", i, len(row), width)
		}
	}
	if !strings.Contains(strings.Join(dump.Rows, ""), "#") {
		t.Error("level has no walls")
	}
}

func TestDebugEntities(t *testing.T) {
	_, ts := newTestServer(t)

	var players []map[string]interface{}
	if err := json.NewDecoder(get(t, ts.URL+"/debug/entities/player").Body).Decode(&players); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(players) != 1 {
		t.Fatalf("players = %d, want 1", len(players))
	}
	if players[0]["kind"] != "PLAYER" {
		t.Errorf("kind = %v", players[0]["kind"])
	}

	var all []map[string]interface{}
	if err := json.NewDecoder(get(t, ts.URL+"/debug/entities").Body).Decode(&all); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(all) <= len(players) {
		t.Errorf("all entities = %d", len(all))
	}

	if resp := get(t, ts.URL+"/debug/entities/ghost"); resp.StatusCode != http.StatusBadRequest {
		t.Errorf("unknown kind status = %d, want 400", resp.StatusCode)
	}
}

func TestWebSocketSession(t *testing.T) {
	srv, ts := newTestServer(t)

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))

	// 1. Первый снимок - полный уровень
	var first api.ServerResponse
	if err := conn.ReadJSON(&first); err != nil {
		t.Fatalf("read first: %v", err)
	}
	if first.Type != "LEVEL" || len(first.Map) == 0 {
		t.Fatalf("first snapshot type = %q, tiles = %d", first.Type, len(first.Map))
	}
	if first.MyEntityID == "" {
		t.Error("no witch id in snapshot")
	}

	// 2. Команда попадает в очередь сессии
	if err := conn.WriteJSON(api.ClientCommand{Action: "WAIT"}); err != nil {
		t.Fatalf("write: %v", err)
	}
	deadline := time.Now().Add(5 * time.Second)
	for len(srv.Session.CommandChan) == 0 {
		if time.Now().After(deadline) {
			t.Fatal("command never reached the session")
		}
		time.Sleep(5 * time.Millisecond)
	}

	// 3. Тик рассылает снимок подписчикам
	srv.Session.Step()

	var next api.ServerResponse
	if err := conn.ReadJSON(&next); err != nil {
		t.Fatalf("read update: %v", err)
	}
	if next.Tick != 1 {
		t.Errorf("tick = %d, want 1", next.Tick)
	}
	if len(srv.Session.Replay.Actions) != 1 {
		t.Errorf("recorded actions = %d, want 1", len(srv.Session.Replay.Actions))
	}
}

func TestClient_ForwarderStopsWhenWriterGone(t *testing.T) {
	srv, _ := newTestServer(t)
	c := NewClient(srv.Session, nil)
	updates := srv.Session.Subscribe(c.ID)
	defer srv.Session.Hub.Unregister(c.ID)

	finished := make(chan struct{})
	go func() {
		c.forward(updates)
		close(finished)
	}()

	// writePump завершился: Send больше никто не читает
	c.stop()
	c.stop()
	for i := 0; i < cap(c.Send)+50; i++ {
		srv.Session.Step()
	}

	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatalf("forwarder blocked with %d/%d queued snapshots", len(c.Send), cap(c.Send))
	}
}

func TestClient_ForwarderClosesSendOnUnregister(t *testing.T) {
	srv, _ := newTestServer(t)
	c := NewClient(srv.Session, nil)
	go c.forward(srv.Session.Subscribe(c.ID))

	timeout := time.After(2 * time.Second)
	select {
	case first := <-c.Send:
		if first.Type != "LEVEL" {
			t.Errorf("first snapshot type = %q, want LEVEL", first.Type)
		}
	case <-timeout:
		t.Fatal("no initial snapshot")
	}

	srv.Session.Hub.Unregister(c.ID)
	for {
		select {
		case _, ok := <-c.Send:
			if !ok {
				return
			}
		case <-timeout:
			t.Fatal("Send was not closed after unregister")
		}
	}
}
