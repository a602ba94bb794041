package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aratama/magiacircle/internal/core/types"
	"github.com/aratama/magiacircle/internal/domain"
)

func sampleSession() *domain.ReplaySession {
	return &domain.ReplaySession{
		Seed:       -42,
		Level:      domain.LevelIndex(3),
		PlayerName: "ведьма",
		Timestamp:  1700000000,
		Actions: []domain.ReplayAction{
			{Tick: 0, Token: types.PackEntityID(5, 1, 1), Action: domain.ActionInit, Payload: json.RawMessage(`{"name":"ведьма"}`)},
			{Tick: 12, Token: types.PackEntityID(5, 1, 1), Action: domain.ActionCast, Payload: json.RawMessage(`{"wand":0,"angle":1.5}`)},
			{Tick: 13, Action: domain.ActionWait},
		},
	}
}

func TestReplay_BinaryRoundTrip(t *testing.T) {
	src := sampleSession()

	var buf bytes.Buffer
	if err := writeBinary(&buf, src); err != nil {
		t.Fatalf("writeBinary: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte(MagicHeader)) {
		t.Fatalf("File must start with %s", MagicHeader)
	}

	got, err := readBinary(&buf)
	if err != nil {
		t.Fatalf("readBinary: %v", err)
	}

	if got.Seed != src.Seed || got.Timestamp != src.Timestamp {
		t.Errorf("Header mismatch: %+v", got)
	}
	if got.Level != src.Level {
		t.Errorf("Level = %v, want %v", got.Level, src.Level)
	}
	if got.PlayerName != src.PlayerName {
		t.Errorf("PlayerName = %q, want %q", got.PlayerName, src.PlayerName)
	}
	if len(got.Actions) != len(src.Actions) {
		t.Fatalf("Got %d actions, want %d", len(got.Actions), len(src.Actions))
	}
	for i, want := range src.Actions {
		a := got.Actions[i]
		if a.Tick != want.Tick || a.Action != want.Action || a.Token != want.Token {
			t.Errorf("Action %d = %+v, want %+v", i, a, want)
		}
		if !bytes.Equal(a.Payload, want.Payload) {
			t.Errorf("Action %d payload = %s, want %s", i, a.Payload, want.Payload)
		}
	}
}

func TestReplay_RejectsForeignFiles(t *testing.T) {
	var buf bytes.Buffer
	if err := writeBinary(&buf, sampleSession()); err != nil {
		t.Fatal(err)
	}
	data := buf.Bytes()
	copy(data, "CDRP")

	if _, err := readBinary(bytes.NewReader(data)); !errors.Is(err, ErrInvalidReplay) {
		t.Errorf("Expected ErrInvalidReplay, got %v", err)
	}
}

func TestReplay_TruncatedFile(t *testing.T) {
	var buf bytes.Buffer
	if err := writeBinary(&buf, sampleSession()); err != nil {
		t.Fatal(err)
	}
	data := buf.Bytes()[:buf.Len()-5]

	if _, err := readBinary(bytes.NewReader(data)); err == nil {
		t.Error("Expected error for truncated replay")
	}
}

func TestReplay_LongNameRejected(t *testing.T) {
	s := sampleSession()
	s.PlayerName = strings.Repeat("x", 256)

	if err := writeBinary(&bytes.Buffer{}, s); err == nil {
		t.Error("Expected error for a name longer than 255 bytes")
	}
}

func TestReplayService_SaveAndLoad(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "replays")
	svc := NewReplayService(dir)

	path, err := svc.Save(sampleSession())
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if filepath.Ext(path) != replayExt {
		t.Errorf("Unexpected extension in %s", path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("Replay file missing: %v", err)
	}

	got, err := svc.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got.Actions) != 3 || got.PlayerName != "ведьма" {
		t.Errorf("Loaded session mismatch: %+v", got)
	}
}
