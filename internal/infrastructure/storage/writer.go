package storage

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/aratama/magiacircle/internal/domain"
	"github.com/google/uuid"
)

const (
	MagicHeader string = `MCRP` // 4 байта
	Version1    uint32 = 1

	replayExt = ".mcrp"
)

var ErrInvalidReplay = errors.New("invalid replay file")

// ReplayFileHeader — это точное представление заголовка файла в памяти.
// binary.Write умеет писать это целиком, так как тут нет слайсов и строк, только массивы и числа.
type ReplayFileHeader struct {
	Magic       [4]byte // 4 байта
	Version     uint32  // 4 байта
	Seed        int64   // 8 байт
	Timestamp   int64   // 8 байт
	LevelKind   uint8   // 1 байт
	LevelIndex  int32   // 4 байта
	NameLen     uint8   // 1 байт
	ActionCount int32   // 4 байта
}

// ActionHeader — заголовок каждой записи действия.
type ActionHeader struct {
	Tick       int32  // 4
	ActionType uint8  // 1
	Token      uint64 // 8
	PayloadLen uint16 // 2
}

type ReplayService struct {
	SaveDir string
}

func NewReplayService(dir string) *ReplayService {
	return &ReplayService{SaveDir: dir}
}

// Save пишет реплей в новый файл и возвращает его путь.
func (s *ReplayService) Save(session *domain.ReplaySession) (string, error) {
	if err := os.MkdirAll(s.SaveDir, 0o755); err != nil {
		return "", fmt.Errorf("create replay dir: %w", err)
	}

	filename := fmt.Sprintf("replay_%d_%s%s", session.Seed, uuid.NewString(), replayExt)
	path := filepath.Join(s.SaveDir, filename)

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	if err := writeBinary(bw, session); err != nil {
		return "", err
	}
	return path, bw.Flush()
}

func writeBinary(w io.Writer, s *domain.ReplaySession) error {
	name := []byte(s.PlayerName)
	if len(name) > 255 {
		return fmt.Errorf("player name too long: %d", len(name))
	}

	// 1. Подготавливаем и пишем ГЛОБАЛЬНЫЙ ЗАГОЛОВОК
	header := ReplayFileHeader{
		Version:     Version1,
		Seed:        s.Seed,
		Timestamp:   s.Timestamp,
		LevelKind:   uint8(s.Level.Kind),
		LevelIndex:  int32(s.Level.Index),
		NameLen:     uint8(len(name)),
		ActionCount: int32(len(s.Actions)),
	}
	copy(header.Magic[:], MagicHeader)

	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if _, err := w.Write(name); err != nil {
		return err
	}

	// 2. Пишем действия
	for _, act := range s.Actions {
		payloadLen := len(act.Payload)
		if payloadLen > 65535 {
			return fmt.Errorf("payload too long: %d", payloadLen)
		}

		actHeader := ActionHeader{
			Tick:       int32(act.Tick),
			ActionType: uint8(act.Action),
			Token:      uint64(act.Token),
			PayloadLen: uint16(payloadLen),
		}
		if err := binary.Write(w, binary.LittleEndian, &actHeader); err != nil {
			return err
		}

		if payloadLen > 0 {
			if _, err := w.Write(act.Payload); err != nil {
				return err
			}
		}
	}

	return nil
}
