package storage

import (
	"bufio"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/aratama/magiacircle/internal/core/types"
	"github.com/aratama/magiacircle/internal/domain"
)

func (s *ReplayService) Load(path string) (*domain.ReplaySession, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return readBinary(bufio.NewReader(f))
}

func readBinary(r io.Reader) (*domain.ReplaySession, error) {
	// 1. Читаем заголовок целиком
	var header ReplayFileHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	// Валидация
	if string(header.Magic[:]) != MagicHeader {
		return nil, fmt.Errorf("%w: magic %q", ErrInvalidReplay, header.Magic[:])
	}
	if header.Version != Version1 {
		return nil, fmt.Errorf("%w: unsupported version %d (expected %d)", ErrInvalidReplay, header.Version, Version1)
	}
	if header.ActionCount < 0 {
		return nil, fmt.Errorf("%w: negative action count", ErrInvalidReplay)
	}

	name := make([]byte, header.NameLen)
	if _, err := io.ReadFull(r, name); err != nil {
		return nil, fmt.Errorf("failed to read player name: %w", err)
	}

	session := &domain.ReplaySession{
		Seed:       header.Seed,
		Timestamp:  header.Timestamp,
		Level:      domain.NextLevel{Kind: domain.NextLevelKind(header.LevelKind), Index: int(header.LevelIndex)},
		PlayerName: string(name),
		Actions:    make([]domain.ReplayAction, header.ActionCount),
	}

	// 2. Читаем Actions
	for i := range session.Actions {
		var ah ActionHeader
		if err := binary.Read(r, binary.LittleEndian, &ah); err != nil {
			return nil, fmt.Errorf("action %d: %w", i, err)
		}

		act := domain.ReplayAction{
			Tick:    int(ah.Tick),
			Action:  domain.ActionType(ah.ActionType),
			Token:   types.EntityID(ah.Token),
			Payload: json.RawMessage{},
		}
		if ah.PayloadLen > 0 {
			act.Payload = make([]byte, ah.PayloadLen)
			if _, err := io.ReadFull(r, act.Payload); err != nil {
				return nil, fmt.Errorf("action %d payload: %w", i, err)
			}
		}

		session.Actions[i] = act
	}

	return session, nil
}
