package engine

import (
	"fmt"
	"time"

	"github.com/aratama/magiacircle/pkg/api"
	"github.com/aratama/magiacircle/pkg/logger"
	"github.com/sirupsen/logrus"
)

// AddLog добавляет запись в игровой лог до следующего снимка
func (s *Session) AddLog(text, logType string) {
	s.logSeq++
	s.logs = append(s.logs, api.LogEntry{
		ID:        fmt.Sprintf("%d_%d", s.World.Tick, s.logSeq),
		Text:      text,
		Type:      logType,
		Timestamp: time.Now().UnixMilli(),
	})
	logger.Log.WithFields(logrus.Fields{
		"tick":      s.World.Tick,
		"component": "game_log",
		"log_type":  logType,
	}).Info(text)
}
