package server

import (
	"net/http"
	"sync"
	"time"

	"github.com/aratama/magiacircle/internal/engine"
	"github.com/aratama/magiacircle/pkg/api"
	"github.com/aratama/magiacircle/pkg/logger"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Настройки WebSocket
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 1024
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Client - посредник между Websocket и сессией.
// Каждое подключение получает свой ID подписчика в хабе.
type Client struct {
	Session *engine.Session
	Conn    *websocket.Conn
	Send    chan api.ServerResponse
	ID      string

	// done закрывается, когда writePump завершился и Send больше никто не читает.
	done     chan struct{}
	stopOnce sync.Once

	log *logrus.Entry
}

func NewClient(session *engine.Session, conn *websocket.Conn) *Client {
	id := uuid.NewString()
	return &Client{
		Session: session,
		Conn:    conn,
		Send:    make(chan api.ServerResponse, 256),
		ID:      id,
		done:    make(chan struct{}),
		log:     logger.For("ws_client").WithField("client_id", id),
	}
}

// subscribe подписывает клиента на снимки. Первым приходит полный снимок,
// чтобы клиент нарисовал уровень, не дожидаясь следующей загрузки.
func (c *Client) subscribe() {
	go c.forward(c.Session.Subscribe(c.ID))
}

// forward перекладывает снимки из хаба в Send до отписки
// или до остановки writePump.
func (c *Client) forward(updates <-chan api.ServerResponse) {
	for msg := range updates {
		select {
		case <-c.done:
			return
		default:
		}

		select {
		case c.Send <- msg:
		case <-c.done:
			return
		}
	}
	close(c.Send)
}

// stop сообщает, что Send больше не читается.
func (c *Client) stop() {
	c.stopOnce.Do(func() { close(c.done) })
}

// readPump читает команды от клиента
func (c *Client) readPump() {
	defer func() {
		c.Session.Hub.Unregister(c.ID)
		if err := c.Conn.Close(); err != nil {
			c.log.WithError(err).Debug("failed to close websocket connection")
		}
		c.log.Info("Client disconnected")
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		c.log.WithError(err).Warn("failed to set read deadline")
	}
	c.Conn.SetPongHandler(func(string) error {
		return c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var cmd api.ClientCommand
		if err := c.Conn.ReadJSON(&cmd); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.log.WithError(err).Error("WS Error")
			}
			return
		}
		if err := c.Session.ProcessCommand(cmd); err != nil {
			c.log.WithError(err).WithField("action", cmd.Action).Debug("Command dropped")
		}
	}
}

// writePump отправляет данные клиенту + Ping
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.stop()
		if err := c.Conn.Close(); err != nil {
			c.log.WithError(err).Debug("failed to close websocket connection in writePump")
		}
	}()

	for {
		select {
		case message, ok := <-c.Send:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				c.log.WithError(err).Warn("failed to set write deadline")
			}
			if !ok {
				if err := c.Conn.WriteMessage(websocket.CloseMessage, []byte{}); err != nil {
					c.log.WithError(err).Debug("write close message failed")
				}
				return
			}
			if err := c.Conn.WriteJSON(message); err != nil {
				c.log.WithError(err).Debug("write json message failed")
				return
			}

		case <-ticker.C:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				c.log.WithError(err).Warn("failed to set ping write deadline")
			}
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.log.WithError(err).Debug("ping failed")
				return
			}
		}
	}
}
