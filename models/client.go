package models

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Client is one websocket participant. The mutex serializes writes: events
// for this connection can originate from the opponent's read loop and from
// the ping goroutine as well as our own.
type Client struct {
	ID   string
	Conn *websocket.Conn

	writeMu sync.Mutex
}

func NewClient(id string, conn *websocket.Conn) *Client {
	return &Client{ID: id, Conn: conn}
}

// Send marshals v and writes it as one text frame.
func (c *Client) Send(v interface{}) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.Conn.WriteJSON(v)
}

// Ping writes a ping control frame.
func (c *Client) Ping() error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.Conn.WriteMessage(websocket.PingMessage, nil)
}

func (c *Client) SetReadDeadline(t time.Time) error {
	return c.Conn.SetReadDeadline(t)
}

func (c *Client) Close() error {
	return c.Conn.Close()
}
