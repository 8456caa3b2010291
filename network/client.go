package network

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/automoto/versus/shared/messages"
	"github.com/coder/websocket"
	"github.com/leap-fish/necs/esync"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
)

type ClientState int

const (
	StateDisconnected ClientState = iota
	StateConnecting
	StateConnected
	StateJoinedGame
	StateError
)

// Client manages a WebSocket connection to the game server.
// All shared fields are protected by mu (router callbacks run on necs goroutines).
type Client struct {
	mu sync.RWMutex

	state      ClientState
	lastError  error
	joined     messages.JoinAccepted
	conn       *websocket.Conn
	snapshotCh chan esync.WorldSnapshot // size-1 buffered; latest wins

	hitCh      chan messages.HitMessage
	blockCh    chan messages.BlockMessage
	roundEndCh chan messages.RoundEndMessage
	matchEndCh chan messages.MatchEndMessage
}

func NewClient() *Client {
	return &Client{
		state:      StateDisconnected,
		snapshotCh: make(chan esync.WorldSnapshot, 1),
		hitCh:      make(chan messages.HitMessage, 16),
		blockCh:    make(chan messages.BlockMessage, 16),
		roundEndCh: make(chan messages.RoundEndMessage, 4),
		matchEndCh: make(chan messages.MatchEndMessage, 4),
	}
}

// Connect dials the server in a background goroutine and asks for a fighter
// slot once connected.
func (c *Client) Connect(address string, req messages.JoinRequest) {
	c.mu.Lock()
	c.state = StateConnecting
	c.lastError = nil
	c.mu.Unlock()

	router.OnConnect(func(_ *router.NetworkClient) {
		log.Println("[client] connected to server")
		c.mu.Lock()
		c.state = StateConnected
		c.mu.Unlock()

		if err := c.SendMessage(req); err != nil {
			c.setError(fmt.Errorf("send join request: %w", err))
		}
	})

	router.On(func(_ *router.NetworkClient, msg messages.JoinAccepted) {
		log.Printf("[client] joined %s: slot=%d stage=%s tickRate=%d",
			msg.ServerName, msg.Slot, msg.Stage, msg.TickRate)
		c.mu.Lock()
		c.joined = msg
		c.state = StateJoinedGame
		c.mu.Unlock()
	})

	router.On(func(_ *router.NetworkClient, msg messages.JoinRejected) {
		log.Printf("[client] join rejected: %s", msg.Reason)
		c.setError(fmt.Errorf("join rejected: %s", msg.Reason))
	})

	router.On(func(_ *router.NetworkClient, snapshot esync.WorldSnapshot) {
		select { // drain stale, push latest
		case <-c.snapshotCh:
		default:
		}
		c.snapshotCh <- snapshot
	})

	router.On(func(_ *router.NetworkClient, msg messages.HitMessage) { offer(c.hitCh, msg) })
	router.On(func(_ *router.NetworkClient, msg messages.BlockMessage) { offer(c.blockCh, msg) })
	router.On(func(_ *router.NetworkClient, msg messages.RoundEndMessage) { offer(c.roundEndCh, msg) })
	router.On(func(_ *router.NetworkClient, msg messages.MatchEndMessage) { offer(c.matchEndCh, msg) })

	router.OnDisconnect(func(_ *router.NetworkClient, err error) {
		log.Printf("[client] disconnected: %v", err)
		c.mu.Lock()
		if c.state != StateError {
			c.state = StateDisconnected
		}
		c.conn = nil
		c.mu.Unlock()
	})

	router.OnError(func(_ *router.NetworkClient, err error) {
		log.Printf("[client] error: %v", err)
	})

	go func() {
		transport := transports.NewWsClientTransport("ws://" + address)
		err := transport.Start(func(conn *websocket.Conn) {
			c.mu.Lock()
			c.conn = conn
			c.mu.Unlock()
		})
		if err != nil {
			c.setError(fmt.Errorf("connection failed: %w", err))
		}
	}()
}

func (c *Client) Disconnect() {
	c.mu.Lock()
	conn := c.conn
	c.state = StateDisconnected
	c.conn = nil
	c.mu.Unlock()

	if conn != nil {
		_ = conn.CloseNow()
	}

	router.ResetRouter()
}

func (c *Client) State() ClientState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

func (c *Client) LastError() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastError
}

// Joined returns the server's join reply. It is zero until StateJoinedGame.
func (c *Client) Joined() messages.JoinAccepted {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.joined
}

// LatestSnapshot returns the most recent WorldSnapshot, or nil. Non-blocking.
func (c *Client) LatestSnapshot() *esync.WorldSnapshot {
	select {
	case snap := <-c.snapshotCh:
		return &snap
	default:
		return nil
	}
}

func (c *Client) SendMessage(msg any) error {
	c.mu.RLock()
	conn := c.conn
	c.mu.RUnlock()

	if conn == nil {
		return fmt.Errorf("not connected")
	}

	payload, err := router.Serialize(msg)
	if err != nil {
		return fmt.Errorf("serialize: %w", err)
	}

	return conn.Write(context.Background(), websocket.MessageBinary, payload)
}

func (c *Client) setError(err error) {
	c.mu.Lock()
	c.state = StateError
	c.lastError = err
	c.mu.Unlock()
}

// DrainHits returns all pending hit messages, non-blocking.
func (c *Client) DrainHits() []messages.HitMessage {
	return drainChan(c.hitCh)
}

// DrainBlocks returns all pending block messages, non-blocking.
func (c *Client) DrainBlocks() []messages.BlockMessage {
	return drainChan(c.blockCh)
}

// DrainRoundEnds returns all pending round results, non-blocking.
func (c *Client) DrainRoundEnds() []messages.RoundEndMessage {
	return drainChan(c.roundEndCh)
}

// DrainMatchEnds returns all pending match results, non-blocking.
func (c *Client) DrainMatchEnds() []messages.MatchEndMessage {
	return drainChan(c.matchEndCh)
}

// offer queues v, dropping it when the reader has fallen behind.
func offer[T any](ch chan T, v T) {
	select {
	case ch <- v:
	default:
	}
}

func drainChan[T any](ch chan T) []T {
	var out []T
	for {
		select {
		case v := <-ch:
			out = append(out, v)
		default:
			return out
		}
	}
}
