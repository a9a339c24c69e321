package apclient

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"tww-multiworld/world/internal/proto"
)

// DefaultReconnectBackoff is how long callers should wait before redialing a
// lost server connection.
const DefaultReconnectBackoff = 5 * time.Second

// Handler receives decoded server commands from the read loop. Calls arrive
// one at a time from a single goroutine.
type Handler interface {
	HandleRoomInfo(msg proto.RoomInfo)
	HandleConnected(msg proto.Connected)
	HandleConnectionRefused(msg proto.ConnectionRefused)
	HandleReceivedItems(msg proto.ReceivedItems)
	HandleBounced(msg proto.Bounced)
	HandlePrintJSON(msg proto.PrintJSON)
}

// Session owns one websocket connection to a multiworld server.
type Session struct {
	conn    *websocket.Conn
	handler Handler
	logger  *log.Logger

	writeMu   sync.Mutex
	closeOnce sync.Once
	closed    chan struct{}
}

// Dial opens a websocket connection to the server at the given url.
func Dial(ctx context.Context, url string, handler Handler, logger *log.Logger) (*Session, error) {
	if logger == nil {
		logger = log.Default()
	}
	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if resp != nil {
		resp.Body.Close()
	}
	if err != nil {
		return nil, err
	}
	return &Session{
		conn:    conn,
		handler: handler,
		logger:  logger,
		closed:  make(chan struct{}),
	}, nil
}

// Run reads envelopes until the connection drops or Close is called. A nil
// return means the session was closed locally.
func (s *Session) Run() error {
	for {
		_, payload, err := s.conn.ReadMessage()
		if err != nil {
			select {
			case <-s.closed:
				return nil
			default:
				return err
			}
		}

		frames, err := proto.DecodeEnvelope(payload)
		if err != nil {
			s.logger.Printf("discarding malformed server payload: %v", err)
			continue
		}
		for _, frame := range frames {
			s.dispatch(frame)
		}
	}
}

func (s *Session) dispatch(frame proto.Frame) {
	switch frame.Cmd {
	case proto.CmdRoomInfo:
		msg, err := proto.DecodeRoomInfo(frame.Raw)
		if err != nil {
			s.logger.Printf("discarding malformed %s: %v", frame.Cmd, err)
			return
		}
		s.handler.HandleRoomInfo(msg)
	case proto.CmdConnected:
		msg, err := proto.DecodeConnected(frame.Raw)
		if err != nil {
			s.logger.Printf("discarding malformed %s: %v", frame.Cmd, err)
			return
		}
		s.handler.HandleConnected(msg)
	case proto.CmdConnectionRefused:
		msg, err := proto.DecodeConnectionRefused(frame.Raw)
		if err != nil {
			s.logger.Printf("discarding malformed %s: %v", frame.Cmd, err)
			return
		}
		s.handler.HandleConnectionRefused(msg)
	case proto.CmdReceivedItems:
		msg, err := proto.DecodeReceivedItems(frame.Raw)
		if err != nil {
			s.logger.Printf("discarding malformed %s: %v", frame.Cmd, err)
			return
		}
		s.handler.HandleReceivedItems(msg)
	case proto.CmdBounced:
		msg, err := proto.DecodeBounced(frame.Raw)
		if err != nil {
			s.logger.Printf("discarding malformed %s: %v", frame.Cmd, err)
			return
		}
		s.handler.HandleBounced(msg)
	case proto.CmdPrintJSON:
		msg, err := proto.DecodePrintJSON(frame.Raw)
		if err != nil {
			s.logger.Printf("discarding malformed %s: %v", frame.Cmd, err)
			return
		}
		s.handler.HandlePrintJSON(msg)
	default:
		s.logger.Printf("ignoring unknown server command %q", frame.Cmd)
	}
}

func (s *Session) send(data []byte, err error) error {
	if err != nil {
		return err
	}
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return s.conn.WriteMessage(websocket.TextMessage, data)
}

// Connect sends the slot handshake.
func (s *Session) Connect(msg proto.Connect) error {
	return s.send(proto.EncodeConnect(msg))
}

// UpdateTags swaps the session's tags on the server.
func (s *Session) UpdateTags(tags []string) error {
	return s.send(proto.EncodeConnectUpdate(tags))
}

// ReportChecks tells the server which locations were newly checked.
func (s *Session) ReportChecks(locations []int64) error {
	return s.send(proto.EncodeLocationChecks(locations))
}

// ReportStatus updates the session's progress on the server.
func (s *Session) ReportStatus(status proto.ClientStatus) error {
	return s.send(proto.EncodeStatusUpdate(status))
}

// Sync asks the server to resend the full received-items list.
func (s *Session) Sync() error {
	return s.send(proto.EncodeSync())
}

// SendDeathLink broadcasts the local player's death to the room.
func (s *Session) SendDeathLink(source, cause string) error {
	data := proto.DeathLinkData{
		Time:   float64(time.Now().UnixMilli()) / 1000,
		Source: source,
		Cause:  cause,
	}
	return s.send(proto.EncodeDeathLink(data))
}

// Close tears the connection down. Safe to call more than once.
func (s *Session) Close() error {
	var err error
	s.closeOnce.Do(func() {
		close(s.closed)
		message := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
		s.writeMu.Lock()
		s.conn.WriteMessage(websocket.CloseMessage, message)
		s.writeMu.Unlock()
		err = s.conn.Close()
	})
	return err
}
