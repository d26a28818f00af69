// This file is part of https://github.com/downarowiczd/tn3270/
// Copyright 2026 by Dawid Downarowicz, licensed under the MIT license. See
// LICENSE in the project root for license information.

package tn3270

import (
	"errors"
	"io"
	"net"
	"time"

	"github.com/op/go-logging"
)

// negotiationTimeout bounds how long Session.negotiate waits for the peer
// to respond during the initial handshake before giving up.
const negotiationTimeout = 5 * time.Second

// readBufferSize is the chunk size used for both negotiation and steady
// state reads.
const readBufferSize = 2048

// Session owns one tn3270 connection end to end: telnet negotiation,
// record framing, and the FIFO of complete inbound records. A Session is
// not safe for concurrent use; all of its methods are meant to be driven
// from a single goroutine, matching the blocking read/write model a 3270
// terminal conversation actually has.
type Session struct {
	conn   net.Conn
	parser *Parser
	log    *logging.Logger

	termType []byte
	isEOR    bool
	isBinary bool

	incoming  [][]byte
	curRecord []byte
}

// NewSession negotiates a tn3270 conversation over conn: terminal type,
// end-of-record, and binary mode. It blocks until negotiation completes,
// the peer closes the connection before agreeing to all three, or a read
// fails; each negotiation read waits at most negotiationTimeout, and a read
// that times out is returned as an error. The session logs nothing until
// SetLogger is called.
func NewSession(conn net.Conn) (*Session, error) {
	s := &Session{
		conn:   conn,
		parser: NewParser(),
	}

	s.parser.Support(OptEOR)
	s.parser.Support(OptBinary)
	s.parser.SupportRemote(OptTType)
	s.parser.Support(OptTType)

	ready, err := s.negotiate()
	if err != nil {
		return nil, err
	}
	if !ready {
		return nil, io.ErrUnexpectedEOF
	}
	return s, nil
}

// SetLogger attaches l to the session; subsequent negotiation and record
// traffic is logged through it. A freshly constructed Session logs nothing.
func (s *Session) SetLogger(l *logging.Logger) {
	s.log = l
}

func (s *Session) debug(msg string) {
	if s.log != nil {
		s.log.Debug(msg)
	}
}

func (s *Session) info(msg string) {
	if s.log != nil {
		s.log.Info(msg)
	}
}

// TermType returns the terminal type string the peer reported during
// negotiation, and whether negotiation has reported one yet.
func (s *Session) TermType() (string, bool) {
	if s.termType == nil {
		return "", false
	}
	return string(s.termType), true
}

func (s *Session) isReady() bool {
	return s.termType != nil && s.isBinary && s.isEOR
}

// negotiate drives the handshake: request TTYPE, wait for the peer's
// terminal type, then request EOR and BINARY in both directions.
func (s *Session) negotiate() (bool, error) {
	var initial []TelnetEvent
	if ev, ok := s.parser.Do(OptTType); ok {
		initial = append(initial, ev)
	}
	if ev, ok := s.parser.Will(OptTType); ok {
		initial = append(initial, ev)
	}
	if err := s.processEvents(initial); err != nil {
		return false, err
	}

	buf := make([]byte, readBufferSize)
	for !s.isReady() {
		if err := s.conn.SetReadDeadline(time.Now().Add(negotiationTimeout)); err != nil {
			return false, err
		}
		n, err := s.conn.Read(buf)
		if n == 0 {
			if errors.Is(err, io.EOF) {
				return false, nil
			}
			if err != nil {
				return false, err
			}
			continue
		}
		events := s.parser.Receive(buf[:n])
		s.debug("negotiation: received events")
		if err := s.processEvents(events); err != nil {
			return false, err
		}
	}

	return true, s.conn.SetReadDeadline(time.Time{})
}

// processEvents drains events (and any follow-on events they trigger, such
// as the terminal-type subnegotiation request) and writes the accumulated
// outbound bytes in a single call.
func (s *Session) processEvents(events []TelnetEvent) error {
	var sendBuf []byte

	for len(events) > 0 {
		var extra []TelnetEvent

		for _, ev := range events {
			switch ev.Kind {
			case EventDataSend:
				sendBuf = append(sendBuf, ev.Data...)

			case EventDataReceive:
				s.curRecord = append(s.curRecord, ev.Data...)

			case EventIAC:
				if ev.Command == tnEOR {
					s.incoming = append(s.incoming, s.curRecord)
					s.curRecord = nil
				} else {
					s.debug("unhandled IAC command")
				}

			case EventNegotiation:
				if ev.Command == tnWILL && ev.Option == OptTType {
					extra = append(extra, s.parser.Subnegotiation(OptTType, []byte{1}))
					continue
				}
				local, remote := s.parser.OptionState(OptEOR)
				s.isEOR = local && remote
				local, remote = s.parser.OptionState(OptBinary)
				s.isBinary = local && remote

			case EventSubnegotiation:
				if ev.Option == OptTType && len(ev.Data) > 0 && ev.Data[0] == 0 {
					s.termType = append([]byte(nil), ev.Data[1:]...)
					s.info("terminal type: " + string(s.termType))

					for _, opt := range []byte{OptEOR, OptBinary} {
						if e, ok := s.parser.Will(opt); ok {
							extra = append(extra, e)
						}
						if e, ok := s.parser.Do(opt); ok {
							extra = append(extra, e)
						}
					}
				}
			}
		}

		events = extra
	}

	if len(sendBuf) == 0 {
		return nil
	}
	_, err := s.conn.Write(sendBuf)
	return err
}

// SendRecord writes one complete outbound record: IAC-escaped data
// terminated by IAC EOR.
func (s *Session) SendRecord(data []byte) error {
	out := EscapeIAC(data)
	out = append(out, tnIAC, tnEOR)
	_, err := s.conn.Write(out)
	return err
}

// ReceiveRecord returns the next complete inbound record, blocking for up
// to timeout if none is already buffered. A zero timeout blocks
// indefinitely.
func (s *Session) ReceiveRecord(timeout time.Duration) ([]byte, error) {
	if len(s.incoming) > 0 {
		rec := s.incoming[0]
		s.incoming = s.incoming[1:]
		return rec, nil
	}

	if timeout > 0 {
		if err := s.conn.SetReadDeadline(time.Now().Add(timeout)); err != nil {
			return nil, err
		}
		defer s.conn.SetReadDeadline(time.Time{})
	}

	buf := make([]byte, readBufferSize)
	n, err := s.conn.Read(buf)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}

	if err := s.processEvents(s.parser.Receive(buf[:n])); err != nil {
		return nil, err
	}

	if err := s.conn.SetReadDeadline(time.Now()); err != nil {
		return nil, err
	}
	for {
		n, err := s.conn.Read(buf)
		if n == 0 {
			var netErr net.Error
			if errors.As(err, &netErr) && netErr.Timeout() {
				break
			}
			if err != nil {
				return nil, err
			}
			break
		}
		if err := s.processEvents(s.parser.Receive(buf[:n])); err != nil {
			return nil, err
		}
	}
	if err := s.conn.SetReadDeadline(time.Time{}); err != nil {
		return nil, err
	}

	if len(s.incoming) > 0 {
		rec := s.incoming[0]
		s.incoming = s.incoming[1:]
		return rec, nil
	}
	return nil, nil
}
