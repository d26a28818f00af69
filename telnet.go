// This file is part of https://github.com/downarowiczd/tn3270/
// Copyright 2026 by Dawid Downarowicz, licensed under the MIT license. See
// LICENSE in the project root for license information.

package tn3270

// Telnet command bytes (RFC 854, RFC 885).
const (
	tnEOR  byte = 239
	tnSE   byte = 240
	tnGA   byte = 249
	tnSB   byte = 250
	tnWILL byte = 251
	tnWONT byte = 252
	tnDO   byte = 253
	tnDONT byte = 254
	tnIAC  byte = 255
)

// Telnet options a tn3270 session negotiates (RFC 854, RFC 1091, RFC 885,
// RFC 2355).
const (
	OptBinary byte = 0
	OptTType  byte = 24
	OptEOR    byte = 25
)

// TelnetEventKind discriminates the events a Parser emits while consuming a
// byte stream.
type TelnetEventKind int

const (
	EventDataSend TelnetEventKind = iota
	EventDataReceive
	EventIAC
	EventNegotiation
	EventSubnegotiation
)

// TelnetEvent is one unit of progress reported by Parser.Receive: bytes to
// forward to the peer (EventDataSend), application data the peer sent
// (EventDataReceive), a bare IAC command (EventIAC), an option negotiation
// (EventNegotiation), or a completed subnegotiation (EventSubnegotiation).
type TelnetEvent struct {
	Kind    TelnetEventKind
	Data    []byte
	Command byte
	Option  byte
}

type optionState struct {
	localSupported  bool
	remoteSupported bool
	localState      bool
	remoteState     bool

	// localAnnounced and remoteRequested record that this side already sent
	// WILL/DO for the option on its own initiative (Will/Do below), so the
	// peer's eventual DO/WILL confirming it is treated as an acknowledgment
	// rather than a fresh request needing its own reply.
	localAnnounced  bool
	remoteRequested bool
}

type parserState int

const (
	stateData parserState = iota
	stateIAC
	stateNegotiation
	stateSubnegOption
	stateSubneg
	stateSubnegIAC
)

// Parser turns a raw telnet byte stream into a sequence of TelnetEvents,
// tracking per-option negotiation state so that already-agreed options are
// never re-announced (RFC 854 loop avoidance). It holds no network
// connection of its own; Session drives it.
type Parser struct {
	options map[byte]*optionState

	state      parserState
	pendingCmd byte
	dataBuf    []byte
	sbOption   byte
	sbBuf      []byte
}

// NewParser returns a Parser with no options yet declared supported.
func NewParser() *Parser {
	return &Parser{options: make(map[byte]*optionState)}
}

func (p *Parser) option(opt byte) *optionState {
	st, ok := p.options[opt]
	if !ok {
		st = &optionState{}
		p.options[opt] = st
	}
	return st
}

// Support declares that this side will agree to enable opt locally when the
// peer requests it with DO.
func (p *Parser) Support(opt byte) {
	p.option(opt).localSupported = true
}

// SupportRemote declares that this side will agree to let the peer enable
// opt when it offers with WILL.
func (p *Parser) SupportRemote(opt byte) {
	p.option(opt).remoteSupported = true
}

// OptionState reports whether opt is currently active locally and/or
// remotely.
func (p *Parser) OptionState(opt byte) (local, remote bool) {
	st := p.option(opt)
	return st.localState, st.remoteState
}

// Do requests that the peer enable opt (IAC DO opt), returning ok=false and
// no event if the peer has already confirmed it to avoid re-announcing an
// already-negotiated option.
func (p *Parser) Do(opt byte) (TelnetEvent, bool) {
	st := p.option(opt)
	if st.remoteState {
		return TelnetEvent{}, false
	}
	st.remoteRequested = true
	return TelnetEvent{Kind: EventDataSend, Data: []byte{tnIAC, tnDO, opt}}, true
}

// Will offers that this side will enable opt (IAC WILL opt), returning
// ok=false if already confirmed locally.
func (p *Parser) Will(opt byte) (TelnetEvent, bool) {
	st := p.option(opt)
	if st.localState {
		return TelnetEvent{}, false
	}
	st.localAnnounced = true
	return TelnetEvent{Kind: EventDataSend, Data: []byte{tnIAC, tnWILL, opt}}, true
}

// Subnegotiation builds an IAC SB opt <payload> IAC SE request.
func (p *Parser) Subnegotiation(opt byte, payload []byte) TelnetEvent {
	buf := make([]byte, 0, len(payload)+5)
	buf = append(buf, tnIAC, tnSB, opt)
	buf = append(buf, payload...)
	buf = append(buf, tnIAC, tnSE)
	return TelnetEvent{Kind: EventDataSend, Data: buf}
}

// Receive feeds raw bytes read off the wire into the parser, returning the
// events they produced. Events may include DataSend entries: bytes the
// caller must write back to the peer as part of the negotiation handshake.
func (p *Parser) Receive(data []byte) []TelnetEvent {
	var events []TelnetEvent

	for _, b := range data {
		switch p.state {
		case stateData:
			if b == tnIAC {
				if len(p.dataBuf) > 0 {
					events = append(events, TelnetEvent{Kind: EventDataReceive, Data: p.takeDataBuf()})
				}
				p.state = stateIAC
				continue
			}
			p.dataBuf = append(p.dataBuf, b)

		case stateIAC:
			switch b {
			case tnIAC:
				p.dataBuf = append(p.dataBuf, tnIAC)
				p.state = stateData
			case tnWILL, tnWONT, tnDO, tnDONT:
				p.pendingCmd = b
				p.state = stateNegotiation
			case tnSB:
				p.sbBuf = nil
				p.state = stateSubnegOption
			default:
				events = append(events, TelnetEvent{Kind: EventIAC, Command: b})
				p.state = stateData
			}

		case stateNegotiation:
			events = append(events, p.negotiate(p.pendingCmd, b)...)
			p.state = stateData

		case stateSubnegOption:
			p.sbOption = b
			p.state = stateSubneg

		case stateSubneg:
			if b == tnIAC {
				p.state = stateSubnegIAC
				continue
			}
			p.sbBuf = append(p.sbBuf, b)

		case stateSubnegIAC:
			switch b {
			case tnIAC:
				p.sbBuf = append(p.sbBuf, tnIAC)
				p.state = stateSubneg
			case tnSE:
				events = append(events, TelnetEvent{
					Kind:   EventSubnegotiation,
					Option: p.sbOption,
					Data:   p.takeSBBuf(),
				})
				p.state = stateData
			default:
				p.state = stateData
			}
		}
	}

	if p.state == stateData && len(p.dataBuf) > 0 {
		events = append(events, TelnetEvent{Kind: EventDataReceive, Data: p.takeDataBuf()})
	}
	return events
}

func (p *Parser) takeDataBuf() []byte {
	b := p.dataBuf
	p.dataBuf = nil
	return b
}

func (p *Parser) takeSBBuf() []byte {
	b := p.sbBuf
	p.sbBuf = nil
	return b
}

// negotiate applies one complete WILL/WONT/DO/DONT command, updating option
// state and producing an auto-reply plus the informational event the
// session layer acts on.
func (p *Parser) negotiate(cmd, opt byte) []TelnetEvent {
	st := p.option(opt)
	var out []TelnetEvent

	switch cmd {
	case tnWILL:
		if !st.remoteState {
			if st.remoteRequested {
				// We already sent DO on our own initiative; this WILL is
				// the peer's confirmation, not a fresh offer to answer.
				st.remoteState = true
			} else if st.remoteSupported {
				st.remoteState = true
				out = append(out, TelnetEvent{Kind: EventDataSend, Data: []byte{tnIAC, tnDO, opt}})
			} else {
				out = append(out, TelnetEvent{Kind: EventDataSend, Data: []byte{tnIAC, tnDONT, opt}})
			}
		}
	case tnWONT:
		st.remoteState = false
	case tnDO:
		if !st.localState {
			if st.localAnnounced {
				// We already sent WILL on our own initiative; this DO is
				// the peer's confirmation, not a fresh request to answer.
				st.localState = true
			} else if st.localSupported {
				st.localState = true
				out = append(out, TelnetEvent{Kind: EventDataSend, Data: []byte{tnIAC, tnWILL, opt}})
			} else {
				out = append(out, TelnetEvent{Kind: EventDataSend, Data: []byte{tnIAC, tnWONT, opt}})
			}
		}
	case tnDONT:
		st.localState = false
	}

	out = append(out, TelnetEvent{Kind: EventNegotiation, Command: cmd, Option: opt})
	return out
}

// EscapeIAC doubles every 0xFF byte in data so it passes through the telnet
// layer unambiguously as application data.
func EscapeIAC(data []byte) []byte {
	out := make([]byte, 0, len(data))
	for _, b := range data {
		out = append(out, b)
		if b == tnIAC {
			out = append(out, tnIAC)
		}
	}
	return out
}
