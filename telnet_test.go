// This file is part of https://github.com/downarowiczd/tn3270/
// Copyright 2026 by Dawid Downarowicz, licensed under the MIT license. See
// LICENSE in the project root for license information.

package tn3270

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestEscapeIAC(t *testing.T) {
	assert.Equal(t, []byte{0x01, 0x02}, EscapeIAC([]byte{0x01, 0x02}))
	assert.Equal(t, []byte{tnIAC, tnIAC}, EscapeIAC([]byte{tnIAC}))
	assert.Equal(t, []byte{0x01, tnIAC, tnIAC, 0x02}, EscapeIAC([]byte{0x01, tnIAC, 0x02}))
}

func TestParser_ReceiveDataRun(t *testing.T) {
	p := NewParser()
	events := p.Receive([]byte{'H', 'i'})
	require.Len(t, events, 1)
	assert.Equal(t, EventDataReceive, events[0].Kind)
	assert.Equal(t, []byte{'H', 'i'}, events[0].Data)
}

func TestParser_ReceiveEscapedIACIsData(t *testing.T) {
	p := NewParser()
	events := p.Receive([]byte{'A', tnIAC, tnIAC, 'B'})
	require.Len(t, events, 1)
	assert.Equal(t, []byte{'A', tnIAC, 'B'}, events[0].Data)
}

func TestParser_ReceiveEOR(t *testing.T) {
	p := NewParser()
	events := p.Receive([]byte{'x', tnIAC, tnEOR})
	require.Len(t, events, 2)
	assert.Equal(t, EventDataReceive, events[0].Kind)
	assert.Equal(t, EventIAC, events[1].Kind)
	assert.Equal(t, tnEOR, events[1].Command)
}

func TestParser_NegotiationDoesNotReannounce(t *testing.T) {
	p := NewParser()
	p.Support(OptEOR)

	events := p.Receive([]byte{tnIAC, tnDO, OptEOR})
	require.Len(t, events, 2)
	assert.Equal(t, EventDataSend, events[0].Kind)
	assert.Equal(t, []byte{tnIAC, tnWILL, OptEOR}, events[0].Data)
	assert.Equal(t, EventNegotiation, events[1].Kind)

	local, _ := p.OptionState(OptEOR)
	assert.True(t, local)

	// A second DO for the same option must not trigger another reply.
	events = p.Receive([]byte{tnIAC, tnDO, OptEOR})
	require.Len(t, events, 1)
	assert.Equal(t, EventNegotiation, events[0].Kind)
}

func TestParser_NegotiationRefusesUnsupportedOption(t *testing.T) {
	p := NewParser()
	events := p.Receive([]byte{tnIAC, tnDO, 0x22})
	require.Len(t, events, 2)
	assert.Equal(t, []byte{tnIAC, tnWONT, 0x22}, events[0].Data)
}

func TestParser_Subnegotiation(t *testing.T) {
	p := NewParser()
	events := p.Receive([]byte{tnIAC, tnSB, OptTType, 0, 'I', 'B', 'M', tnIAC, tnSE})
	require.Len(t, events, 1)
	assert.Equal(t, EventSubnegotiation, events[0].Kind)
	assert.Equal(t, OptTType, events[0].Option)
	assert.Equal(t, []byte{0, 'I', 'B', 'M'}, events[0].Data)
}

func TestTelnetEscapeRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		payload := rapid.SliceOf(rapid.Byte()).Draw(t, "payload")

		escaped := EscapeIAC(payload)
		wire := append(append([]byte{}, escaped...), tnIAC, tnEOR)

		p := NewParser()
		events := p.Receive(wire)

		var reconstructed []byte
		for _, ev := range events {
			if ev.Kind == EventDataReceive {
				reconstructed = append(reconstructed, ev.Data...)
			}
		}
		assert.True(t, bytes.Equal(payload, reconstructed))

		last := events[len(events)-1]
		assert.Equal(t, EventIAC, last.Kind)
		assert.Equal(t, tnEOR, last.Command)
	})
}
