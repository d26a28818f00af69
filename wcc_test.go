// This file is part of https://github.com/downarowiczd/tn3270/
// Copyright 2026 by Dawid Downarowicz, licensed under the MIT license. See
// LICENSE in the project root for license information.

package tn3270

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestWCC_RoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		w := WCC{
			Reset:        rapid.Bool().Draw(t, "reset"),
			StartPrinter: rapid.Bool().Draw(t, "startPrinter"),
			SoundAlarm:   rapid.Bool().Draw(t, "soundAlarm"),
			KBDRestore:   rapid.Bool().Draw(t, "kbdRestore"),
			ResetMDT:     rapid.Bool().Draw(t, "resetMDT"),
		}

		got, err := WCCFromBits(w.Bits())
		require.NoError(t, err)
		assert.Equal(t, w, got)
	})
}

func TestWCC_ByteNeverBelow0x40(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		w := WCC{
			Reset:        rapid.Bool().Draw(t, "reset"),
			StartPrinter: rapid.Bool().Draw(t, "startPrinter"),
			SoundAlarm:   rapid.Bool().Draw(t, "soundAlarm"),
			KBDRestore:   rapid.Bool().Draw(t, "kbdRestore"),
			ResetMDT:     rapid.Bool().Draw(t, "resetMDT"),
		}
		assert.GreaterOrEqual(t, w.Byte(), byte(0x40))
	})
}

func TestWCCFromBits_RejectsReservedBit(t *testing.T) {
	_, err := WCCFromBits(wccReserved)
	require.Error(t, err)
}
