// This file is part of https://github.com/downarowiczd/tn3270/
// Copyright 2026 by Dawid Downarowicz, licensed under the MIT license. See
// LICENSE in the project root for license information.

package tn3270

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtendedFieldAttribute_RoundTrip(t *testing.T) {
	cases := []ExtendedFieldAttribute{
		ExtAllAttributes(),
		ExtHighlighting(HighlightBlink),
		ExtForegroundColor(ColorRed),
		ExtCharacterSet(0xF1),
		ExtBackgroundColor(ColorBlue),
		ExtTransparency(TransparencyXor),
		ExtFieldAttribute(FieldAttribute{Protected: true, MDT: true}),
		ExtFieldValidation(FieldValidationMandatoryFill),
		ExtFieldOutlining(FieldOutlineUnderline | FieldOutlineRight),
	}

	for _, efa := range cases {
		typ, val := efa.Encoded()
		got, err := ParseExtendedFieldAttribute(typ, val)
		require.NoError(t, err)
		assert.True(t, efa.Equal(got))
	}
}

func TestExtendedFieldAttribute_EncodeInto(t *testing.T) {
	efa := ExtForegroundColor(ColorGreen)
	out := efa.EncodeInto(nil)
	assert.Equal(t, []byte{extTypeForeground, ColorGreen.Byte()}, out)
}

func TestParseExtendedFieldAttribute_AllAttributesRejectsNonZeroValue(t *testing.T) {
	_, err := ParseExtendedFieldAttribute(extTypeAll, 0x01)
	require.Error(t, err)
}

func TestParseExtendedFieldAttribute_UnknownType(t *testing.T) {
	_, err := ParseExtendedFieldAttribute(0x99, 0x00)
	require.Error(t, err)
}
