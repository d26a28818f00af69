// This file is part of https://github.com/downarowiczd/tn3270/
// Copyright 2026 by Dawid Downarowicz, licensed under the MIT license. See
// LICENSE in the project root for license information.

package tn3270

// ExtendedFieldAttribute is a (type, value) tagged union carried by the
// StartFieldExtended, SetAttribute, and ModifyField write orders.
type ExtendedFieldAttribute struct {
	kind extendedKind
	fa   FieldAttribute
	fo   FieldOutline
	fv   FieldValidation
	hl   Highlighting
	fg   Color
	bg   Color
	cs   byte
	tr   Transparency
}

type extendedKind int

const (
	extAllAttributes extendedKind = iota
	extHighlighting
	extForegroundColor
	extCharacterSet
	extBackgroundColor
	extTransparency
	extFieldAttribute
	extFieldValidation
	extFieldOutlining
)

const (
	extTypeAll        = 0x00
	extTypeHighlight  = 0x41
	extTypeForeground = 0x42
	extTypeCharset    = 0x43
	extTypeBackground = 0x45
	extTypeTransp     = 0x46
	extTypeFieldAttr  = 0xC0
	extTypeFieldValid = 0xC1
	extTypeFieldOutl  = 0xC2
)

// ExtAllAttributes builds the "reset to all default attributes" member.
func ExtAllAttributes() ExtendedFieldAttribute {
	return ExtendedFieldAttribute{kind: extAllAttributes}
}

// ExtHighlighting builds the extended-highlighting member.
func ExtHighlighting(h Highlighting) ExtendedFieldAttribute {
	return ExtendedFieldAttribute{kind: extHighlighting, hl: h}
}

// ExtForegroundColor builds the foreground-color member.
func ExtForegroundColor(c Color) ExtendedFieldAttribute {
	return ExtendedFieldAttribute{kind: extForegroundColor, fg: c}
}

// ExtCharacterSet builds the character-set member. The value is an opaque
// character-set identifier; this layer does not interpret it.
func ExtCharacterSet(cs byte) ExtendedFieldAttribute {
	return ExtendedFieldAttribute{kind: extCharacterSet, cs: cs}
}

// ExtBackgroundColor builds the background-color member.
func ExtBackgroundColor(c Color) ExtendedFieldAttribute {
	return ExtendedFieldAttribute{kind: extBackgroundColor, bg: c}
}

// ExtTransparency builds the transparency member.
func ExtTransparency(t Transparency) ExtendedFieldAttribute {
	return ExtendedFieldAttribute{kind: extTransparency, tr: t}
}

// ExtFieldAttribute builds the field-attribute member (the basic
// StartField attribute, carried as an extended attribute too).
func ExtFieldAttribute(fa FieldAttribute) ExtendedFieldAttribute {
	return ExtendedFieldAttribute{kind: extFieldAttribute, fa: fa}
}

// ExtFieldValidation builds the field-validation member.
func ExtFieldValidation(fv FieldValidation) ExtendedFieldAttribute {
	return ExtendedFieldAttribute{kind: extFieldValidation, fv: fv}
}

// ExtFieldOutlining builds the field-outlining member.
func ExtFieldOutlining(fo FieldOutline) ExtendedFieldAttribute {
	return ExtendedFieldAttribute{kind: extFieldOutlining, fo: fo}
}

// Encoded returns the (type-byte, value-byte) wire pair for e.
func (e ExtendedFieldAttribute) Encoded() (typ byte, val byte) {
	switch e.kind {
	case extAllAttributes:
		return extTypeAll, 0x00
	case extHighlighting:
		return extTypeHighlight, e.hl.Byte()
	case extForegroundColor:
		return extTypeForeground, e.fg.Byte()
	case extCharacterSet:
		return extTypeCharset, e.cs
	case extBackgroundColor:
		return extTypeBackground, e.bg.Byte()
	case extTransparency:
		return extTypeTransp, e.tr.Byte()
	case extFieldAttribute:
		return extTypeFieldAttr, makeASCIITranslatable(e.fa.Bits())
	case extFieldValidation:
		return extTypeFieldValid, e.fv.Bits()
	case extFieldOutlining:
		return extTypeFieldOutl, e.fo.Bits()
	default:
		panic("tn3270: unreachable extendedKind")
	}
}

// EncodeInto appends e's wire pair to output.
func (e ExtendedFieldAttribute) EncodeInto(output []byte) []byte {
	typ, val := e.Encoded()
	return append(output, typ, val)
}

// ParseExtendedFieldAttribute decodes a (type, value) wire pair.
func ParseExtendedFieldAttribute(typ, val byte) (ExtendedFieldAttribute, error) {
	switch typ {
	case extTypeAll:
		if val != 0x00 {
			return ExtendedFieldAttribute{}, InvalidData{Reason: "AllAttributes with non-zero value"}
		}
		return ExtAllAttributes(), nil
	case extTypeHighlight:
		h, err := HighlightingFromByte(val)
		if err != nil {
			return ExtendedFieldAttribute{}, err
		}
		return ExtHighlighting(h), nil
	case extTypeForeground:
		c, err := ColorFromByte(val)
		if err != nil {
			return ExtendedFieldAttribute{}, err
		}
		return ExtForegroundColor(c), nil
	case extTypeCharset:
		return ExtCharacterSet(val), nil
	case extTypeBackground:
		c, err := ColorFromByte(val)
		if err != nil {
			return ExtendedFieldAttribute{}, err
		}
		return ExtBackgroundColor(c), nil
	case extTypeTransp:
		t, err := TransparencyFromByte(val)
		if err != nil {
			return ExtendedFieldAttribute{}, err
		}
		return ExtTransparency(t), nil
	case extTypeFieldAttr:
		fa, err := FieldAttributeFromBits(val & 0x3F)
		if err != nil {
			return ExtendedFieldAttribute{}, err
		}
		return ExtFieldAttribute(fa), nil
	case extTypeFieldValid:
		fv, err := FieldValidationFromBits(val)
		if err != nil {
			return ExtendedFieldAttribute{}, err
		}
		return ExtFieldValidation(fv), nil
	case extTypeFieldOutl:
		fo, err := FieldOutlineFromBits(val)
		if err != nil {
			return ExtendedFieldAttribute{}, err
		}
		return ExtFieldOutlining(fo), nil
	default:
		return ExtendedFieldAttribute{}, InvalidData{Reason: "unknown extended field attribute type"}
	}
}

// Equal reports whether e and other encode to the same wire pair, which is
// the notion of equality the stream round-trip property in spec.md §8
// requires (the struct itself carries unexported fields that are only
// meaningful for the active kind).
func (e ExtendedFieldAttribute) Equal(other ExtendedFieldAttribute) bool {
	t1, v1 := e.Encoded()
	t2, v2 := other.Encoded()
	return t1 == t2 && v1 == v2
}
