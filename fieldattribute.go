// This file is part of https://github.com/downarowiczd/tn3270/
// Copyright 2026 by Dawid Downarowicz, licensed under the MIT license. See
// LICENSE in the project root for license information.

package tn3270

// DisplayMode is the 2-bit "display/selector-pen-detectable" portion of a
// FieldAttribute.
type DisplayMode byte

const (
	DisplayNormalNonDetectable DisplayMode = 0b00
	DisplayNormalDetectable    DisplayMode = 0b01
	DisplayIntensified         DisplayMode = 0b10
	DisplayNonDisplay          DisplayMode = 0b11
)

// FieldAttribute is the 6-bit field-attribute byte that begins a field,
// carried by the StartField write order. It occupies the low 6 bits of its
// wire byte; bit 1 (0x02) is reserved and must be zero.
type FieldAttribute struct {
	Protected bool
	Numeric   bool
	Display   DisplayMode
	MDT       bool
}

const (
	faProtected = 0b10_0000
	faNumeric   = 0b01_0000
	faDisplay   = 0b00_1100
	faReserved  = 0b00_0010
	faMDT       = 0b00_0001
)

// Bits returns the raw 6-bit value of fa.
func (fa FieldAttribute) Bits() byte {
	var b byte
	if fa.Protected {
		b |= faProtected
	}
	if fa.Numeric {
		b |= faNumeric
	}
	b |= byte(fa.Display) << 2 & faDisplay
	if fa.MDT {
		b |= faMDT
	}
	return b
}

// FieldAttributeFromBits decodes the low 6 bits of b into a FieldAttribute,
// rejecting a set reserved bit.
func FieldAttributeFromBits(b byte) (FieldAttribute, error) {
	if b&faReserved != 0 {
		return FieldAttribute{}, InvalidData{Reason: "reserved field attribute bit set"}
	}
	return FieldAttribute{
		Protected: b&faProtected != 0,
		Numeric:   b&faNumeric != 0,
		Display:   DisplayMode((b & faDisplay) >> 2),
		MDT:       b&faMDT != 0,
	}, nil
}

// FieldOutline is the 4-bit "field outlining" extended attribute.
type FieldOutline byte

const (
	FieldOutlineNone      FieldOutline = 0
	FieldOutlineUnderline FieldOutline = 0b0001
	FieldOutlineRight     FieldOutline = 0b0010
	FieldOutlineOverline  FieldOutline = 0b0100
	FieldOutlineLeft      FieldOutline = 0b1000

	fieldOutlineMask = 0b1111
)

// Bits returns the raw 4-bit value of fo.
func (fo FieldOutline) Bits() byte {
	return byte(fo) & fieldOutlineMask
}

// FieldOutlineFromBits decodes b into a FieldOutline, rejecting any bit
// outside the 4-bit range.
func FieldOutlineFromBits(b byte) (FieldOutline, error) {
	if b&^byte(fieldOutlineMask) != 0 {
		return 0, InvalidData{Reason: "reserved field outline bit set"}
	}
	return FieldOutline(b), nil
}

// FieldValidation is the 3-bit "field validation" extended attribute.
type FieldValidation byte

const (
	FieldValidationNone           FieldValidation = 0
	FieldValidationTrigger        FieldValidation = 0b001
	FieldValidationMandatoryEntry FieldValidation = 0b010
	FieldValidationMandatoryFill  FieldValidation = 0b100

	fieldValidationMask = 0b111
)

// Bits returns the raw 3-bit value of fv.
func (fv FieldValidation) Bits() byte {
	return byte(fv) & fieldValidationMask
}

// FieldValidationFromBits decodes b into a FieldValidation, rejecting any
// bit outside the 3-bit range.
func FieldValidationFromBits(b byte) (FieldValidation, error) {
	if b&^byte(fieldValidationMask) != 0 {
		return 0, InvalidData{Reason: "reserved field validation bit set"}
	}
	return FieldValidation(b), nil
}
