// This file is part of https://github.com/downarowiczd/tn3270/
// Copyright 2026 by Dawid Downarowicz, licensed under the MIT license. See
// LICENSE in the project root for license information.

package tn3270

// Opcodes for the write orders and command codes used on the wire.
const (
	opStartField         = 0x1D
	opStartFieldExtended = 0x29
	opSetBufferAddress   = 0x11
	opSetAttribute       = 0x28
	opModifyField        = 0x2C
	opInsertCursor       = 0x13
	opProgramTab         = 0x05
	opRepeatToAddress    = 0x3C
	opEraseUnprotectedTo = 0x12
	opGraphicEscape      = 0x08
)

// Outbound command opcodes.
const (
	CmdWrite                byte = 0xF1
	CmdEraseWrite           byte = 0xF5
	CmdEraseWriteAlternate  byte = 0x7E
	CmdEraseAllUnprotected  byte = 0x6F
	CmdWriteStructuredField byte = 0xF3
)

// maxAttributeListLen is the largest number of attributes a
// StartFieldExtended or ModifyField order may carry: the count is
// serialized as a single unsigned byte.
const maxAttributeListLen = 255

// orderKind discriminates the WriteOrder tagged union.
type orderKind int

const (
	orderStartField orderKind = iota
	orderStartFieldExtended
	orderSetBufferAddress
	orderSetAttribute
	orderModifyField
	orderInsertCursor
	orderProgramTab
	orderRepeatToAddress
	orderEraseUnprotectedToAddress
	orderGraphicEscape
	orderSendText
)

// WriteOrder is a single command inside a Write record's payload. Construct
// one with the matching OrderXxx constructor.
type WriteOrder struct {
	kind orderKind

	fa      FieldAttribute
	attrs   []ExtendedFieldAttribute
	addr    int
	efa     ExtendedFieldAttribute
	repCh   rune
	geByte  byte
	text    string
}

// OrderStartField builds a StartField order.
func OrderStartField(fa FieldAttribute) WriteOrder {
	return WriteOrder{kind: orderStartField, fa: fa}
}

// OrderStartFieldExtended builds a StartFieldExtended order.
func OrderStartFieldExtended(attrs []ExtendedFieldAttribute) WriteOrder {
	return WriteOrder{kind: orderStartFieldExtended, attrs: attrs}
}

// OrderSetBufferAddress builds a SetBufferAddress order.
func OrderSetBufferAddress(addr int) WriteOrder {
	return WriteOrder{kind: orderSetBufferAddress, addr: addr}
}

// OrderSetAttribute builds a SetAttribute order.
func OrderSetAttribute(efa ExtendedFieldAttribute) WriteOrder {
	return WriteOrder{kind: orderSetAttribute, efa: efa}
}

// OrderModifyField builds a ModifyField order.
func OrderModifyField(attrs []ExtendedFieldAttribute) WriteOrder {
	return WriteOrder{kind: orderModifyField, attrs: attrs}
}

// OrderInsertCursor builds an InsertCursor order.
func OrderInsertCursor(addr int) WriteOrder {
	return WriteOrder{kind: orderInsertCursor, addr: addr}
}

// OrderProgramTab builds a ProgramTab order.
func OrderProgramTab() WriteOrder {
	return WriteOrder{kind: orderProgramTab}
}

// OrderRepeatToAddress builds a RepeatToAddress order.
func OrderRepeatToAddress(addr int, ch rune) WriteOrder {
	return WriteOrder{kind: orderRepeatToAddress, addr: addr, repCh: ch}
}

// OrderEraseUnprotectedToAddress builds an EraseUnprotectedToAddress order.
func OrderEraseUnprotectedToAddress(addr int) WriteOrder {
	return WriteOrder{kind: orderEraseUnprotectedToAddress, addr: addr}
}

// OrderGraphicEscape builds a GraphicEscape order.
func OrderGraphicEscape(b byte) WriteOrder {
	return WriteOrder{kind: orderGraphicEscape, geByte: b}
}

// OrderSendText builds a SendText order.
func OrderSendText(text string) WriteOrder {
	return WriteOrder{kind: orderSendText, text: text}
}

// Serialize appends o's wire encoding to output, returning the extended
// slice and an error if a precondition (attribute list length, address
// range) is violated. Preconditions are checked before any bytes from this
// order are written, so a failing order never leaves a partial encoding
// behind.
func (o WriteOrder) Serialize(output []byte) ([]byte, error) {
	switch o.kind {
	case orderStartField:
		return append(output, opStartField, makeASCIITranslatable(o.fa.Bits())), nil

	case orderStartFieldExtended:
		if len(o.attrs) > maxAttributeListLen {
			return output, InvalidData{Reason: "attribute list exceeds 255 entries"}
		}
		out := append(output, opStartFieldExtended, byte(len(o.attrs)))
		for _, a := range o.attrs {
			out = a.EncodeInto(out)
		}
		return out, nil

	case orderSetBufferAddress:
		b, err := EncodeAddressBytes(o.addr)
		if err != nil {
			return output, err
		}
		return append(output, opSetBufferAddress, b[0], b[1]), nil

	case orderSetAttribute:
		typ, val := o.efa.Encoded()
		return append(output, opSetAttribute, typ, val), nil

	case orderModifyField:
		if len(o.attrs) > maxAttributeListLen {
			return output, InvalidData{Reason: "attribute list exceeds 255 entries"}
		}
		out := append(output, opModifyField, byte(len(o.attrs)))
		for _, a := range o.attrs {
			out = a.EncodeInto(out)
		}
		return out, nil

	case orderInsertCursor:
		b, err := EncodeAddressBytes(o.addr)
		if err != nil {
			return output, err
		}
		return append(output, opInsertCursor, b[0], b[1]), nil

	case orderProgramTab:
		return append(output, opProgramTab), nil

	case orderRepeatToAddress:
		b, err := EncodeAddressBytes(o.addr)
		if err != nil {
			return output, err
		}
		chByte := defaultEncoding.encodeTable()[byte(o.repCh)]
		return append(output, opRepeatToAddress, b[0], b[1], chByte), nil

	case orderEraseUnprotectedToAddress:
		b, err := EncodeAddressBytes(o.addr)
		if err != nil {
			return output, err
		}
		return append(output, opEraseUnprotectedTo, b[0], b[1]), nil

	case orderGraphicEscape:
		return append(output, opGraphicEscape, o.geByte), nil

	case orderSendText:
		return append(output, EncodeASCII(o.text)...), nil

	default:
		panic("tn3270: unreachable orderKind")
	}
}

// Equal reports whether o and other are the same order with the same
// operands, as needed for the stream round-trip property (spec.md §8).
func (o WriteOrder) Equal(other WriteOrder) bool {
	if o.kind != other.kind {
		return false
	}
	switch o.kind {
	case orderStartField:
		return o.fa == other.fa
	case orderStartFieldExtended, orderModifyField:
		if len(o.attrs) != len(other.attrs) {
			return false
		}
		for i := range o.attrs {
			if !o.attrs[i].Equal(other.attrs[i]) {
				return false
			}
		}
		return true
	case orderSetBufferAddress, orderInsertCursor, orderEraseUnprotectedToAddress:
		return o.addr == other.addr
	case orderSetAttribute:
		return o.efa.Equal(other.efa)
	case orderProgramTab:
		return true
	case orderRepeatToAddress:
		return o.addr == other.addr && o.repCh == other.repCh
	case orderGraphicEscape:
		return o.geByte == other.geByte
	case orderSendText:
		return o.text == other.text
	default:
		return false
	}
}
