// This file is part of https://github.com/downarowiczd/tn3270/
// Copyright 2026 by Dawid Downarowicz, licensed under the MIT license. See
// LICENSE in the project root for license information.

package tn3270

// WriteCommand is a complete outbound 3270 write command: an opcode, a
// write-control-character, and the ordered list of write orders that make
// up the payload.
type WriteCommand struct {
	Command byte
	WCC     WCC
	Orders  []WriteOrder
}

// Serialize produces the byte-exact wire form of cmd: the command opcode,
// the WCC byte, then each order in sequence. The same WriteCommand value
// always produces the same byte sequence.
func (cmd WriteCommand) Serialize() ([]byte, error) {
	out := make([]byte, 0, 2+len(cmd.Orders)*4)
	out = append(out, cmd.Command, cmd.WCC.Byte())

	var err error
	for _, order := range cmd.Orders {
		out, err = order.Serialize(out)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// IncomingRecord is a parsed inbound submission: which AID key the operator
// pressed, the cursor's buffer address at submission time, and the ordered
// list of write orders the terminal sent describing modified fields.
type IncomingRecord struct {
	AID    AID
	Addr   int
	Orders []WriteOrder
}

// ParseRecord parses a complete, EOR-delimited record (after telnet-layer
// unescaping and EOR stripping) into an IncomingRecord.
func ParseRecord(record []byte) (IncomingRecord, error) {
	if len(record) < 3 {
		return IncomingRecord{}, UnexpectedEOR{Reason: "record shorter than AID+address"}
	}

	aid, err := AIDFromByte(record[0])
	if err != nil {
		return IncomingRecord{}, err
	}

	addr, err := DecodeAddressBytes(record[1], record[2])
	if err != nil {
		return IncomingRecord{}, err
	}

	result := IncomingRecord{AID: aid, Addr: addr}

	rest := record[3:]
	for len(rest) > 0 {
		op := rest[0]
		switch {
		case op == opStartField:
			if len(rest) < 2 {
				return IncomingRecord{}, UnexpectedEOR{Reason: "StartField missing operand"}
			}
			fa, err := FieldAttributeFromBits(rest[1] & 0x3F)
			if err != nil {
				return IncomingRecord{}, err
			}
			result.Orders = append(result.Orders, OrderStartField(fa))
			rest = rest[2:]

		case op == opStartFieldExtended:
			attrs, consumed, err := parseExtendedList(rest)
			if err != nil {
				return IncomingRecord{}, err
			}
			result.Orders = append(result.Orders, OrderStartFieldExtended(attrs))
			rest = rest[consumed:]

		case op == opSetBufferAddress:
			if len(rest) < 3 {
				return IncomingRecord{}, UnexpectedEOR{Reason: "SetBufferAddress missing operand"}
			}
			a, err := DecodeAddressBytes(rest[1], rest[2])
			if err != nil {
				return IncomingRecord{}, err
			}
			result.Orders = append(result.Orders, OrderSetBufferAddress(a))
			rest = rest[3:]

		case op == opSetAttribute:
			if len(rest) < 3 {
				return IncomingRecord{}, UnexpectedEOR{Reason: "SetAttribute missing operand"}
			}
			efa, err := ParseExtendedFieldAttribute(rest[1], rest[2])
			if err != nil {
				return IncomingRecord{}, err
			}
			result.Orders = append(result.Orders, OrderSetAttribute(efa))
			rest = rest[3:]

		case op == opModifyField:
			attrs, consumed, err := parseExtendedList(rest)
			if err != nil {
				return IncomingRecord{}, err
			}
			result.Orders = append(result.Orders, OrderModifyField(attrs))
			rest = rest[consumed:]

		case op == opInsertCursor:
			if len(rest) < 3 {
				return IncomingRecord{}, UnexpectedEOR{Reason: "InsertCursor missing operand"}
			}
			a, err := DecodeAddressBytes(rest[1], rest[2])
			if err != nil {
				return IncomingRecord{}, err
			}
			result.Orders = append(result.Orders, OrderInsertCursor(a))
			rest = rest[3:]

		case op == opProgramTab:
			result.Orders = append(result.Orders, OrderProgramTab())
			rest = rest[1:]

		case op == opRepeatToAddress:
			// 4-byte order: opcode + 2 address bytes + 1 character byte. The
			// source this was ported from miscounts this as a 5-byte order
			// and drops the wrong byte as a result; fixed here.
			if len(rest) < 4 {
				return IncomingRecord{}, UnexpectedEOR{Reason: "RepeatToAddress missing operand"}
			}
			a, err := DecodeAddressBytes(rest[1], rest[2])
			if err != nil {
				return IncomingRecord{}, err
			}
			ch := rune(defaultEncoding.decodeTable()[rest[3]])
			result.Orders = append(result.Orders, OrderRepeatToAddress(a, ch))
			rest = rest[4:]

		case op == opEraseUnprotectedTo:
			if len(rest) < 3 {
				return IncomingRecord{}, UnexpectedEOR{Reason: "EraseUnprotectedToAddress missing operand"}
			}
			a, err := DecodeAddressBytes(rest[1], rest[2])
			if err != nil {
				return IncomingRecord{}, err
			}
			result.Orders = append(result.Orders, OrderEraseUnprotectedToAddress(a))
			rest = rest[3:]

		case op == opGraphicEscape:
			if len(rest) < 2 {
				return IncomingRecord{}, UnexpectedEOR{Reason: "GraphicEscape missing operand"}
			}
			result.Orders = append(result.Orders, OrderGraphicEscape(rest[1]))
			rest = rest[2:]

		case op >= 0x40:
			runLen := 0
			for runLen < len(rest) && rest[runLen] >= 0x40 {
				runLen++
			}
			tbl := defaultEncoding.decodeTable()
			chars := make([]rune, runLen)
			for i := 0; i < runLen; i++ {
				chars[i] = rune(tbl[rest[i]])
			}
			result.Orders = append(result.Orders, OrderSendText(string(chars)))
			rest = rest[runLen:]

		default:
			return IncomingRecord{}, InvalidData{Reason: "unknown write order opcode"}
		}
	}

	return result, nil
}

// parseExtendedList parses the shared "count, [type,val]*count" body used by
// StartFieldExtended and ModifyField, returning the decoded attributes and
// the number of bytes consumed (including the 2-byte header).
func parseExtendedList(rest []byte) ([]ExtendedFieldAttribute, int, error) {
	if len(rest) < 2 {
		return nil, 0, UnexpectedEOR{Reason: "attribute list missing count"}
	}
	count := int(rest[1])
	if len(rest) < 2+count*2 {
		return nil, 0, UnexpectedEOR{Reason: "attribute list shorter than declared count"}
	}

	attrs := make([]ExtendedFieldAttribute, count)
	for i := 0; i < count; i++ {
		off := 2 + i*2
		efa, err := ParseExtendedFieldAttribute(rest[off], rest[off+1])
		if err != nil {
			return nil, 0, err
		}
		attrs[i] = efa
	}
	return attrs, 2 + count*2, nil
}
