// This file is part of https://github.com/downarowiczd/tn3270/
// Copyright 2026 by Dawid Downarowicz, licensed under the MIT license. See
// LICENSE in the project root for license information.

// Package tn3270 implements the IBM 3270 terminal data stream and its
// telnet (TN3270) framing: EBCDIC encoding, buffer addressing, write
// orders, and the record-oriented session that carries them over a TCP
// connection.
package tn3270
