// This file is part of intcode - https://github.com/db47h/intcode
//
// Copyright 2019 Denis Bernard <db047h@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vm

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrBlocked is the cause of errors returned when a machine, or a whole
// network of machines, is blocked on I/O with nothing left that could unblock
// it.
var ErrBlocked = errors.New("blocked on I/O")

// DecodeError is returned when the word at the instruction pointer is not a
// valid instruction.
type DecodeError struct {
	Addr Word // address of the instruction
	Word Word // raw instruction word
	Msg  string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode error at %d: %s (instruction %d)", e.Addr, e.Msg, e.Word)
}

// AddressError is returned on attempts to access a negative address or to
// write to an immediate mode parameter.
type AddressError struct {
	Addr Word
	Msg  string
}

func (e *AddressError) Error() string {
	return fmt.Sprintf("address error: %s: %d", e.Msg, e.Addr)
}

// OverflowError is returned by Add and Multiply when overflow checking is
// enabled.
type OverflowError struct {
	Op   Opcode
	A, B Word
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("integer overflow: %v %d, %d", e.Op, e.A, e.B)
}

// ParseError is returned when loading a malformed program image.
type ParseError struct {
	Pos   int // token index, starting at 0
	Token string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error: token %d %q: %v", e.Pos, e.Token, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
