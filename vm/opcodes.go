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
	"strconv"
)

// Opcode is an Intcode operation code.
type Opcode Word

// Intcode opcodes.
const (
	OpAdd         Opcode = 1
	OpMultiply    Opcode = 2
	OpIn          Opcode = 3
	OpOut         Opcode = 4
	OpJumpIfTrue  Opcode = 5
	OpJumpIfFalse Opcode = 6
	OpLessThan    Opcode = 7
	OpEquals      Opcode = 8
	OpAdjustRB    Opcode = 9
	OpHalt        Opcode = 99
)

var opcodes = [...]struct {
	name  string
	arity int
}{
	OpAdd:         {"add", 3},
	OpMultiply:    {"mul", 3},
	OpIn:          {"in", 1},
	OpOut:         {"out", 1},
	OpJumpIfTrue:  {"jnz", 2},
	OpJumpIfFalse: {"jz", 2},
	OpLessThan:    {"lt", 3},
	OpEquals:      {"eq", 3},
	OpAdjustRB:    {"arb", 1},
	OpHalt:        {"hlt", 0},
}

// Valid reports whether op is a known opcode.
func (op Opcode) Valid() bool {
	return op >= 0 && int(op) < len(opcodes) && opcodes[op].name != ""
}

// Arity returns the number of parameters of op, or -1 if op is not a valid
// opcode.
func (op Opcode) Arity() int {
	if !op.Valid() {
		return -1
	}
	return opcodes[op].arity
}

func (op Opcode) String() string {
	if !op.Valid() {
		return "op(" + strconv.Itoa(int(op)) + ")"
	}
	return opcodes[op].name
}

// Mode is a parameter mode.
type Mode Word

// Parameter modes.
const (
	Position  Mode = iota // the parameter is an address
	Immediate             // the parameter is a value
	Relative              // the parameter is an address relative to the relative base
)

func (m Mode) String() string {
	switch m {
	case Position:
		return "pos"
	case Immediate:
		return "imm"
	case Relative:
		return "rel"
	}
	return "mode(" + strconv.Itoa(int(m)) + ")"
}

// Instruction is a decoded instruction: an opcode and the modes of its
// parameters.
type Instruction struct {
	Op    Opcode
	Modes [3]Mode
}

func (i Instruction) String() string {
	n := i.Op.Arity()
	if n <= 0 {
		return i.Op.String()
	}
	return fmt.Sprintf("%v %v", i.Op, i.Modes[:n])
}

// Decode decodes the instruction word w. The two least significant decimal
// digits of w are the opcode, the next three the modes of the first, second
// and third parameter.
//
// The returned error, if any, is a *DecodeError. Its Addr field is left at 0,
// the Machine fills it in.
func Decode(w Word) (Instruction, error) {
	var insn Instruction
	insn.Op = Opcode(w % 100)
	if !insn.Op.Valid() {
		return insn, &DecodeError{Word: w, Msg: "unknown opcode " + strconv.Itoa(int(insn.Op))}
	}
	div := Word(100)
	for k := range insn.Modes {
		m := Mode(w / div % 10)
		if m < Position || m > Relative {
			return insn, &DecodeError{Word: w, Msg: fmt.Sprintf("invalid mode %d for parameter %d", m, k+1)}
		}
		insn.Modes[k] = m
		div *= 10
	}
	return insn, nil
}
