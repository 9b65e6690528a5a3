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

package asm

import (
	"fmt"
	"io"
	"strconv"

	"github.com/db47h/intcode/internal/ici"
	"github.com/db47h/intcode/vm"
)

func writeOperand(ew *ici.ErrWriter, m vm.Mode, v vm.Word) {
	switch m {
	case vm.Immediate:
		ew.WriteInt(int64(v))
	case vm.Relative:
		if v < 0 {
			io.WriteString(ew, "[rb-")
			io.WriteString(ew, strconv.FormatUint(uint64(-v), 10))
		} else {
			io.WriteString(ew, "[rb+")
			ew.WriteInt(int64(v))
		}
		ew.Write([]byte{']'})
	default:
		ew.Write([]byte{'['})
		ew.WriteInt(int64(v))
		ew.Write([]byte{']'})
	}
}

// Disassemble writes a disassembly of the instruction in mem at position pc to
// the specified io.Writer and returns the position of the next instruction and
// any write error.
//
// Words that do not decode to a valid instruction are written as data. If the
// instruction is truncated by the end of mem, missing operands are written as
// "???". A pc outside of mem is written as "???" and next is len(mem).
func Disassemble(mem []vm.Word, pc int, w io.Writer) (next int, err error) {
	ew, _ := w.(*ici.ErrWriter)
	if ew == nil {
		ew = ici.NewErrWriter(w)
	}

	if pc < 0 || pc >= len(mem) {
		io.WriteString(ew, "???")
		return len(mem), ew.Err
	}
	insn, derr := vm.Decode(mem[pc])
	if derr != nil {
		io.WriteString(ew, ".dat ")
		ew.WriteInt(int64(mem[pc]))
		return pc + 1, ew.Err
	}
	io.WriteString(ew, insn.Op.String())
	pc++
	for k := 0; k < insn.Op.Arity(); k++ {
		if k == 0 {
			ew.Write([]byte{' '})
		} else {
			io.WriteString(ew, ", ")
		}
		if pc >= len(mem) {
			io.WriteString(ew, "???")
			return pc, ew.Err
		}
		writeOperand(ew, insn.Modes[k], mem[pc])
		pc++
	}
	return pc, ew.Err
}

// DisassembleAll writes a disassembly of all words in the given slice to the
// specified io.Writer. The base argument specifies the real address of the
// first word (mem[0]). It will return any write error.
func DisassembleAll(mem []vm.Word, base int, w io.Writer) error {
	ew := ici.NewErrWriter(w)
	for pc := 0; pc < len(mem); {
		fmt.Fprintf(ew, "%6d\t", base+pc)
		pc, _ = Disassemble(mem, pc, ew)
		ew.Write([]byte{'\n'})
		if ew.Err != nil {
			return ew.Err
		}
	}
	return nil
}
