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

package vm_test

import (
	"testing"

	"github.com/db47h/intcode/vm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	td := []struct {
		w    vm.Word
		insn vm.Instruction
		s    string
	}{
		{1, vm.Instruction{Op: vm.OpAdd}, "add [pos pos pos]"},
		{1002, vm.Instruction{Op: vm.OpMultiply, Modes: [3]vm.Mode{vm.Position, vm.Immediate, vm.Position}}, "mul [pos imm pos]"},
		{203, vm.Instruction{Op: vm.OpIn, Modes: [3]vm.Mode{vm.Relative}}, "in [rel]"},
		{104, vm.Instruction{Op: vm.OpOut, Modes: [3]vm.Mode{vm.Immediate}}, "out [imm]"},
		{1105, vm.Instruction{Op: vm.OpJumpIfTrue, Modes: [3]vm.Mode{vm.Immediate, vm.Immediate}}, "jnz [imm imm]"},
		{6, vm.Instruction{Op: vm.OpJumpIfFalse}, "jz [pos pos]"},
		{21107, vm.Instruction{Op: vm.OpLessThan, Modes: [3]vm.Mode{vm.Immediate, vm.Immediate, vm.Relative}}, "lt [imm imm rel]"},
		{8, vm.Instruction{Op: vm.OpEquals}, "eq [pos pos pos]"},
		{109, vm.Instruction{Op: vm.OpAdjustRB, Modes: [3]vm.Mode{vm.Immediate}}, "arb [imm]"},
		{99, vm.Instruction{Op: vm.OpHalt}, "hlt"},
	}
	for _, d := range td {
		insn, err := vm.Decode(d.w)
		require.NoError(t, err, "%d", d.w)
		assert.Equal(t, d.insn, insn, "%d", d.w)
		assert.Equal(t, d.s, insn.String())
	}
}

func TestDecode_Invalid(t *testing.T) {
	td := []struct {
		w   vm.Word
		msg string
	}{
		{0, "unknown opcode 0"},
		{10, "unknown opcode 10"},
		{98, "unknown opcode 98"},
		{-1, "unknown opcode -1"},
		{301, "invalid mode 3 for parameter 1"},
		{4001, "invalid mode 4 for parameter 2"},
		{90002, "invalid mode 9 for parameter 3"},
	}
	for _, d := range td {
		_, err := vm.Decode(d.w)
		require.Error(t, err, "%d", d.w)
		de, ok := err.(*vm.DecodeError)
		require.True(t, ok, "%d: %T", d.w, err)
		assert.Equal(t, d.w, de.Word)
		assert.Equal(t, d.msg, de.Msg)
	}
}

func TestOpcode(t *testing.T) {
	arity := map[vm.Opcode]int{
		vm.OpAdd: 3, vm.OpMultiply: 3, vm.OpIn: 1, vm.OpOut: 1,
		vm.OpJumpIfTrue: 2, vm.OpJumpIfFalse: 2, vm.OpLessThan: 3,
		vm.OpEquals: 3, vm.OpAdjustRB: 1, vm.OpHalt: 0,
	}
	for op, n := range arity {
		assert.True(t, op.Valid(), "%v", op)
		assert.Equal(t, n, op.Arity(), "%v", op)
	}
	for _, op := range []vm.Opcode{0, 11, 98, 100, -5} {
		assert.False(t, op.Valid())
		assert.Equal(t, -1, op.Arity())
	}
	assert.Equal(t, "op(42)", vm.Opcode(42).String())
	assert.Equal(t, "mode(7)", vm.Mode(7).String())
}
