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
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Word is the raw type stored in a memory location. Addresses, operands and
// I/O values are all Words.
type Word int64

// Machine represents an Intcode VM instance.
type Machine struct {
	IP       Word // Instruction Pointer
	RB       Word // Relative Base
	mem      Memory
	insn     Instruction
	insCount int64
	overflow bool
	log      zerolog.Logger
}

// Option interface
type Option func(*Machine) error

// MemSize preallocates memory for size Words. Memory grows as needed anyway,
// this only saves reallocations for programs that use a lot of it. size must
// not exceed MaxMemSize.
func MemSize(size int) Option {
	return func(m *Machine) error {
		if size < 0 || size > MaxMemSize {
			return errors.Errorf("invalid memory size %d", size)
		}
		if size > cap(m.mem) {
			mem := make(Memory, len(m.mem), size)
			copy(mem, m.mem)
			m.mem = mem
		}
		return nil
	}
}

// CheckOverflow enables or disables overflow checking for the Add and Multiply
// instructions. When enabled, an overflow stops the machine with an
// *OverflowError. The default is false: results wrap around.
func CheckOverflow(check bool) Option {
	return func(m *Machine) error { m.overflow = check; return nil }
}

// Logger sets the logger used to trace instruction execution. Every decoded
// instruction is logged at debug level. The default logger discards
// everything.
func Logger(l zerolog.Logger) Option {
	return func(m *Machine) error { m.log = l; return nil }
}

// Poke sets the memory cell at addr to v before execution starts. A common
// use is to patch the inputs of programs that take their parameters from
// fixed memory locations.
func Poke(addr, v Word) Option {
	return func(m *Machine) error {
		return errors.Wrap(m.mem.Write(addr, v), "Poke")
	}
}

// SetOptions sets the provided options.
func (m *Machine) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return err
		}
	}
	return nil
}

// New creates a new Intcode machine.
//
// The image is copied, so the same program image can be reused to create any
// number of independent machines.
//
// Options will be set by calling SetOptions.
func New(image []Word, opts ...Option) (*Machine, error) {
	m := &Machine{
		mem: append(make(Memory, 0, len(image)), image...),
		log: zerolog.Nop(),
	}
	if err := m.SetOptions(opts...); err != nil {
		return nil, err
	}
	return m, nil
}

// Peek returns the value of the memory cell at addr. Cells past the end of
// memory read as 0.
func (m *Machine) Peek(addr Word) (Word, error) {
	return m.mem.Read(addr)
}

// Memory returns a copy of the machine's memory.
func (m *Machine) Memory() []Word {
	return append([]Word(nil), m.mem...)
}

// Instruction returns the last decoded instruction.
func (m *Machine) Instruction() Instruction {
	return m.insn
}

// InstructionCount returns the number of instructions executed so far. Halt
// and blocked I/O instructions are not counted.
func (m *Machine) InstructionCount() int64 {
	return m.insCount
}
