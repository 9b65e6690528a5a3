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
	"runtime"

	"github.com/pkg/errors"
)

// operand returns the raw value of parameter n of the current instruction.
func (m *Machine) operand(n int) Word {
	return m.mem.load(m.IP + Word(n) + 1)
}

// param returns the value of parameter n, according to its mode.
func (m *Machine) param(n int) Word {
	v := m.operand(n)
	switch m.insn.Modes[n] {
	case Immediate:
		return v
	case Relative:
		return m.mem.load(m.RB + v)
	default:
		return m.mem.load(v)
	}
}

// addr returns the destination address of parameter n.
func (m *Machine) addr(n int) Word {
	v := m.operand(n)
	switch m.insn.Modes[n] {
	case Position:
		return v
	case Relative:
		return m.RB + v
	default:
		panic(&AddressError{Addr: v, Msg: "immediate mode write destination"})
	}
}

func (m *Machine) store(n int, v Word) {
	m.mem.store(m.addr(n), v)
}

func bool2Word(b bool) Word {
	if b {
		return 1
	}
	return 0
}

// Step executes a single instruction, using c for I/O.
//
// If c has no input available for an In instruction, or refuses the value of
// an Out instruction, Step returns Blocked and the machine is left unchanged:
// the same instruction will be retried on the next call. A halted machine keeps
// returning Halted.
//
// If an error occurs, the IP will point to the instruction that triggered the
// error. Such errors are fatal: the program is malformed. Runtime panics, like
// those raised by a faulty Channel, are not recovered.
func (m *Machine) Step(c Channel) (r Result, err error) {
	defer func() {
		if e := recover(); e != nil {
			switch e := e.(type) {
			case runtime.Error:
				// not a program fault
				panic(e)
			case error:
				r, err = Halted, errors.Wrapf(e, "@ip=%d rb=%d", m.IP, m.RB)
			default:
				panic(e)
			}
		}
	}()

	w := m.mem.load(m.IP)
	insn, err := Decode(w)
	if err != nil {
		err.(*DecodeError).Addr = m.IP
		panic(err)
	}
	m.insn = insn
	m.log.Debug().Int64("ip", int64(m.IP)).Int64("rb", int64(m.RB)).Stringer("insn", insn).Msg("step")

	switch insn.Op {
	case OpAdd:
		m.store(2, m.add(m.param(0), m.param(1)))
		m.IP += 4
	case OpMultiply:
		m.store(2, m.mul(m.param(0), m.param(1)))
		m.IP += 4
	case OpIn:
		// resolve the destination first so that a bad address does not
		// consume any input.
		addr := m.addr(0)
		if err := checkWrite(addr); err != nil {
			panic(err)
		}
		v, ok := c.In()
		if !ok {
			return Blocked, nil
		}
		m.mem.store(addr, v)
		m.IP += 2
	case OpOut:
		if !c.Out(m.param(0)) {
			return Blocked, nil
		}
		m.IP += 2
	case OpJumpIfTrue:
		if m.param(0) != 0 {
			m.IP = m.param(1)
		} else {
			m.IP += 3
		}
	case OpJumpIfFalse:
		if m.param(0) == 0 {
			m.IP = m.param(1)
		} else {
			m.IP += 3
		}
	case OpLessThan:
		m.store(2, bool2Word(m.param(0) < m.param(1)))
		m.IP += 4
	case OpEquals:
		m.store(2, bool2Word(m.param(0) == m.param(1)))
		m.IP += 4
	case OpAdjustRB:
		m.RB += m.param(0)
		m.IP += 2
	case OpHalt:
		return Halted, nil
	}
	m.insCount++
	return Continue, nil
}

// Execute runs the program until it halts, using c for I/O.
//
// Since nothing but c can provide input to the machine, a Blocked step is an
// error whose cause is ErrBlocked.
func (m *Machine) Execute(c Channel) error {
	for {
		r, err := m.Step(c)
		if err != nil {
			return err
		}
		switch r {
		case Halted:
			return nil
		case Blocked:
			return errors.Wrapf(ErrBlocked, "@ip=%d rb=%d: %v", m.IP, m.RB, m.insn)
		}
	}
}
