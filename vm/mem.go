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

// Memory is a Machine's memory. It is conceptually infinite: reading past the
// end returns 0, and writing past the end grows it, filling the gap with
// zeros. Negative addresses are always invalid.
//
// Memory does not grow past MaxMemSize Words: writing at or above that address
// is an error.
type Memory []Word

// MaxMemSize is the maximum size of a Memory, in Words (1 GiB).
const MaxMemSize = 1 << 27

// Read returns the value at address addr.
func (m Memory) Read(addr Word) (Word, error) {
	if addr < 0 {
		return 0, &AddressError{Addr: addr, Msg: "negative address"}
	}
	if addr >= Word(len(m)) {
		return 0, nil
	}
	return m[addr], nil
}

func checkWrite(addr Word) error {
	switch {
	case addr < 0:
		return &AddressError{Addr: addr, Msg: "negative address"}
	case addr >= MaxMemSize:
		return &AddressError{Addr: addr, Msg: "address out of range"}
	}
	return nil
}

// Write stores v at address addr, growing memory if needed.
func (m *Memory) Write(addr, v Word) error {
	if err := checkWrite(addr); err != nil {
		return err
	}
	if l := Word(len(*m)); addr >= l {
		*m = append(*m, make([]Word, addr-l+1)...)
	}
	(*m)[addr] = v
	return nil
}

// load and store are used by the core and panic on error. The panic is
// recovered by Machine.Step.

func (m Memory) load(addr Word) Word {
	v, err := m.Read(addr)
	if err != nil {
		panic(err)
	}
	return v
}

func (m *Memory) store(addr, v Word) {
	if err := m.Write(addr, v); err != nil {
		panic(err)
	}
}
