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

package main

import (
	"io"

	"github.com/db47h/intcode/internal/ici"
	"github.com/db47h/intcode/lang/ascii"
	"github.com/db47h/intcode/vm"
)

// printOutput writes the output of a scripted run, one value per line or, in
// ASCII mode, as text followed by any non-character values.
func printOutput(w io.Writer, out []vm.Word, text bool) error {
	ew := ici.NewErrWriter(w)
	if text {
		var s string
		s, out = ascii.Decode(out)
		io.WriteString(ew, s)
	}
	for _, v := range out {
		ew.WriteInt(int64(v))
		ew.Write([]byte{'\n'})
	}
	return ew.Err
}

func dumpMachine(m *vm.Machine, w io.Writer) error {
	return vm.Format(w, m.Memory())
}
