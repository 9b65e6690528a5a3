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

package ascii_test

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/db47h/intcode/lang/ascii"
	"github.com/db47h/intcode/vm"
	"github.com/go-quicktest/qt"
)

func TestEncode(t *testing.T) {
	qt.Assert(t, qt.DeepEquals(ascii.Encode("AB\n"), []vm.Word{65, 66, 10}))
	qt.Assert(t, qt.HasLen(ascii.Encode(""), 0))
	qt.Assert(t, qt.DeepEquals(ascii.EncodeLines("A,B", "L"), []vm.Word{65, 44, 66, 10, 76, 10}))
}

func TestDecode(t *testing.T) {
	text, rest := ascii.Decode([]vm.Word{72, 105, 10, 1234, 33, -1, 128})
	qt.Check(t, qt.Equals(text, "Hi\n!"))
	qt.Check(t, qt.DeepEquals(rest, []vm.Word{1234, -1, 128}))

	text, rest = ascii.Decode(nil)
	qt.Check(t, qt.Equals(text, ""))
	qt.Check(t, qt.IsNil(rest))
}

func TestIsChar(t *testing.T) {
	qt.Check(t, qt.IsTrue(ascii.IsChar(0)))
	qt.Check(t, qt.IsTrue(ascii.IsChar(ascii.MaxChar)))
	qt.Check(t, qt.IsFalse(ascii.IsChar(ascii.MaxChar+1)))
	qt.Check(t, qt.IsFalse(ascii.IsChar(-1)))
}

func TestConsole(t *testing.T) {
	var out bytes.Buffer
	w := bufio.NewWriter(&out)
	c := ascii.NewConsole(strings.NewReader("a\r\nb"), w)

	qt.Assert(t, qt.IsTrue(c.Out('>')))
	qt.Assert(t, qt.IsTrue(c.Out(19690720)))
	for _, want := range []vm.Word{'a', '\n', 'b'} {
		v, ok := c.In()
		qt.Assert(t, qt.IsTrue(ok))
		qt.Assert(t, qt.Equals(v, want))
	}
	qt.Check(t, qt.Equals(out.String(), ">19690720\n"))

	_, ok := c.In()
	qt.Check(t, qt.IsFalse(ok))
	qt.Check(t, qt.ErrorIs(c.Err(), io.EOF))
}

// echoes its input until it reads a 0, then outputs 1234.
var echo = []vm.Word{3, 100, 1006, 100, 10, 4, 100, 1105, 1, 0, 104, 1234, 99}

func TestConsole_Execute(t *testing.T) {
	var out bytes.Buffer
	m, err := vm.New(echo)
	qt.Assert(t, qt.IsNil(err))
	c := ascii.NewConsole(strings.NewReader("hello\n\x00"), &out)
	qt.Assert(t, qt.IsNil(m.Execute(c)))
	qt.Check(t, qt.Equals(out.String(), "hello\n1234\n"))
	qt.Check(t, qt.IsNil(c.Err()))
}
