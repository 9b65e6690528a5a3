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

// Package ascii provides utility functions and types to talk to Intcode
// programs that use ASCII text for their input and output.
//
// Such programs read and write one character per value. Values outside of the
// ASCII range are usually numeric results and are reported separately.
package ascii

import (
	"bufio"
	"io"
	"strings"

	"github.com/db47h/intcode/internal/ici"
	"github.com/db47h/intcode/vm"
)

// MaxChar is the largest value considered to be an ASCII character.
const MaxChar = 127

// IsChar reports whether v is an ASCII character.
func IsChar(v vm.Word) bool {
	return v >= 0 && v <= MaxChar
}

// Encode returns the values of the bytes of s.
func Encode(s string) []vm.Word {
	ws := make([]vm.Word, len(s))
	for i := 0; i < len(s); i++ {
		ws[i] = vm.Word(s[i])
	}
	return ws
}

// EncodeLines encodes the given lines, each one terminated by a newline.
func EncodeLines(lines ...string) []vm.Word {
	var sb strings.Builder
	for _, l := range lines {
		sb.WriteString(l)
		sb.WriteByte('\n')
	}
	return Encode(sb.String())
}

// Decode splits ws into text and non-character values. The order of values
// is preserved within each part.
func Decode(ws []vm.Word) (text string, rest []vm.Word) {
	var sb strings.Builder
	for _, v := range ws {
		if IsChar(v) {
			sb.WriteByte(byte(v))
		} else {
			rest = append(rest, v)
		}
	}
	return sb.String(), rest
}

type flusher interface {
	Flush() error
}

// Console is a vm.Channel that reads characters from an io.Reader and writes
// characters to an io.Writer. Carriage returns in the input are dropped.
//
// Output values that are not ASCII characters are written as decimal numbers
// on a line of their own.
type Console struct {
	r    *bufio.Reader
	w    *ici.ErrWriter
	uw   io.Writer
	rerr error
}

// NewConsole returns a new Console reading from r and writing to w. If w has a
// Flush method, it is called before reading input.
func NewConsole(r io.Reader, w io.Writer) *Console {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Console{r: br, w: ici.NewErrWriter(w), uw: w}
}

// In implements vm.Channel.
func (c *Console) In() (vm.Word, bool) {
	if f, ok := c.uw.(flusher); ok {
		f.Flush()
	}
	for c.rerr == nil {
		b, err := c.r.ReadByte()
		if err != nil {
			c.rerr = err
			break
		}
		if b != '\r' {
			return vm.Word(b), true
		}
	}
	return 0, false
}

// Out implements vm.Channel.
func (c *Console) Out(v vm.Word) bool {
	if IsChar(v) {
		c.w.Write([]byte{byte(v)})
	} else {
		c.w.WriteInt(int64(v))
		c.w.Write([]byte{'\n'})
	}
	return c.w.Err == nil
}

// Err returns the first I/O error encountered by the Console, if any. Write
// errors take precedence over read errors. Reaching the end of input is
// reported as io.EOF.
func (c *Console) Err() error {
	if c.w.Err != nil {
		return c.w.Err
	}
	return c.rerr
}
