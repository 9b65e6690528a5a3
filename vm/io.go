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
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Channel is the interface between a Machine and the outside world.
//
// Neither method may fail: instead they report that they are not ready, in
// which case the Machine step returns Blocked.
type Channel interface {
	// In returns the next input value. ok is false if no input is available
	// right now.
	In() (v Word, ok bool)
	// Out offers an output value. It returns false if the value cannot be
	// accepted right now, in which case the same value will be offered again.
	Out(v Word) bool
}

// ChannelFuncs is a Channel implemented with a pair of functions. A nil InFunc
// never has any input available, a nil OutFunc accepts and discards all
// values.
type ChannelFuncs struct {
	InFunc  func() (Word, bool)
	OutFunc func(Word) bool
}

// In implements Channel.
func (f ChannelFuncs) In() (Word, bool) {
	if f.InFunc == nil {
		return 0, false
	}
	return f.InFunc()
}

// Out implements Channel.
func (f ChannelFuncs) Out(v Word) bool {
	if f.OutFunc == nil {
		return true
	}
	return f.OutFunc(v)
}

// Queue is a FIFO of Words.
type Queue struct {
	words []Word
}

// NewQueue returns a new Queue holding the given words.
func NewQueue(words ...Word) *Queue {
	return &Queue{words: append([]Word(nil), words...)}
}

// Push appends words at the back of the queue.
func (q *Queue) Push(words ...Word) {
	q.words = append(q.words, words...)
}

// Pop removes and returns the word at the front of the queue. ok is false if
// the queue is empty.
func (q *Queue) Pop() (v Word, ok bool) {
	if len(q.words) == 0 {
		return 0, false
	}
	v, q.words = q.words[0], q.words[1:]
	return v, true
}

// Len returns the number of words in the queue.
func (q *Queue) Len() int {
	return len(q.words)
}

// Words returns a copy of the queue contents, front first.
func (q *Queue) Words() []Word {
	return append([]Word(nil), q.words...)
}

type pipe struct {
	in, out *Queue
}

func (p pipe) In() (Word, bool) { return p.in.Pop() }
func (p pipe) Out(v Word) bool  { p.out.Push(v); return true }

// Pipe returns a Channel that reads its input from in and writes its output to
// out. Chaining machines is done by using the output queue of a machine as the
// input queue of the next.
func Pipe(in, out *Queue) Channel {
	return pipe{in, out}
}

// Buffer is a Channel with preloaded input. It captures all output.
type Buffer struct {
	input  []Word
	pos    int
	output []Word
}

// NewBuffer returns a new Buffer that will provide the given input values, in
// order. Once all input has been consumed, In reports that no input is
// available.
func NewBuffer(input ...Word) *Buffer {
	return &Buffer{input: append([]Word(nil), input...)}
}

// In implements Channel.
func (b *Buffer) In() (Word, bool) {
	if b.pos >= len(b.input) {
		return 0, false
	}
	b.pos++
	return b.input[b.pos-1], true
}

// Out implements Channel.
func (b *Buffer) Out(v Word) bool {
	b.output = append(b.output, v)
	return true
}

// Remaining returns the number of input values not consumed yet.
func (b *Buffer) Remaining() int {
	return len(b.input) - b.pos
}

// Output returns the values written so far.
func (b *Buffer) Output() []Word {
	return b.output
}

type flusher interface {
	Flush() error
}

// Console is a line oriented Channel for interactive use. Each input value is
// read from its own line of text. Output values are written one per line.
type Console struct {
	// Prompt, if not empty, is written before reading each line of input.
	Prompt string

	r    *bufio.Reader
	w    io.Writer
	errw io.Writer
	rerr error
	werr error
}

// NewConsole returns a new Console reading from r and writing to w. Messages
// about invalid input go to errw.
//
// If w has a Flush method, it is called before reading input.
func NewConsole(r io.Reader, w, errw io.Writer) *Console {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Console{r: br, w: w, errw: errw}
}

// In implements Channel. It reads lines until one contains a valid number.
// Invalid lines are reported to the error writer and ignored.
//
// If reading fails, In reports no input and the error is available from Err.
// Reaching the end of input is reported as io.EOF.
func (c *Console) In() (Word, bool) {
	for c.rerr == nil {
		if c.Prompt != "" {
			io.WriteString(c.w, c.Prompt)
		}
		if f, ok := c.w.(flusher); ok {
			f.Flush()
		}
		line, err := c.r.ReadString('\n')
		if err != nil {
			c.rerr = err
			if line == "" {
				break
			}
		}
		line = strings.TrimRight(line, "\r\n")
		v, perr := strconv.ParseInt(line, 10, 64)
		if perr == nil {
			return Word(v), true
		}
		if ne, ok := perr.(*strconv.NumError); ok {
			perr = ne.Err
		}
		fmt.Fprintf(c.errw, "invalid input %q: %v. Enter a valid number.\n", line, perr)
	}
	return 0, false
}

// Out implements Channel. A write error is reported by refusing the value;
// the error is available from Err.
func (c *Console) Out(v Word) bool {
	if c.werr != nil {
		return false
	}
	b := strconv.AppendInt(make([]byte, 0, 24), int64(v), 10)
	if _, err := c.w.Write(append(b, '\n')); err != nil {
		c.werr = err
		return false
	}
	return true
}

// Err returns the I/O error encountered by the Console, if any. Write errors
// take precedence over read errors.
func (c *Console) Err() error {
	if c.werr != nil {
		return c.werr
	}
	return c.rerr
}
