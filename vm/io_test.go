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
	"bufio"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsole_In(t *testing.T) {
	var out, errs bytes.Buffer
	c := vm.NewConsole(strings.NewReader("abc\n12\r\n\n99999999999999999999\n-7"), &out, &errs)

	v, ok := c.In()
	require.True(t, ok)
	assert.Equal(t, vm.Word(12), v)
	assert.Equal(t, "invalid input \"abc\": invalid syntax. Enter a valid number.\n", errs.String())

	errs.Reset()
	v, ok = c.In()
	require.True(t, ok)
	assert.Equal(t, vm.Word(-7), v)
	assert.Contains(t, errs.String(), `invalid input "": invalid syntax`)
	assert.Contains(t, errs.String(), `invalid input "99999999999999999999": value out of range`)

	_, ok = c.In()
	assert.False(t, ok)
	assert.Equal(t, io.EOF, c.Err())
	assert.Zero(t, out.Len())
}

func TestConsole_Prompt(t *testing.T) {
	var out bytes.Buffer
	w := bufio.NewWriter(&out)
	c := vm.NewConsole(strings.NewReader("1\n"), w, io.Discard)
	c.Prompt = "? "

	require.True(t, c.Out(10))
	assert.Zero(t, out.Len(), "output should be buffered")
	_, ok := c.In()
	require.True(t, ok)
	assert.Equal(t, "10\n? ", out.String(), "output should be flushed before reading")
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, io.ErrClosedPipe }

func TestConsole_Out(t *testing.T) {
	var out bytes.Buffer
	c := vm.NewConsole(strings.NewReader("5\n"), &out, io.Discard)
	assert.True(t, c.Out(-1))
	assert.True(t, c.Out(1125899906842624))
	assert.Equal(t, "-1\n1125899906842624\n", out.String())

	c = vm.NewConsole(strings.NewReader("5\n"), failWriter{}, io.Discard)
	assert.False(t, c.Out(1))
	assert.Equal(t, io.ErrClosedPipe, c.Err())
	// reads are still possible
	v, ok := c.In()
	assert.True(t, ok)
	assert.Equal(t, vm.Word(5), v)
}

func TestConsole_Execute(t *testing.T) {
	var out bytes.Buffer
	m, err := vm.New(cmp8)
	require.NoError(t, err)
	require.NoError(t, m.Execute(vm.NewConsole(strings.NewReader("8\n"), &out, io.Discard)))
	assert.Equal(t, "1000\n", out.String())

	m, err = vm.New(cmp8)
	require.NoError(t, err)
	c := vm.NewConsole(strings.NewReader(""), &out, io.Discard)
	err = m.Execute(c)
	assert.Equal(t, vm.ErrBlocked, errors.Cause(err))
	assert.Equal(t, io.EOF, c.Err())
}

func TestBuffer(t *testing.T) {
	b := vm.NewBuffer(1, 2)
	assert.Equal(t, 2, b.Remaining())
	v, ok := b.In()
	assert.True(t, ok)
	assert.Equal(t, vm.Word(1), v)
	v, ok = b.In()
	assert.True(t, ok)
	assert.Equal(t, vm.Word(2), v)
	_, ok = b.In()
	assert.False(t, ok)
	assert.Equal(t, 0, b.Remaining())

	assert.Empty(t, b.Output())
	assert.True(t, b.Out(3))
	assert.True(t, b.Out(4))
	assert.Equal(t, []vm.Word{3, 4}, b.Output())
}

func TestQueue(t *testing.T) {
	q := vm.NewQueue(1)
	q.Push(2, 3)
	assert.Equal(t, 3, q.Len())
	assert.Equal(t, []vm.Word{1, 2, 3}, q.Words())

	for _, want := range []vm.Word{1, 2, 3} {
		v, ok := q.Pop()
		require.True(t, ok)
		assert.Equal(t, want, v)
	}
	_, ok := q.Pop()
	assert.False(t, ok)
	assert.Empty(t, q.Words())
}

func TestPipe(t *testing.T) {
	in, out := vm.NewQueue(5), vm.NewQueue()
	p := vm.Pipe(in, out)
	v, ok := p.In()
	require.True(t, ok)
	assert.Equal(t, vm.Word(5), v)
	_, ok = p.In()
	assert.False(t, ok)

	assert.True(t, p.Out(6))
	assert.Equal(t, []vm.Word{6}, out.Words())
	assert.Zero(t, in.Len())
}

func TestPipe_Chain(t *testing.T) {
	// two echo machines chained: a -> q1 -> b -> q2
	q0, q1, q2 := vm.NewQueue(), vm.NewQueue(), vm.NewQueue()
	a, err := vm.New(C{3, 0, 4, 0, 99})
	require.NoError(t, err)
	b, err := vm.New(C{3, 0, 1001, 0, 1, 0, 4, 0, 99})
	require.NoError(t, err)

	r, err := b.Step(vm.Pipe(q1, q2))
	require.NoError(t, err)
	assert.Equal(t, vm.Blocked, r)

	q0.Push(41)
	require.NoError(t, a.Execute(vm.Pipe(q0, q1)))
	require.NoError(t, b.Execute(vm.Pipe(q1, q2)))
	assert.Equal(t, []vm.Word{42}, q2.Words())
}

func TestChannelFuncs(t *testing.T) {
	var c vm.ChannelFuncs
	_, ok := c.In()
	assert.False(t, ok)
	assert.True(t, c.Out(1))

	n := vm.Word(0)
	c.InFunc = func() (vm.Word, bool) { n++; return n, true }
	v, ok := c.In()
	assert.True(t, ok)
	assert.Equal(t, vm.Word(1), v)
}
