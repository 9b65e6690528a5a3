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
)

var results = []vm.Result{vm.Halted, vm.Blocked, vm.Continue}

func TestJoin(t *testing.T) {
	td := []struct {
		a, b, want vm.Result
	}{
		{vm.Halted, vm.Halted, vm.Halted},
		{vm.Halted, vm.Blocked, vm.Blocked},
		{vm.Halted, vm.Continue, vm.Continue},
		{vm.Blocked, vm.Halted, vm.Blocked},
		{vm.Blocked, vm.Blocked, vm.Blocked},
		{vm.Blocked, vm.Continue, vm.Continue},
		{vm.Continue, vm.Halted, vm.Continue},
		{vm.Continue, vm.Blocked, vm.Continue},
		{vm.Continue, vm.Continue, vm.Continue},
	}
	for _, d := range td {
		assert.Equal(t, d.want, vm.Join(d.a, d.b), "%v, %v", d.a, d.b)
	}
}

func TestJoin_Laws(t *testing.T) {
	for _, a := range results {
		assert.Equal(t, a, vm.Join(a, vm.Halted), "identity")
		assert.Equal(t, a, vm.Join(a, a), "idempotence")
		for _, b := range results {
			assert.Equal(t, vm.Join(a, b), vm.Join(b, a), "commutativity")
			for _, c := range results {
				assert.Equal(t, vm.Join(vm.Join(a, b), c), vm.Join(a, vm.Join(b, c)), "associativity")
			}
		}
	}
}

func TestJoinAll(t *testing.T) {
	assert.Equal(t, vm.Halted, vm.JoinAll())
	assert.Equal(t, vm.Blocked, vm.JoinAll(vm.Halted, vm.Blocked, vm.Halted))
	assert.Equal(t, vm.Continue, vm.JoinAll(vm.Blocked, vm.Continue, vm.Halted))
	assert.Equal(t, "continue", vm.Continue.String())
	assert.Equal(t, "invalid", vm.Result(12).String())
}
