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

import "math"

func addOverflows(a, b Word) bool {
	s := a + b
	return (a > 0 && b > 0 && s < 0) || (a < 0 && b < 0 && s >= 0)
}

func mulOverflows(a, b Word) bool {
	if a == 0 || b == 0 {
		return false
	}
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return true
	}
	return (a*b)/b != a
}

func (m *Machine) add(a, b Word) Word {
	if m.overflow && addOverflows(a, b) {
		panic(&OverflowError{Op: OpAdd, A: a, B: b})
	}
	return a + b
}

func (m *Machine) mul(a, b Word) Word {
	if m.overflow && mulOverflows(a, b) {
		panic(&OverflowError{Op: OpMultiply, A: a, B: b})
	}
	return a * b
}
