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

// Result is the outcome of a single Machine step.
type Result int

// Step results, in increasing order of precedence for Join.
const (
	Halted   Result = iota // the machine executed a Halt instruction
	Blocked                // the machine is waiting on I/O
	Continue               // an instruction was executed
)

func (r Result) String() string {
	switch r {
	case Halted:
		return "halted"
	case Blocked:
		return "blocked"
	case Continue:
		return "continue"
	}
	return "invalid"
}

// Join merges the results of two machines stepped in the same round: Continue
// wins over Blocked, which wins over Halted. A round of steps is still making
// progress as long as one machine could execute an instruction, and is done
// only when all machines have halted.
//
// Join is commutative and associative, with Halted as identity.
func Join(a, b Result) Result {
	if a > b {
		return a
	}
	return b
}

// JoinAll returns the Join of all results. It returns Halted if rs is empty.
func JoinAll(rs ...Result) Result {
	r := Halted
	for _, s := range rs {
		r = Join(r, s)
	}
	return r
}
