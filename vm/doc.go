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

// Package vm implements the Intcode virtual machine.
//
// An Intcode program is a flat sequence of signed 64 bits integers (Words),
// usually stored as comma separated decimal values. Programs are loaded with
// Load, Parse or ParseString and run by a Machine created with New.
//
// A Machine communicates with the outside world through a Channel. The
// package provides a Console channel for interactive use, a Buffer channel for
// scripted input and output capture, and Pipe which connects two Queues in
// order to chain several machines together (see package
// github.com/db47h/intcode/pipeline).
//
// Machines can be driven in two ways:
//
//	- Execute runs the program until it halts. Running out of input (or having
//	  output refused) is an error since nothing else can unblock the machine.
//	- Step executes a single instruction and returns a Result. When the
//	  channel has no input available, Step returns Blocked and leaves the
//	  machine untouched so that the same instruction can be retried later,
//	  possibly with a different channel.
//
// Add and Multiply wrap around on overflow, like Go integers do. Use the
// CheckOverflow option to turn overflows into errors.
//
// Malformed programs (unknown opcodes or parameter modes, negative addresses,
// immediate mode write destinations) are reported as errors whose cause is
// either a *DecodeError or an *AddressError. Use errors.Cause from
// github.com/pkg/errors or errors.As to inspect them.
package vm
