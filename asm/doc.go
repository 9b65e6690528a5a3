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

// Package asm provides an Intcode disassembler.
//
// Each instruction is written as its mnemonic followed by its operands,
// separated by commas:
//
//	opcode	asm	operands	description
//	------	---	--------	-----------------------------------------------
//	1	add	a, b, dst	dst = a + b
//	2	mul	a, b, dst	dst = a * b
//	3	in	dst		read a value from input into dst
//	4	out	a		write a to output
//	5	jnz	a, target	jump to target if a != 0
//	6	jz	a, target	jump to target if a == 0
//	7	lt	a, b, dst	dst = 1 if a < b, 0 otherwise
//	8	eq	a, b, dst	dst = 1 if a == b, 0 otherwise
//	9	arb	a		add a to the relative base
//	99	hlt			halt
//
// Operands are formatted according to their mode:
//
//	[42]		position mode: the word at address 42
//	42		immediate mode: the value 42
//	[rb+42]		relative mode: the word at address rb+42
//	[rb-42]		relative mode with a negative offset
//
// Words that are not valid instructions are shown as data:
//
//	.dat 1234
//
// Since Intcode programs freely mix code and data, the disassembly of data
// words that happen to look like instructions will be garbage.
package asm
