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

// The intcode command line tool loads and runs Intcode programs.
//
// Usage:
//
//	intcode [flags] [filename]
//
//	-amp phases
//		  run an amplifier network with the given comma separated phases
//	-ascii
//		  ASCII mode: input and output are text
//	-debug
//		  enable debug diagnostics
//	-disasm
//		  disassemble the program and exit
//	-dump
//		  dump memory image upon exit
//	-feedback
//		  connect the last amplifier to the first one
//	-image filename
//		  Load program image from file filename
//	-input values
//		  comma separated values to use as input instead of the console
//	-log string
//		  log format: console or json (default "console")
//	-loglevel level
//		  log level: trace, debug, info, warn, error, fatal, panic or disabled (default "warn")
//	-noprompt
//		  do not prompt for input
//	-o filename
//		  save memory image upon exit to file filename
//	-overflow
//		  fail on integer overflow
//	-set addr=value
//		  set memory cell before running (can be specified multiple times)
//	-trace
//		  log every executed instruction
//	-v
//		  log run statistics
//
// -image: the program image is a text file of comma separated integers. The
// file name can also be given as the first argument.
//
// Without -input, the program reads its input from the console, one number
// per line, and writes its output one number per line. When stdin is a
// terminal, a "? " prompt is shown before reading, unless -noprompt is set.
// Invalid lines are reported and ignored.
//
// -input: the program reads its input from the given values and its output is
// printed when it halts. The program must not read more values than given.
//
// -ascii: input and output values are ASCII characters. With -input, the value
// of the flag is used as text, with a newline added if missing. Output values
// outside of the ASCII range are printed as numbers on their own line.
//
// -set: patches the memory image before running. For example, to run a
// program with 12 and 2 at addresses 1 and 2:
//
//	intcode -set 1=12 -set 2=2 -dump program.txt
//
// -amp: runs one machine per phase setting, each one feeding its output to the
// next one. The first machine also gets the -input values, or 0 if not set.
// With -feedback, the output of the last machine goes back to the first one.
// The output of the network is printed when all machines have halted:
//
//	intcode -amp 9,8,7,6,5 -feedback amps.txt
//
// -amp cannot be combined with -disasm, -dump or -o, and -feedback requires
// -amp.
//
// -dump, -o: print or save the memory image when the program halts, in the
// same format as program images.
//
// -overflow: by default, additions and multiplications wrap around on
// overflow. This flag makes them fail instead.
//
// -loglevel, -trace, -v, -log: logs go to stderr. -trace logs every executed
// instruction and implies -v. Both can only lower the level set with
// -loglevel.
//
// -debug: will print a full stacktrace and the machine state should the
// program crash.
package main
