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

package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/db47h/intcode/asm"
	"github.com/db47h/intcode/internal/log"
	"github.com/db47h/intcode/lang/ascii"
	"github.com/db47h/intcode/pipeline"
	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
)

var (
	debug        bool
	dump         bool
	disasm       bool
	textIO       bool
	feedback     bool
	noPrompt     bool
	overflow     bool
	trace        bool
	verbose      bool
	outFileName  string
	logType      string
	logLevelName string
	input        string
	pokes        pokeList
	phases       wordList
)

// channel is a vm.Channel that can report I/O errors.
type channel interface {
	vm.Channel
	Err() error
}

func newConsole(stdout *bufio.Writer) channel {
	if textIO {
		return ascii.NewConsole(os.Stdin, stdout)
	}
	c := vm.NewConsole(os.Stdin, stdout, os.Stderr)
	if !noPrompt && isTerminal(os.Stdin) {
		c.Prompt = "? "
	}
	return c
}

// scriptedInput returns the words to feed the machine from the -input flag.
func scriptedInput() ([]vm.Word, error) {
	if textIO {
		if !strings.HasSuffix(input, "\n") {
			input += "\n"
		}
		return ascii.Encode(input), nil
	}
	ws, err := vm.ParseString(input)
	return ws, errors.Wrap(err, "invalid -input")
}

func initLog() error {
	typ, err := log.ParseType(logType)
	if err != nil {
		return err
	}
	lvl, err := logLevel()
	if err != nil {
		return err
	}
	log.Init(log.Options{Level: lvl, Type: typ})
	return nil
}

func amplify(img []vm.Word, opts []vm.Option, w io.Writer) error {
	ms := make([]*vm.Machine, len(phases))
	for k := range ms {
		m, err := vm.New(img, opts...)
		if err != nil {
			return err
		}
		ms[k] = m
	}
	n := pipeline.New(ms, feedback)
	n.SetLogger(log.Pipeline)
	for k, p := range phases {
		n.Seed(k, p)
	}
	in := []vm.Word{0}
	if input != "" {
		var err error
		if in, err = scriptedInput(); err != nil {
			return err
		}
	}
	n.Seed(0, in...)

	start := time.Now()
	if err := n.Run(); err != nil {
		return err
	}
	log.Root.Info().Int("rounds", n.Rounds()).Dur("elapsed", time.Since(start)).Msg("network halted")
	return printOutput(w, n.Output(), textIO)
}

func execute(m *vm.Machine, c vm.Channel) error {
	start := time.Now()
	err := m.Execute(c)
	log.Root.Info().Int64("instructions", m.InstructionCount()).Dur("elapsed", time.Since(start)).Msg("halted")
	return err
}

func run(m *vm.Machine, stdout *bufio.Writer) error {
	if input != "" {
		in, err := scriptedInput()
		if err != nil {
			return err
		}
		buf := vm.NewBuffer(in...)
		err = execute(m, buf)
		if errors.Cause(err) == vm.ErrBlocked {
			return errors.Wrap(err, "input exhausted")
		} else if err != nil {
			return err
		}
		return printOutput(stdout, buf.Output(), textIO)
	}

	c := newConsole(stdout)
	err := execute(m, c)
	if errors.Cause(err) == vm.ErrBlocked {
		switch cerr := c.Err(); {
		case cerr == io.EOF:
			return errors.Wrap(err, "unexpected end of input")
		case cerr != nil:
			return errors.Wrap(cerr, "console I/O failed")
		}
	}
	return err
}

func atExit(m *vm.Machine, err error) {
	if err == nil {
		return
	}
	if !debug {
		fmt.Fprintf(os.Stderr, "\n%v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "\n%+v\n", err)
	if m != nil {
		w, _ := m.Peek(m.IP)
		fmt.Fprintf(os.Stderr, "IP: %v (%v), RB: %v, Insn: %v, Count: %v\n", m.IP, w, m.RB, m.Instruction(), m.InstructionCount())
	}
	os.Exit(1)
}

func main() {
	// check exit condition
	var err error
	var m *vm.Machine

	stdout := bufio.NewWriter(os.Stdout)

	// flush output, catch and log errors
	defer func() {
		if err == nil && dump && m != nil {
			err = dumpMachine(m, stdout)
		}
		if ferr := stdout.Flush(); err == nil {
			err = ferr
		}
		atExit(m, err)
	}()

	var fileName = flag.String("image", "", "Load program image from file `filename`")
	flag.StringVar(&input, "input", "", "comma separated `values` to use as input instead of the console")
	flag.BoolVar(&textIO, "ascii", false, "ASCII mode: input and output are text")
	flag.Var(&pokes, "set", "set memory cell before running, as `addr=value` (can be specified multiple times)")
	flag.Var(&phases, "amp", "run an amplifier network with the given comma separated `phases`")
	flag.BoolVar(&feedback, "feedback", false, "connect the last amplifier to the first one")
	flag.BoolVar(&disasm, "disasm", false, "disassemble the program and exit")
	flag.BoolVar(&dump, "dump", false, "dump memory image upon exit")
	flag.StringVar(&outFileName, "o", "", "save memory image upon exit to file `filename`")
	flag.BoolVar(&overflow, "overflow", false, "fail on integer overflow")
	flag.BoolVar(&trace, "trace", false, "log every executed instruction")
	flag.BoolVar(&verbose, "v", false, "log run statistics")
	flag.BoolVar(&debug, "debug", false, "enable debug diagnostics")
	flag.StringVar(&logType, "log", "console", "log format: console or json")
	flag.StringVar(&logLevelName, "loglevel", "warn", "log `level`: trace, debug, info, warn, error, fatal, panic or disabled")
	flag.BoolVar(&noPrompt, "noprompt", false, "do not prompt for input")

	flag.Parse()

	if *fileName == "" && flag.NArg() > 0 {
		*fileName = flag.Arg(0)
	}
	if *fileName == "" {
		err = errors.New("no program image, use -image filename")
		return
	}
	if err = checkFlags(); err != nil {
		return
	}
	if err = initLog(); err != nil {
		return
	}

	var img []vm.Word
	if img, err = vm.Load(*fileName); err != nil {
		return
	}
	opts := append([]vm.Option{
		vm.CheckOverflow(overflow),
		vm.Logger(log.VM),
	}, pokes.options()...)

	if len(phases) > 0 {
		err = amplify(img, opts, stdout)
		return
	}

	if m, err = vm.New(img, opts...); err != nil {
		return
	}
	if disasm {
		err = asm.DisassembleAll(m.Memory(), 0, stdout)
		return
	}
	if err = run(m, stdout); err != nil {
		return
	}
	if outFileName != "" {
		err = vm.Save(outFileName, m.Memory())
	}
}
