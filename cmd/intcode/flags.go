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
	"strconv"
	"strings"

	"github.com/db47h/intcode/internal/log"
	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

type poke struct {
	addr, v vm.Word
}

// pokeList collects -set addr=value flags.
type pokeList []poke

func (p *pokeList) String() string {
	var sb strings.Builder
	for i, e := range *p {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.FormatInt(int64(e.addr), 10))
		sb.WriteByte('=')
		sb.WriteString(strconv.FormatInt(int64(e.v), 10))
	}
	return sb.String()
}

func (p *pokeList) Set(s string) error {
	a, v, ok := strings.Cut(s, "=")
	if !ok {
		return errors.Errorf("invalid value %q: expected addr=value", s)
	}
	addr, err := strconv.ParseInt(strings.TrimSpace(a), 10, 64)
	if err != nil {
		return errors.Wrap(err, "invalid address")
	}
	val, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	if err != nil {
		return errors.Wrap(err, "invalid value")
	}
	*p = append(*p, poke{vm.Word(addr), vm.Word(val)})
	return nil
}

func (p *pokeList) Get() interface{} { return *p }

func (p pokeList) options() []vm.Option {
	opts := make([]vm.Option, len(p))
	for i, e := range p {
		opts[i] = vm.Poke(e.addr, e.v)
	}
	return opts
}

// wordList is a comma separated list of words, like -amp 4,3,2,1,0.
type wordList []vm.Word

func (l *wordList) String() string {
	var sb strings.Builder
	for i, v := range *l {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatInt(int64(v), 10))
	}
	return sb.String()
}

func (l *wordList) Set(s string) error {
	ws, err := vm.ParseString(s)
	if err != nil {
		return err
	}
	*l = ws
	return nil
}

func (l *wordList) Get() interface{} { return *l }

// checkFlags reports flag combinations that cannot be honored.
func checkFlags() error {
	if len(phases) == 0 {
		if feedback {
			return errors.New("-feedback requires -amp")
		}
		return nil
	}
	var bad []string
	if disasm {
		bad = append(bad, "-disasm")
	}
	if dump {
		bad = append(bad, "-dump")
	}
	if outFileName != "" {
		bad = append(bad, "-o")
	}
	if len(bad) > 0 {
		return errors.Errorf("-amp cannot be combined with %s", strings.Join(bad, ", "))
	}
	return nil
}

// logLevel returns the log level selected by -loglevel. -v and -trace can only
// make logging more verbose.
func logLevel() (zerolog.Level, error) {
	lvl, err := log.ParseLevel(logLevelName)
	if err != nil {
		return lvl, err
	}
	if verbose && lvl > zerolog.InfoLevel {
		lvl = zerolog.InfoLevel
	}
	if trace && lvl > zerolog.DebugLevel {
		lvl = zerolog.DebugLevel
	}
	return lvl, nil
}
