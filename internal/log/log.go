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

// Package log holds the component loggers of the intcode command.
package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// LoggerType selects the output format of the loggers.
type LoggerType uint8

// Logger types.
const (
	ConsoleLogger LoggerType = iota // human readable
	JSONLogger                      // one JSON object per line
)

// Component loggers. They discard everything until Init is called.
var (
	Root     = zerolog.Nop()
	VM       = zerolog.Nop()
	Pipeline = zerolog.Nop()
)

// Options for Init
type Options struct {
	// Log level, zero value is Debug
	Level zerolog.Level
	Type  LoggerType
	// Defaults to os.Stderr
	Out io.Writer
}

// ParseLevel converts a level name such as "debug" or "warn" to a
// zerolog.Level.
func ParseLevel(level string) (zerolog.Level, error) {
	l, err := zerolog.ParseLevel(level)
	return l, errors.Wrapf(err, "invalid log level %q", level)
}

// ParseType converts "console" or "json" (case insensitive) to a LoggerType.
// An empty string selects ConsoleLogger.
func ParseType(typ string) (LoggerType, error) {
	switch strings.ToLower(typ) {
	case "console", "":
		return ConsoleLogger, nil
	case "json":
		return JSONLogger, nil
	}
	return ConsoleLogger, errors.Errorf("invalid logger type %q", typ)
}

// Init sets up the component loggers. It is not safe to call Init while
// loggers are in use.
func Init(opts Options) {
	out := opts.Out
	if out == nil {
		out = os.Stderr
	}
	if opts.Type == ConsoleLogger {
		out = newConsoleWriter(out)
	}
	Root = zerolog.New(out).Level(opts.Level).
		With().Timestamp().Logger()
	VM = Root.With().Str("component", "vm").Logger()
	Pipeline = Root.With().Str("component", "pipeline").Logger()
}

func newConsoleWriter(out io.Writer) zerolog.ConsoleWriter {
	cw := zerolog.ConsoleWriter{Out: out, NoColor: true, TimeFormat: time.RFC3339}

	cw.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}

	cw.FormatFieldName = func(i interface{}) string {
		return fmt.Sprintf("%s=", i)
	}
	return cw
}
