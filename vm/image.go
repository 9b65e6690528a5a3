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

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/db47h/intcode/internal/ici"
	"github.com/pkg/errors"
)

// ParseString parses a program image made of comma separated decimal values.
// Whitespace around values, including a trailing newline, is ignored.
//
// If a value is not a valid 64 bits integer, the cause of the returned error
// is a *ParseError.
func ParseString(s string) ([]Word, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errors.New("empty program image")
	}
	tokens := strings.Split(s, ",")
	img := make([]Word, 0, len(tokens))
	for k, t := range tokens {
		t = strings.TrimSpace(t)
		v, err := strconv.ParseInt(t, 10, 64)
		if err != nil {
			if ne, ok := err.(*strconv.NumError); ok {
				err = ne.Err
			}
			return nil, errors.WithStack(&ParseError{Pos: k, Token: t, Err: err})
		}
		img = append(img, Word(v))
	}
	return img, nil
}

// Parse reads and parses a program image from r. See ParseString.
func Parse(r io.Reader) ([]Word, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read failed")
	}
	return ParseString(string(data))
}

// Load loads a program image from file fileName.
func Load(fileName string) ([]Word, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "Load")
	}
	defer f.Close()
	img, err := Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "Load %v", fileName)
	}
	return img, nil
}

// Format writes mem to w as comma separated values, terminated by a newline.
func Format(w io.Writer, mem []Word) error {
	ew := ici.NewErrWriter(w)
	for i, v := range mem {
		if i > 0 {
			ew.Write([]byte{','})
		}
		ew.WriteInt(int64(v))
	}
	ew.Write([]byte{'\n'})
	return ew.Err
}

// Save saves mem to file fileName in the format read by Load. The file is
// removed if an error occurs.
func Save(fileName string, mem []Word) (err error) {
	f, err := os.Create(fileName)
	if err != nil {
		return errors.Wrap(err, "create failed")
	}
	w := bufio.NewWriter(f)
	defer func() {
		if ferr := w.Flush(); err == nil {
			err = ferr
		}
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		// delete file on error
		if err != nil {
			os.Remove(fileName)
			err = errors.Wrap(err, "save failed")
		}
	}()
	return Format(w, mem)
}
