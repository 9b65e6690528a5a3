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

// Package pipeline runs networks of Intcode machines connected through FIFO
// queues.
//
// Machines are driven by cooperative round-robin single stepping: in each
// round every machine executes at most one instruction. No goroutines are
// involved and runs are fully deterministic.
//
// In a network of n machines, machine k reads from queue k and writes to queue
// k+1. The output of the last machine goes either to a separate sink queue, or
// back to queue 0 in a feedback network:
//
//	           +---+     +---+           +-----+
//	queue 0 -> | 0 | --> | 1 | --> ... --| n-1 | --> sink (or queue 0)
//	           +---+     +---+           +-----+
package pipeline

import (
	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Network is a chain of machines connected through queues.
type Network struct {
	machines []*vm.Machine
	queues   []*vm.Queue
	pipes    []vm.Channel
	halted   []bool
	rounds   int
	log      zerolog.Logger
}

// New returns a new Network connecting the given machines in order. If
// feedback is true, the output of the last machine is fed back to the input
// of the first one.
func New(machines []*vm.Machine, feedback bool) *Network {
	n := len(machines)
	qs := make([]*vm.Queue, n+1)
	for i := range qs {
		qs[i] = vm.NewQueue()
	}
	if feedback && n > 0 {
		qs[n] = qs[0]
	}
	ps := make([]vm.Channel, n)
	for k := range ps {
		ps[k] = vm.Pipe(qs[k], qs[k+1])
	}
	return &Network{
		machines: machines,
		queues:   qs,
		pipes:    ps,
		halted:   make([]bool, n),
		log:      zerolog.Nop(),
	}
}

// SetLogger sets the logger used to report machine halts and deadlocks at
// debug level.
func (n *Network) SetLogger(l zerolog.Logger) {
	n.log = l
}

// Seed appends words to the input queue of machine k.
func (n *Network) Seed(k int, words ...vm.Word) {
	n.queues[k].Push(words...)
}

// Round steps every machine once, in order, and returns the Join of all
// results. Any error is fatal and is returned with the index of the machine
// that caused it.
func (n *Network) Round() (vm.Result, error) {
	r := vm.Halted
	for k, m := range n.machines {
		s, err := m.Step(n.pipes[k])
		if err != nil {
			return vm.Halted, errors.Wrapf(err, "machine %d", k)
		}
		if s == vm.Halted && !n.halted[k] {
			n.halted[k] = true
			n.log.Debug().Int("machine", k).Int("round", n.rounds).Int64("instructions", m.InstructionCount()).Msg("halted")
		}
		r = vm.Join(r, s)
	}
	n.rounds++
	return r, nil
}

// Run runs rounds until all machines have halted.
//
// If all machines that have not halted are blocked on I/O, nothing can make
// progress anymore: Run returns an error whose cause is vm.ErrBlocked.
func (n *Network) Run() error {
	for {
		r, err := n.Round()
		if err != nil {
			return err
		}
		switch r {
		case vm.Halted:
			return nil
		case vm.Blocked:
			n.log.Debug().Int("round", n.rounds).Ints("queued", n.queueLens()).Msg("deadlock")
			return errors.Wrap(vm.ErrBlocked, "all amplifiers blocked on I/O")
		}
	}
}

func (n *Network) queueLens() []int {
	ls := make([]int, len(n.machines))
	for k := range ls {
		ls[k] = n.queues[k].Len()
	}
	return ls
}

// Rounds returns the number of rounds run so far.
func (n *Network) Rounds() int {
	return n.rounds
}

// Output returns a copy of the contents of the network's sink: queue 0 in a
// feedback network, the output queue of the last machine otherwise.
func (n *Network) Output() []vm.Word {
	return n.queues[len(n.queues)-1].Words()
}

// Amplify runs a chain of amplifiers, one machine per phase setting, all
// running the same program. Each amplifier's input queue is seeded with its
// phase setting, and the first one also receives the initial input value.
//
// The options are applied to every machine.
func Amplify(program, phases []vm.Word, input vm.Word, feedback bool, opts ...vm.Option) ([]vm.Word, error) {
	ms := make([]*vm.Machine, len(phases))
	for k := range ms {
		m, err := vm.New(program, opts...)
		if err != nil {
			return nil, errors.Wrapf(err, "machine %d", k)
		}
		ms[k] = m
	}
	n := New(ms, feedback)
	for k, p := range phases {
		n.Seed(k, p)
	}
	if len(phases) > 0 {
		n.Seed(0, input)
	}
	if err := n.Run(); err != nil {
		return nil, err
	}
	return n.Output(), nil
}
