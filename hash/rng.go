// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package hash

import (
	"encoding/binary"

	"github.com/luxfi/zkvm/babybear"
	"github.com/luxfi/zkvm/digest"
)

// byteRngFactory builds challenge streams for the byte-oriented suites
// (sha-256, blake2b): the stream state is a 32-byte chaining value advanced
// by the suite's compression function over a counter.
type byteRngFactory struct {
	name string
	sum  func([]byte) [32]byte
}

func (f byteRngFactory) NewRng() Rng {
	seed := f.sum([]byte(f.name + ":rng"))
	return &byteRng{sum: f.sum, state: seed}
}

type byteRng struct {
	sum     func([]byte) [32]byte
	state   [32]byte
	pool    []byte
	counter uint64
}

func (r *byteRng) Mix(d digest.Digest) {
	b := d.Bytes()
	buf := make([]byte, 0, 64)
	buf = append(buf, r.state[:]...)
	buf = append(buf, b[:]...)
	r.state = r.sum(buf)
	r.pool = nil
	r.counter = 0
}

func (r *byteRng) nextWord() uint32 {
	if len(r.pool) < 4 {
		var block [40]byte
		copy(block[:], r.state[:])
		binary.LittleEndian.PutUint64(block[32:], r.counter)
		r.counter++
		sum := r.sum(block[:])
		r.pool = append(r.pool, sum[:]...)
	}
	w := binary.LittleEndian.Uint32(r.pool)
	r.pool = r.pool[4:]
	return w
}

func (r *byteRng) RandomBits(bits uint) uint32 {
	return r.nextWord() & ((1 << bits) - 1)
}

func (r *byteRng) RandomElem() babybear.Elem {
	for {
		w := r.nextWord()
		if w < babybear.P {
			return babybear.New(w)
		}
	}
}

func (r *byteRng) RandomExtElem() babybear.ExtElem {
	var out babybear.ExtElem
	for i := range out {
		out[i] = r.RandomElem()
	}
	return out
}
