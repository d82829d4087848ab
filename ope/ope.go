// Package ope implements the Boldyreva-Chenette-Lee-O'Neill
// order-preserving encryption driver: a recursive binary search over a
// finite output domain, steered at every node by a deterministic
// hypergeometric or uniform draw from a key-and-label-derived coin
// tape.
package ope

import (
	"fmt"
	"math"
	"time"

	"bclo-ope/opeerr"
	"bclo-ope/prof"
	"bclo-ope/sampler"
	"bclo-ope/tape"
	"bclo-ope/vrange"
)

// OPE is an immutable encryption context: a key plus the input and
// output domains it maps between. One context encrypts many
// plaintexts deterministically and is safe for concurrent use.
type OPE struct {
	key      []byte
	inRange  vrange.ValueRange
	outRange vrange.ValueRange
}

// New constructs an OPE context, failing with opeerr.RangeTooSmall if
// the input domain is larger than the output domain.
func New(key []byte, inRange, outRange vrange.ValueRange) (*OPE, error) {
	if inRange.Size() > outRange.Size() {
		return nil, opeerr.New(opeerr.RangeTooSmall,
			fmt.Sprintf("in_range %v (size %v) cannot be larger than out_range %v (size %v)",
				inRange, inRange.Size(), outRange, outRange.Size()))
	}

	keyCopy := make([]byte, len(key))
	copy(keyCopy, key)

	return &OPE{key: keyCopy, inRange: inRange, outRange: outRange}, nil
}

// Encrypt maps plaintext, which must lie in the context's in_range,
// to its ciphertext in out_range.
func (o *OPE) Encrypt(plaintext float64) (float64, error) {
	defer prof.Track(time.Now(), "ope.Encrypt")

	if !o.inRange.Contains(plaintext) {
		return 0, opeerr.New(opeerr.OutOfDomain,
			fmt.Sprintf("plaintext %v is not in in_range %v", plaintext, o.inRange))
	}

	return o.encryptRecursive(plaintext, o.inRange, o.outRange, 0)
}

func (o *OPE) encryptRecursive(plaintext float64, inR, outR vrange.ValueRange, depth int) (float64, error) {
	defer prof.TrackNode(time.Now(), "ope.encryptRecursive", depth, outR.Size())

	if inR.Size() == 1 {
		coins := tape.Generate(o.key, inR.Start)
		return sampler.SampleUniform(outR, coins)
	}

	outEdge := outR.Start - 1
	mid := outEdge + math.Ceil(outR.Size()/2)

	coins := tape.Generate(o.key, mid)
	x, err := sampler.SampleHGD(inR, outR, mid, coins)
	if err != nil {
		return 0, err
	}

	var newIn, newOut vrange.ValueRange
	if plaintext <= x {
		newIn, err = vrange.New(inR.Start, x)
		if err != nil {
			return 0, err
		}
		newOut, err = vrange.New(outR.Start, mid)
		if err != nil {
			return 0, err
		}
	} else {
		newIn, err = vrange.New(x+1, inR.End)
		if err != nil {
			return 0, err
		}
		newOut, err = vrange.New(mid+1, outR.End)
		if err != nil {
			return 0, err
		}
	}

	return o.encryptRecursive(plaintext, newIn, newOut, depth+1)
}
