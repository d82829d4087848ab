// Package sampler implements the two range samplers the OPE driver
// calls at internal nodes (SampleHGD) and leaves (SampleUniform) of its
// recursion.
package sampler

import (
	"fmt"
	"math"

	"bclo-ope/hgd"
	"bclo-ope/opeerr"
	"bclo-ope/vrange"
)

// SampleHGD draws the point of inRange at which it is split, given that
// nsample is the midpoint chosen in outRange: plaintexts up to and
// including the returned value fall on the [outRange.Start, nsample]
// side.
// nsample is validated against outRange, not inRange: it is a
// coordinate in the (generally much larger) output domain, and the
// whole point of the scheme is that in_range and out_range differ in
// scale. coins seeds the hypergeometric sampler's internal PRNG.
func SampleHGD(inRange, outRange vrange.ValueRange, nsample float64, coins [128]byte) (float64, error) {
	inSize := inRange.Size()
	outSize := outRange.Size()

	if inSize < 1 {
		return 0, opeerr.New(opeerr.InvalidRange, fmt.Sprintf("in_range must have positive size, got %v", inSize))
	}
	if outSize < 1 {
		return 0, opeerr.New(opeerr.InvalidRange, fmt.Sprintf("out_range must have positive size, got %v", outSize))
	}
	if !outRange.Contains(nsample) {
		return 0, opeerr.New(opeerr.InvalidRange, fmt.Sprintf("nsample (%v) must be in out_range %v", nsample, outRange))
	}

	if inSize == outSize {
		return inRange.Start + (nsample - outRange.Start), nil
	}

	idx := nsample - outRange.Start + 1
	draw := hgd.NewDraw(coins)
	r, err := hgd.Rhyper(idx, inSize, outSize-inSize, draw)
	if err != nil {
		return 0, err
	}

	var result float64
	if r == 0 {
		result = inRange.Start
	} else {
		result = inRange.Start + r - 1
	}

	if !inRange.Contains(result) {
		return 0, opeerr.New(opeerr.InvariantViolated,
			fmt.Sprintf("sample_hgd produced %v outside in_range %v", result, inRange))
	}
	return result, nil
}

// SampleUniform binary-searches inRange, consuming one bit of coins per
// halving, and returns the chosen value.
func SampleUniform(inRange vrange.ValueRange, coins [128]byte) (float64, error) {
	if inRange.Size() < 1 {
		return 0, opeerr.New(opeerr.InvalidRange, fmt.Sprintf("in_range must have positive size, got %v", inRange.Size()))
	}

	current := inRange
	bitCounter := 0
	for current.Size() > 1 {
		if bitCounter >= len(coins) {
			return 0, opeerr.New(opeerr.CoinsExhausted, "sample_uniform ran out of tape bits")
		}

		mid := math.Floor((current.Start + current.End) / 2)
		bit := coins[bitCounter]

		switch bit {
		case 0:
			current.End = mid
		case 1:
			current.Start = mid + 1
		default:
			return 0, opeerr.New(opeerr.CoinsExhausted, fmt.Sprintf("coin bit must be 0 or 1, found %d", bit))
		}

		bitCounter++
	}

	return current.Start, nil
}
