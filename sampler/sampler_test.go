package sampler

import (
	"testing"

	"bclo-ope/vrange"
)

func coinsAllOnes() [128]byte {
	var c [128]byte
	for i := range c {
		c[i] = 1
	}
	return c
}

func coinsWithBits(indices ...int) [128]byte {
	var c [128]byte
	for _, i := range indices {
		c[i] = 1
	}
	return c
}

func mustRange(t *testing.T, start, end float64) vrange.ValueRange {
	t.Helper()
	r, err := vrange.New(start, end)
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestSampleUniformSpot(t *testing.T) {
	in := mustRange(t, 1, 1000)
	got, err := SampleUniform(in, coinsAllOnes())
	if err != nil {
		t.Fatal(err)
	}
	if got != 1000 {
		t.Fatalf("SampleUniform = %v want 1000", got)
	}

	in2 := mustRange(t, -1000, 100000)
	got2, err := SampleUniform(in2, coinsWithBits(0, 2, 3))
	if err != nil {
		t.Fatal(err)
	}
	if got2 != 68439 {
		t.Fatalf("SampleUniform = %v want 68439", got2)
	}
}

func TestSampleUniformWithinRange(t *testing.T) {
	in := mustRange(t, -50, 50)
	got, err := SampleUniform(in, coinsWithBits(1, 4, 7))
	if err != nil {
		t.Fatal(err)
	}
	if !in.Contains(got) {
		t.Fatalf("SampleUniform returned %v outside %v", got, in)
	}
}

func TestSampleHGDSpot(t *testing.T) {
	in := mustRange(t, 1, 100)
	out := mustRange(t, 1, 300)
	got, err := SampleHGD(in, out, 10, coinsAllOnes())
	if err != nil {
		t.Fatal(err)
	}
	if got != 10 {
		t.Fatalf("SampleHGD = %v want 10", got)
	}

	in2 := mustRange(t, -1000, 100000)
	out2 := mustRange(t, -100000, 1000000)
	got2, err := SampleHGD(in2, out2, 2000, coinsWithBits(0, 2, 3))
	if err != nil {
		t.Fatal(err)
	}
	if got2 != 8406 {
		t.Fatalf("SampleHGD = %v want 8406", got2)
	}
}

func TestSampleHGDDegenerateIdentity(t *testing.T) {
	in := mustRange(t, 0, 9)
	out := mustRange(t, 100, 109)
	got, err := SampleHGD(in, out, 105, coinsAllOnes())
	if err != nil {
		t.Fatal(err)
	}
	if got != 5 {
		t.Fatalf("SampleHGD identity case = %v want 5", got)
	}
}

func TestSampleHGDRejectsOutOfRangeSample(t *testing.T) {
	in := mustRange(t, 1, 100)
	out := mustRange(t, 1, 300)
	if _, err := SampleHGD(in, out, 500, coinsAllOnes()); err == nil {
		t.Fatal("expected error for nsample outside out_range")
	}
}

func TestSampleHGDAcceptsNsampleOutsideInRange(t *testing.T) {
	in := mustRange(t, 0, 1e20)
	out := mustRange(t, 0, 1e50)
	mid := 5e49
	if _, err := SampleHGD(in, out, mid, coinsAllOnes()); err != nil {
		t.Fatalf("SampleHGD rejected an out_range-scale nsample: %v", err)
	}
}
