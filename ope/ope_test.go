package ope

import (
	"testing"

	"bclo-ope/vrange"
)

func mustRange(t *testing.T, start, end float64) vrange.ValueRange {
	t.Helper()
	r, err := vrange.New(start, end)
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestNewRejectsTooSmallOutRange(t *testing.T) {
	in := mustRange(t, 1, 100)

	if _, err := New([]byte("new_encryption_key"), in, mustRange(t, 1, 10)); err == nil {
		t.Fatal("expected error when in_range is bigger than out_range")
	}

	out := mustRange(t, -100, 800)
	if _, err := New([]byte("new_encryption_key"), in, out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestEncryptEndToEnd(t *testing.T) {
	in := mustRange(t, 0, 1e20)
	out := mustRange(t, 0, 1e50)

	o, err := New([]byte("encryption_key"), in, out)
	if err != nil {
		t.Fatal(err)
	}

	got, err := o.Encrypt(30792318992869221)
	if err != nil {
		t.Fatal(err)
	}
	want := 30792319112322099345020992978448823790582026526.0
	if got != want {
		t.Fatalf("Encrypt = %v want %v", got, want)
	}
}

func TestEncryptDeterministic(t *testing.T) {
	in := mustRange(t, 0, 10000)
	out := mustRange(t, 0, 1000000)
	o, err := New([]byte("det-key"), in, out)
	if err != nil {
		t.Fatal(err)
	}

	a, err := o.Encrypt(4242)
	if err != nil {
		t.Fatal(err)
	}
	b, err := o.Encrypt(4242)
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Fatalf("Encrypt not deterministic: %v != %v", a, b)
	}
}

func TestEncryptPreservesOrder(t *testing.T) {
	in := mustRange(t, 0, 5000)
	out := mustRange(t, 0, 2000000)
	o, err := New([]byte("order-key"), in, out)
	if err != nil {
		t.Fatal(err)
	}

	plaintexts := []float64{0, 1, 7, 42, 100, 999, 2500, 4999, 5000}
	prev, err := o.Encrypt(plaintexts[0])
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range plaintexts[1:] {
		cur, err := o.Encrypt(p)
		if err != nil {
			t.Fatalf("Encrypt(%v): %v", p, err)
		}
		if cur <= prev {
			t.Fatalf("order violated: Encrypt climbed to %v <= previous %v", cur, prev)
		}
		if !out.Contains(cur) {
			t.Fatalf("ciphertext %v outside out_range %v", cur, out)
		}
		prev = cur
	}
}

func TestEncryptRejectsOutOfDomain(t *testing.T) {
	in := mustRange(t, 0, 100)
	out := mustRange(t, 0, 1000)
	o, err := New([]byte("k"), in, out)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := o.Encrypt(101); err == nil {
		t.Fatal("expected OutOfDomain error")
	}
}
