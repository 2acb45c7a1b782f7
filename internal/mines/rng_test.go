package mines

import "testing"

func TestSequenceDeterminism(t *testing.T) {
	a := NewSequence(12345)
	b := NewSequence(12345)

	for i := 0; i < 1000; i++ {
		va, vb := a.Next(), b.Next()
		if va != vb {
			t.Fatalf("Sequences diverged at step %d: %v vs %v", i, va, vb)
		}
	}
}

func TestSequenceRange(t *testing.T) {
	s := NewSequence(42)
	for i := 0; i < 10000; i++ {
		v := s.Next()
		if v < 0 || v >= 1 {
			t.Fatalf("Value %v at step %d outside [0, 1)", v, i)
		}
	}
}

func TestSequenceReset(t *testing.T) {
	s := NewSequence(7)
	first := make([]float64, 20)
	for i := range first {
		first[i] = s.Next()
	}

	s.Reset(7)
	for i := range first {
		if v := s.Next(); v != first[i] {
			t.Fatalf("Reset stream differs at step %d: %v vs %v", i, v, first[i])
		}
	}
}

func TestSequenceSeedsDiffer(t *testing.T) {
	a := NewSequence(1)
	b := NewSequence(2)

	same := true
	for i := 0; i < 50; i++ {
		if a.Next() != b.Next() {
			same = false
			break
		}
	}
	if same {
		t.Error("Different seeds produced identical 50-value prefixes")
	}
}

func TestIntnBounds(t *testing.T) {
	s := NewSequence(99)
	for i := 0; i < 10000; i++ {
		v := s.Intn(8)
		if v < 0 || v >= 8 {
			t.Fatalf("Intn(8) returned %d", v)
		}
	}
}
