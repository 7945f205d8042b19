package pool

import "testing"

func TestGetLength(t *testing.T) {
	for _, n := range []int{0, 1, 7, 1024, 5000} {
		s := Get(n)
		if len(s) != n {
			t.Errorf("Get(%d): len %d", n, len(s))
		}
		Put(s)
	}
}

func TestReuse(t *testing.T) {
	s := Get(64)
	for i := range s {
		s[i] = float64(i)
	}
	Put(s)

	// A recycled slice may come back with stale contents; length must still
	// be exactly what was asked for.
	s2 := Get(32)
	if len(s2) != 32 {
		t.Fatalf("recycled slice has len %d, want 32", len(s2))
	}
	Put(s2)
}

func TestPutNil(t *testing.T) {
	Put(nil) // must not panic
}
