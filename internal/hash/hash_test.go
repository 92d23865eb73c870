package hash

import "testing"

func TestSHA256Hasher_Sum(t *testing.T) {
	hasher := NewSHA256Hasher()

	t.Run("known digest", func(t *testing.T) {
		// sha256("hello world")
		want := "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9"
		if got := hasher.Sum([]byte("hello world")); got != want {
			t.Errorf("Sum() = %s, want %s", got, want)
		}
	})

	t.Run("same content same hash", func(t *testing.T) {
		a := hasher.Sum([]byte("3x4\nBBBB\nBBBB\nAAA.\n"))
		b := hasher.Sum([]byte("3x4\nBBBB\nBBBB\nAAA.\n"))
		if a != b {
			t.Errorf("Sum inconsistent: got %s and %s", a, b)
		}
	})

	t.Run("different content different hash", func(t *testing.T) {
		a := hasher.Sum([]byte("BB\nAA\nA.\n"))
		b := hasher.Sum([]byte("BB\nAA\n..\n"))
		if a == b {
			t.Error("different layouts produced the same hash")
		}
	})
}

func TestFakeHasher(t *testing.T) {
	hasher := NewFakeHasher()
	hasher.SetHash("A.\n", "abc123")

	if got := hasher.Sum([]byte("A.\n")); got != "abc123" {
		t.Errorf("Sum() = %s, want abc123", got)
	}
	if got := hasher.Sum([]byte("other")); got != "fakehash" {
		t.Errorf("Sum() = %s, want fakehash", got)
	}
	if hasher.Calls() != 2 {
		t.Errorf("Calls() = %d, want 2", hasher.Calls())
	}
}
