package security

import "testing"

func TestHasherRoundTrip(t *testing.T) {
	h := NewHasher(4)

	hash, err := h.Hash([]byte("p@ssw0rd"))
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if hash == "" {
		t.Fatal("Hash returned empty string")
	}
	if hash == "p@ssw0rd" {
		t.Fatal("Hash must not return the plaintext")
	}
	if err := h.Compare(hash, []byte("p@ssw0rd")); err != nil {
		t.Errorf("Compare with correct password: %v", err)
	}
	if err := h.Compare(hash, []byte("p@ssw0rd ")); err == nil {
		t.Error("Compare should reject a wrong password")
	}
}

func TestHasherDistinctHashes(t *testing.T) {
	h := NewHasher(4)

	a, err := h.Hash([]byte("same input"))
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	b, err := h.Hash([]byte("same input"))
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if a == b {
		t.Error("two hashes of the same password should differ by salt")
	}
}

func TestNewHasherClampsCost(t *testing.T) {
	cases := []struct {
		in   int
		want int
	}{
		{0, 10},
		{-5, 10},
		{2, 4},
		{12, 12},
		{99, 31},
	}
	for _, tc := range cases {
		if got := NewHasher(tc.in).Cost; got != tc.want {
			t.Errorf("NewHasher(%d).Cost = %d, want %d", tc.in, got, tc.want)
		}
	}
}
