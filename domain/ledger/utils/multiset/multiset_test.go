package multiset

import (
	"testing"
)

func TestMultisetIsOrderIndependent(t *testing.T) {
	a := New()
	a.Add([]byte("first"))
	a.Add([]byte("second"))

	b := New()
	b.Add([]byte("second"))
	b.Add([]byte("third"))
	b.Add([]byte("first"))
	b.Remove([]byte("third"))

	if !a.Hash().Equal(b.Hash()) {
		t.Fatalf("TestMultisetIsOrderIndependent: expected equal hashes but got %s and %s", a.Hash(), b.Hash())
	}
	if a.Hash().Equal(New().Hash()) {
		t.Fatalf("TestMultisetIsOrderIndependent: expected a non-empty multiset to differ from the empty one")
	}
}

func TestMultisetCloneAndSerialize(t *testing.T) {
	original := New()
	original.Add([]byte("element"))

	clone := original.Clone()
	clone.Add([]byte("another element"))
	if original.Hash().Equal(clone.Hash()) {
		t.Fatalf("TestMultisetCloneAndSerialize: mutating a clone must not affect the original")
	}

	deserialized, err := FromBytes(original.Serialize())
	if err != nil {
		t.Fatalf("FromBytes: %+v", err)
	}
	if !deserialized.Hash().Equal(original.Hash()) {
		t.Fatalf("TestMultisetCloneAndSerialize: expected %s but got %s", original.Hash(), deserialized.Hash())
	}

	_, err = FromBytes([]byte{1, 2, 3})
	if err == nil {
		t.Fatalf("TestMultisetCloneAndSerialize: expected an error for a short serialization")
	}
}
