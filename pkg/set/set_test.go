package set

import (
	"reflect"
	"testing"
)

func TestSet(t *testing.T) {
	s := New(3, 1, 3, 2)
	if s.Len() != 3 {
		t.Fatalf("expect 3 members, got: %d", s.Len())
	}
	if !s.Contains(1) || s.Contains(4) {
		t.Fail()
	}
	if s.Add(2) {
		t.Fatalf("2 is already a member")
	}
	if !s.Add(0) {
		t.Fatalf("0 should be added")
	}

	if want := []int{0, 1, 2, 3}; !reflect.DeepEqual(s.Sorted(), want) {
		t.Fatalf("expect: %v, got: %v", want, s.Sorted())
	}
}
