package element

import (
	"testing"
)

func TestSizes(t *testing.T) {
	tests := []struct {
		name  string
		size  uintptr
		want  uintptr
		small bool
		got   bool
	}{
		{"Trivial8", Size[Trivial8](), 8, true, IsSmall[Trivial8]()},
		{"Trivial32", Size[Trivial32](), 32, true, IsSmall[Trivial32]()},
		{"Trivial128", Size[Trivial128](), 128, false, IsSmall[Trivial128]()},
		{"Trivial1024", Size[Trivial1024](), 1024, false, IsSmall[Trivial1024]()},
		{"Trivial4096", Size[Trivial4096](), 4096, false, IsSmall[Trivial4096]()},
	}

	for _, tt := range tests {
		if tt.size != tt.want {
			t.Errorf("Size[%s]() = %d, want %d", tt.name, tt.size, tt.want)
		}
		if tt.got != tt.small {
			t.Errorf("IsSmall[%s]() = %v, want %v", tt.name, tt.got, tt.small)
		}
	}
}

func TestNewSetsKey(t *testing.T) {
	if got := New[Trivial1024](42).Key(); got != 42 {
		t.Errorf("Trivial1024 key = %d, want 42", got)
	}

	s := New[String](7)
	if s.Key() != 7 || s.Data == "" {
		t.Errorf("String = %+v, want key 7 with payload", s)
	}

	b := New[Blob](3)
	if b.Key() != 3 || b.Data == nil {
		t.Errorf("Blob = %+v, want key 3 with payload", b)
	}

	if New[Blob](3).Data == b.Data {
		t.Error("fresh blobs share a payload")
	}
}

func TestWithKeyKeepsPayload(t *testing.T) {
	b := New[Blob](1)
	if b.WithKey(2).Data != b.Data {
		t.Error("rekeyed blob lost its payload")
	}

	s := New[String](1).WithKey(9)
	if s.Key() != 9 || s.Data != payload {
		t.Errorf("rekeyed string = %+v", s)
	}
}

func TestCompare(t *testing.T) {
	a, b := New[Trivial32](1), New[Trivial32](2)

	if Compare(a, b) >= 0 || Compare(b, a) <= 0 || Compare(a, a) != 0 {
		t.Error("Compare does not order by key")
	}
}

func TestName(t *testing.T) {
	if got := Name[Trivial8](); got != "Trivial8" {
		t.Errorf("Name = %q, want Trivial8", got)
	}
	if got := Name[String](); got != "String" {
		t.Errorf("Name = %q, want String", got)
	}
}
