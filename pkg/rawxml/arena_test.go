package rawxml

import "testing"

func TestArenaDupe(t *testing.T) {
	var a arena

	got := a.dupe([]byte("hello"))
	if string(got) != "hello" {
		t.Fatalf("dupe returned %q, want %q", got, "hello")
	}

	more := a.dupe([]byte("world"))
	if string(got) != "hello" {
		t.Fatalf("earlier dupe result mutated to %q after a later dupe", got)
	}
	if string(more) != "world" {
		t.Fatalf("dupe returned %q, want %q", more, "world")
	}
}

func TestArenaDupeEmpty(t *testing.T) {
	var a arena

	got := a.dupe(nil)
	if len(got) != 0 {
		t.Fatalf("dupe(nil) = %v, want zero-length slice", got)
	}

	got2 := a.dupe([]byte{})
	if got2 == nil {
		t.Fatalf("dupe([]byte{}) returned nil, want non-nil zero-length slice")
	}
}

func TestArenaResetRetainsCapacity(t *testing.T) {
	var a arena
	a.dupe([]byte("0123456789"))
	cap0 := cap(a.data)

	a.reset()
	if len(a.data) != 0 {
		t.Fatalf("reset left len(a.data) = %d, want 0", len(a.data))
	}
	if cap(a.data) != cap0 {
		t.Fatalf("reset changed capacity from %d to %d", cap0, cap(a.data))
	}
}
