package stack

import (
	"errors"
	"testing"

	t9errors "github.com/wippyai/t9vm/errors"
)

func TestStack_PushPopPeek(t *testing.T) {
	s := New[int](3)

	if _, ok := s.Pop(); ok {
		t.Error("Pop on empty stack should report empty")
	}
	if _, ok := s.Peek(); ok {
		t.Error("Peek on empty stack should report empty")
	}

	for i := 1; i <= 3; i++ {
		if err := s.Push(i); err != nil {
			t.Fatalf("Push(%d): %v", i, err)
		}
	}

	if top, ok := s.Peek(); !ok || top != 3 {
		t.Errorf("Peek = %d, %v, want 3, true", top, ok)
	}
	if s.Len() != 3 {
		t.Errorf("Len = %d after Peek, want 3", s.Len())
	}

	for want := 3; want >= 1; want-- {
		got, ok := s.Pop()
		if !ok || got != want {
			t.Errorf("Pop = %d, %v, want %d, true", got, ok, want)
		}
	}
	if s.Len() != 0 {
		t.Errorf("Len = %d, want 0", s.Len())
	}
}

func TestStack_Overflow(t *testing.T) {
	s := NewNamed[byte]("prefix", 2)
	_ = s.Push('a')
	_ = s.Push('b')

	err := s.Push('c')
	if err == nil {
		t.Fatal("Push past capacity should fail")
	}
	if !errors.Is(err, t9errors.ErrOverflow) {
		t.Errorf("error = %v, want overflow", err)
	}
	var e *t9errors.Error
	if !errors.As(err, &e) || len(e.Path) != 1 || e.Path[0] != "prefix" {
		t.Errorf("error path = %v, want [prefix]", e)
	}
	if got := string(s.All()); got != "ab" {
		t.Errorf("contents after failed Push = %q, want %q", got, "ab")
	}
}

func TestStack_ZeroCapacity(t *testing.T) {
	var s Stack[int]
	if err := s.Push(1); !errors.Is(err, t9errors.ErrOverflow) {
		t.Errorf("zero value Push error = %v, want overflow", err)
	}
	if New[int](-4).Cap() != 0 {
		t.Error("negative capacity should clamp to 0")
	}
}

func TestStack_PushN(t *testing.T) {
	s := New[byte](5)

	if err := s.PushN([]byte("abc")); err != nil {
		t.Fatalf("PushN: %v", err)
	}
	if err := s.PushN([]byte("def")); !errors.Is(err, t9errors.ErrOverflow) {
		t.Fatalf("PushN past capacity error = %v, want overflow", err)
	}
	if got := string(s.All()); got != "abc" {
		t.Errorf("contents after failed PushN = %q, want %q", got, "abc")
	}
	if err := s.PushN([]byte("de")); err != nil {
		t.Fatalf("PushN to exact capacity: %v", err)
	}
	if got := string(s.All()); got != "abcde" {
		t.Errorf("contents = %q, want %q", got, "abcde")
	}
}

func TestStack_DropN(t *testing.T) {
	s := New[byte](8)
	_ = s.PushN([]byte("appnote"))

	if err := s.DropN(4); err != nil {
		t.Fatalf("DropN(4): %v", err)
	}
	if got := string(s.All()); got != "app" {
		t.Errorf("after DropN(4) = %q, want %q", got, "app")
	}

	err := s.DropN(4)
	if !errors.Is(err, t9errors.ErrUnderflow) {
		t.Fatalf("DropN past bottom error = %v, want underflow", err)
	}
	if got := string(s.All()); got != "app" {
		t.Errorf("failed DropN changed contents to %q", got)
	}

	if err := s.DropN(-1); !errors.Is(err, t9errors.ErrUnderflow) {
		t.Errorf("DropN(-1) error = %v, want underflow", err)
	}
	if err := s.DropN(0); err != nil {
		t.Errorf("DropN(0): %v", err)
	}
	if err := s.DropN(3); err != nil {
		t.Errorf("DropN(3): %v", err)
	}
	if s.Len() != 0 {
		t.Errorf("Len = %d, want 0", s.Len())
	}
}

func TestStack_Clear(t *testing.T) {
	s := New[int](4)
	_ = s.PushN([]int{1, 2, 3, 4})
	s.Clear()

	if s.Len() != 0 || len(s.All()) != 0 {
		t.Errorf("Clear left %d elements", s.Len())
	}
	if s.Cap() != 4 {
		t.Errorf("Cap = %d after Clear, want 4", s.Cap())
	}
	if err := s.Push(9); err != nil {
		t.Fatalf("Push after Clear: %v", err)
	}
	if top, _ := s.Peek(); top != 9 {
		t.Errorf("Peek = %d, want 9", top)
	}
}

func TestStack_AllIsCapped(t *testing.T) {
	s := New[byte](4)
	_ = s.PushN([]byte("ab"))

	view := s.All()
	if cap(view) != 2 {
		t.Errorf("cap(All()) = %d, want 2", cap(view))
	}
	// appending to the view must not write into the stack's free slots
	_ = append(view, 'z')
	_ = s.Push('c')
	if got := string(s.All()); got != "abc" {
		t.Errorf("contents = %q, want %q", got, "abc")
	}
}
