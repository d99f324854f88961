package buffer

import (
	"errors"
	"testing"
)

func TestReplaceShorter(t *testing.T) {
	b := NewFromString("hello")

	if err := b.ReplaceString("hi"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if b.String() != "hi" {
		t.Errorf("expected %q, got %q", "hi", b.String())
	}
	if b.Len() != 2 {
		t.Errorf("expected length 2, got %d", b.Len())
	}
	if b.Cap() != 5 {
		t.Errorf("capacity should stay 5, got %d", b.Cap())
	}
	if b.Slack() != 3 {
		t.Errorf("expected 3 slack bytes, got %d", b.Slack())
	}
}

func TestReplaceSameLength(t *testing.T) {
	b := NewFromString("abc")

	if err := b.ReplaceString("xyz"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.String() != "xyz" {
		t.Errorf("expected %q, got %q", "xyz", b.String())
	}
	if b.Len() != 3 {
		t.Errorf("expected length 3, got %d", b.Len())
	}
}

func TestReplaceIdempotent(t *testing.T) {
	b := NewFromString("hello")

	if err := b.ReplaceString(b.String()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.String() != "hello" {
		t.Errorf("expected %q, got %q", "hello", b.String())
	}
	if b.Len() != 5 {
		t.Errorf("expected length 5, got %d", b.Len())
	}
}

func TestReplaceEmpty(t *testing.T) {
	b := NewFromString("hello")

	if err := b.Replace(nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Len() != 0 {
		t.Errorf("expected length 0, got %d", b.Len())
	}
	if b.String() != "" {
		t.Errorf("expected empty content, got %q", b.String())
	}
	if b.Cap() != 5 {
		t.Errorf("capacity should stay 5, got %d", b.Cap())
	}
}

func TestReplaceCapacityExceeded(t *testing.T) {
	b := NewFromString("hi")

	err := b.ReplaceString("hello")
	if !errors.Is(err, ErrCapacityExceeded) {
		t.Errorf("expected ErrCapacityExceeded, got %v", err)
	}
	if b.String() != "hi" {
		t.Errorf("buffer should be unchanged, got %q", b.String())
	}
}

func TestReplaceInvalidUTF8(t *testing.T) {
	b := NewFromString("hello")

	err := b.Replace([]byte{'h', 0xff, 0xfe})
	if !errors.Is(err, ErrInvalidUTF8) {
		t.Errorf("expected ErrInvalidUTF8, got %v", err)
	}
	if b.String() != "hello" {
		t.Errorf("buffer should be byte-for-byte unchanged, got %q", b.String())
	}
	if b.Len() != 5 {
		t.Errorf("length should be unchanged, got %d", b.Len())
	}
}

func TestReplaceBoundIsCurrentLength(t *testing.T) {
	// Once shrunk, the writable region is the current content, not the
	// original capacity.
	b := NewFromString("hello")

	if err := b.ReplaceString("hi"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := b.ReplaceString("abc")
	if !errors.Is(err, ErrCapacityExceeded) {
		t.Errorf("expected ErrCapacityExceeded after shrink, got %v", err)
	}
	if b.String() != "hi" {
		t.Errorf("buffer should be unchanged, got %q", b.String())
	}
}

func TestReplaceSequence(t *testing.T) {
	b := NewFromString("hello")

	if err := b.ReplaceString("hi"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.String() != "hi" {
		t.Fatalf("expected %q, got %q", "hi", b.String())
	}

	err := b.ReplaceString("worldwide")
	if !errors.Is(err, ErrCapacityExceeded) {
		t.Errorf("expected ErrCapacityExceeded, got %v", err)
	}
	if b.String() != "hi" {
		t.Errorf("buffer should still denote %q, got %q", "hi", b.String())
	}
}

func TestReplaceKeepsStorageIdentity(t *testing.T) {
	b := NewFromString("hello")
	id := b.ID()
	addr := &b.Bytes()[0]

	if err := b.ReplaceString("hi"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if b.ID() != id {
		t.Error("ID should survive replacement")
	}
	if &b.Bytes()[0] != addr {
		t.Error("replacement should not reallocate storage")
	}
}

func TestReplaceDecodedEscape(t *testing.T) {
	// A 4-byte escaped literal decodes to 3 raw bytes inside the same
	// storage.
	b := NewFromString(`a\nb`)

	if err := b.Replace([]byte{'a', '\n', 'b'}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.String() != "a\nb" {
		t.Errorf("expected %q, got %q", "a\nb", b.String())
	}
	if b.Len() != 3 {
		t.Errorf("expected length 3, got %d", b.Len())
	}
	if b.Cap() != 4 {
		t.Errorf("expected capacity 4, got %d", b.Cap())
	}
}

func TestReplaceMultibyte(t *testing.T) {
	b := NewFromString("naïve!")

	if err := b.ReplaceString("né"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.String() != "né" {
		t.Errorf("expected %q, got %q", "né", b.String())
	}
}
