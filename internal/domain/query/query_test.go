package query

import (
	"errors"
	"testing"

	"github.com/nwongx/hatchways-assessment/internal/domain"
)

func TestKind_IsValid(t *testing.T) {
	for _, k := range []Kind{Name, Tag} {
		if !k.IsValid() {
			t.Errorf("%q.IsValid() = false, want true", k)
		}
	}
	for _, k := range []Kind{"", "NAME", "email", "tags"} {
		if k.IsValid() {
			t.Errorf("%q.IsValid() = true, want false", k)
		}
	}
}

func TestNew_TrimsValue(t *testing.T) {
	q, err := New(Name, "  in ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Value() != "in" {
		t.Errorf("Value() = %q, want %q", q.Value(), "in")
	}
	if q.Key() != "IN" {
		t.Errorf("Key() = %q, want %q", q.Key(), "IN")
	}
	if q.Kind() != Name {
		t.Errorf("Kind() = %q", q.Kind())
	}
}

func TestNew_InvalidKind(t *testing.T) {
	_, err := New("email", "x")
	if !errors.Is(err, domain.ErrInvalidQueryKind) {
		t.Fatalf("expected ErrInvalidQueryKind, got %v", err)
	}
}

func TestPair_Merge(t *testing.T) {
	p := Pair{Name: "in", Tag: "t1"}

	name, _ := New(Name, "ing")
	got := p.Merge(name)
	if got.Name != "ing" || got.Tag != "t1" {
		t.Errorf("Merge(name) = %+v", got)
	}

	clear, _ := New(Tag, "")
	got = got.Merge(clear)
	if got.Name != "ing" || got.Tag != "" {
		t.Errorf("Merge(tag clear) = %+v", got)
	}

	if p.Name != "in" {
		t.Error("Merge must not mutate the receiver")
	}
}
