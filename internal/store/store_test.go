package store

import (
	"errors"
	"testing"

	"github.com/kvora/kvora/internal/buffer"
)

func fz(s string) buffer.Frozen {
	return buffer.NewFrozen([]byte(s))
}

func strs(fs []buffer.Frozen) []string {
	out := make([]string, len(fs))
	for i, f := range fs {
		out[i] = f.String()
	}
	return out
}

func TestGetSetRoundTrip(t *testing.T) {
	s := New()
	s.Set([]byte("k"), fz("hello"))
	got, ok, err := s.Get([]byte("k"))
	if err != nil || !ok {
		t.Fatalf("Get() = %v, %v, %v", got, ok, err)
	}
	if got.String() != "hello" {
		t.Fatalf("Get() = %q, want %q", got.String(), "hello")
	}
}

func TestGetMissingKey(t *testing.T) {
	s := New()
	_, ok, err := s.Get([]byte("missing"))
	if err != nil || ok {
		t.Fatalf("Get() on missing key = ok=%v err=%v, want ok=false err=nil", ok, err)
	}
}

func TestSetOverwritesAnyVariant(t *testing.T) {
	s := New()
	s.LPush([]byte("k"), []buffer.Frozen{fz("a")})
	s.Set([]byte("k"), fz("now a string"))
	got, ok, err := s.Get([]byte("k"))
	if err != nil || !ok || got.String() != "now a string" {
		t.Fatalf("Get() after Set-over-List = %q, %v, %v", got.String(), ok, err)
	}
}

func TestWrongType(t *testing.T) {
	s := New()
	s.Set([]byte("k"), fz("v"))
	if _, _, err := s.LPop([]byte("k")); !errors.Is(err, ErrWrongType) {
		t.Fatalf("LPop against string = %v, want ErrWrongType", err)
	}
	if _, err := s.SCard([]byte("k")); !errors.Is(err, ErrWrongType) {
		t.Fatalf("SCard against string = %v, want ErrWrongType", err)
	}
}

func TestListPushPopOrder(t *testing.T) {
	s := New()
	n, err := s.LPush([]byte("l"), []buffer.Frozen{fz("a"), fz("b"), fz("c")})
	if err != nil || n != 3 {
		t.Fatalf("LPush = %d, %v, want 3, nil", n, err)
	}
	// LPUSH l a b c => c ends up at the head.
	v, ok, err := s.LPop([]byte("l"))
	if err != nil || !ok || v.String() != "c" {
		t.Fatalf("LPop = %q, %v, %v, want c", v.String(), ok, err)
	}
	v, ok, err = s.RPop([]byte("l"))
	if err != nil || !ok || v.String() != "a" {
		t.Fatalf("RPop = %q, %v, %v, want a", v.String(), ok, err)
	}
}

func TestListPopDeletesEmptyKey(t *testing.T) {
	s := New()
	s.RPush([]byte("l"), []buffer.Frozen{fz("only")})
	if _, _, err := s.LPop([]byte("l")); err != nil {
		t.Fatal(err)
	}
	if s.DBSize() != 0 {
		t.Fatalf("DBSize() = %d, want 0 after list emptied", s.DBSize())
	}
	if typ := s.Type([]byte("l")); typ != "none" {
		t.Fatalf("Type() = %q, want none", typ)
	}
}

func TestLRange(t *testing.T) {
	s := New()
	s.RPush([]byte("l"), []buffer.Frozen{fz("a"), fz("b"), fz("c"), fz("d"), fz("e")})

	tests := []struct {
		name        string
		start, stop int64
		want        []string
	}{
		{"full range", 0, -1, []string{"a", "b", "c", "d", "e"}},
		{"middle window", 1, 3, []string{"b", "c", "d"}},
		{"negative offsets", -2, -1, []string{"d", "e"}},
		{"start past stop", 3, 1, nil},
		{"clamped beyond length", 0, 100, []string{"a", "b", "c", "d", "e"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.LRange([]byte("l"), tt.start, tt.stop)
			if err != nil {
				t.Fatal(err)
			}
			gs := strs(got)
			if len(gs) != len(tt.want) {
				t.Fatalf("LRange(%d,%d) = %v, want %v", tt.start, tt.stop, gs, tt.want)
			}
			for i := range gs {
				if gs[i] != tt.want[i] {
					t.Fatalf("LRange(%d,%d) = %v, want %v", tt.start, tt.stop, gs, tt.want)
				}
			}
		})
	}
}

func TestLRangeMissingKeyIsEmpty(t *testing.T) {
	s := New()
	got, err := s.LRange([]byte("nope"), 0, -1)
	if err != nil || got != nil {
		t.Fatalf("LRange(missing) = %v, %v, want nil, nil", got, err)
	}
}

func TestSAddDeduplicates(t *testing.T) {
	s := New()
	n, err := s.SAdd([]byte("s"), []buffer.Frozen{fz("a"), fz("b"), fz("a")})
	if err != nil || n != 2 {
		t.Fatalf("SAdd = %d, %v, want 2, nil", n, err)
	}
	card, err := s.SCard([]byte("s"))
	if err != nil || card != 2 {
		t.Fatalf("SCard = %d, %v, want 2, nil", card, err)
	}
}

func TestSIsMember(t *testing.T) {
	s := New()
	s.SAdd([]byte("s"), []buffer.Frozen{fz("member")})
	yes, err := s.SIsMember([]byte("s"), []byte("member"))
	if err != nil || !yes {
		t.Fatalf("SIsMember(present) = %v, %v", yes, err)
	}
	no, err := s.SIsMember([]byte("s"), []byte("absent"))
	if err != nil || no {
		t.Fatalf("SIsMember(absent) = %v, %v", no, err)
	}
}

func TestSPopDeletesEmptyKey(t *testing.T) {
	s := New()
	s.SAdd([]byte("s"), []buffer.Frozen{fz("only")})
	v, ok, err := s.SPop([]byte("s"))
	if err != nil || !ok || v.String() != "only" {
		t.Fatalf("SPop = %q, %v, %v", v.String(), ok, err)
	}
	if s.DBSize() != 0 {
		t.Fatalf("DBSize() = %d, want 0", s.DBSize())
	}
}

func TestDelExistsType(t *testing.T) {
	s := New()
	s.Set([]byte("a"), fz("1"))
	s.RPush([]byte("b"), []buffer.Frozen{fz("x")})

	if n := s.Exists([][]byte{[]byte("a"), []byte("b"), []byte("c")}); n != 2 {
		t.Fatalf("Exists = %d, want 2", n)
	}
	if typ := s.Type([]byte("a")); typ != "string" {
		t.Fatalf("Type(a) = %q, want string", typ)
	}
	if typ := s.Type([]byte("b")); typ != "list" {
		t.Fatalf("Type(b) = %q, want list", typ)
	}
	if n := s.Del([][]byte{[]byte("a"), []byte("missing")}); n != 1 {
		t.Fatalf("Del = %d, want 1", n)
	}
	if s.DBSize() != 1 {
		t.Fatalf("DBSize() = %d, want 1", s.DBSize())
	}
}

func TestFlushAll(t *testing.T) {
	s := New()
	s.Set([]byte("a"), fz("1"))
	s.RPush([]byte("b"), []buffer.Frozen{fz("x")})
	s.SAdd([]byte("c"), []buffer.Frozen{fz("y")})
	s.FlushAll()
	if s.DBSize() != 0 {
		t.Fatalf("DBSize() after FlushAll = %d, want 0", s.DBSize())
	}
}

func TestTypeErrorDoesNotMutate(t *testing.T) {
	s := New()
	s.Set([]byte("k"), fz("v"))
	if _, err := s.LPush([]byte("k"), []buffer.Frozen{fz("x")}); err == nil {
		t.Fatal("expected type error")
	}
	got, ok, err := s.Get([]byte("k"))
	if err != nil || !ok || got.String() != "v" {
		t.Fatalf("value mutated by failed LPush: %q, %v, %v", got.String(), ok, err)
	}
}
