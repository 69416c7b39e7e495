package dispatch

import (
	"testing"

	"github.com/kvora/kvora/internal/buffer"
	"github.com/kvora/kvora/internal/resp"
	"github.com/kvora/kvora/internal/store"
)

func frame(parts ...string) resp.Frame {
	args := make([]buffer.Frozen, len(parts))
	for i, p := range parts {
		args[i] = buffer.NewFrozen([]byte(p))
	}
	return resp.Frame{Args: args}
}

func TestDispatch_UnknownCommand(t *testing.T) {
	s := store.New()
	r := Dispatch(frame("FOO"), s)
	if r.Kind != ReplyError || r.Err != "ERR unknown command 'FOO'" {
		t.Fatalf("Dispatch(FOO) = %+v", r)
	}
}

func TestDispatch_Ping(t *testing.T) {
	s := store.New()
	r := Dispatch(frame("ping"), s)
	if r.Kind != ReplySimpleString || r.Simple != "PONG" {
		t.Fatalf("Dispatch(ping) = %+v", r)
	}
}

func TestDispatch_PingRejectsArgument(t *testing.T) {
	s := store.New()
	r := Dispatch(frame("PING", "hello"), s)
	if r.Kind != ReplyError {
		t.Fatalf("Dispatch(PING hello) = %+v, want arity error", r)
	}
}

func TestDispatch_WrongArity(t *testing.T) {
	s := store.New()
	r := Dispatch(frame("GET"), s)
	if r.Kind != ReplyError || r.Err != "ERR wrong number of arguments for 'GET'" {
		t.Fatalf("Dispatch(GET) = %+v", r)
	}
}

func TestDispatch_SetThenGet(t *testing.T) {
	s := store.New()
	if r := Dispatch(frame("SET", "k", "v"), s); r.Kind != ReplySimpleString || r.Simple != "OK" {
		t.Fatalf("SET = %+v", r)
	}
	r := Dispatch(frame("GET", "k"), s)
	if r.Kind != ReplyBulkString || r.Bulk.String() != "v" {
		t.Fatalf("GET = %+v", r)
	}
}

func TestDispatch_GetMissingIsNullBulk(t *testing.T) {
	s := store.New()
	r := Dispatch(frame("GET", "nope"), s)
	if r.Kind != ReplyNullBulk {
		t.Fatalf("GET(missing) = %+v, want ReplyNullBulk", r)
	}
}

func TestDispatch_WrongTypeReply(t *testing.T) {
	s := store.New()
	Dispatch(frame("SET", "k", "v"), s)
	r := Dispatch(frame("LPUSH", "k", "x"), s)
	if r.Kind != ReplyError || r.Err[:9] != "WRONGTYPE" {
		t.Fatalf("LPUSH against string = %+v", r)
	}
}

func TestDispatch_ListRoundTrip(t *testing.T) {
	s := store.New()
	Dispatch(frame("RPUSH", "l", "a", "b", "c"), s)
	r := Dispatch(frame("LRANGE", "l", "0", "-1"), s)
	if r.Kind != ReplyArray || len(r.Array) != 3 {
		t.Fatalf("LRANGE = %+v", r)
	}
	want := []string{"a", "b", "c"}
	for i, v := range r.Array {
		if v.String() != want[i] {
			t.Fatalf("LRANGE[%d] = %q, want %q", i, v.String(), want[i])
		}
	}
}

func TestDispatch_SetOperations(t *testing.T) {
	s := store.New()
	if r := Dispatch(frame("SADD", "s", "a", "b", "a"), s); r.Kind != ReplyInteger || r.Int != 2 {
		t.Fatalf("SADD = %+v", r)
	}
	if r := Dispatch(frame("SISMEMBER", "s", "a"), s); r.Kind != ReplyInteger || r.Int != 1 {
		t.Fatalf("SISMEMBER = %+v", r)
	}
	if r := Dispatch(frame("SCARD", "s"), s); r.Kind != ReplyInteger || r.Int != 2 {
		t.Fatalf("SCARD = %+v", r)
	}
}

func TestDispatch_SupplementedOps(t *testing.T) {
	s := store.New()
	Dispatch(frame("SET", "a", "1"), s)
	Dispatch(frame("RPUSH", "b", "x"), s)

	if r := Dispatch(frame("DBSIZE"), s); r.Kind != ReplyInteger || r.Int != 2 {
		t.Fatalf("DBSIZE = %+v", r)
	}
	if r := Dispatch(frame("TYPE", "a"), s); r.Kind != ReplySimpleString || r.Simple != "string" {
		t.Fatalf("TYPE(a) = %+v", r)
	}
	if r := Dispatch(frame("EXISTS", "a", "b", "missing"), s); r.Kind != ReplyInteger || r.Int != 2 {
		t.Fatalf("EXISTS = %+v", r)
	}
	if r := Dispatch(frame("DEL", "a", "missing"), s); r.Kind != ReplyInteger || r.Int != 1 {
		t.Fatalf("DEL = %+v", r)
	}
	if r := Dispatch(frame("FLUSHALL"), s); r.Kind != ReplySimpleString || r.Simple != "OK" {
		t.Fatalf("FLUSHALL = %+v", r)
	}
	if r := Dispatch(frame("DBSIZE"), s); r.Kind != ReplyInteger || r.Int != 0 {
		t.Fatalf("DBSIZE after FLUSHALL = %+v", r)
	}
}
