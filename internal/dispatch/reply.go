package dispatch

import "github.com/kvora/kvora/internal/buffer"

// ReplyKind tags which RESP shape a Reply should be encoded as.
type ReplyKind int

const (
	ReplySimpleString ReplyKind = iota
	ReplyError
	ReplyInteger
	ReplyBulkString
	ReplyNullBulk
	ReplyArray
)

// Reply is the tagged union internal/encoder consumes to write a RESP
// response, keeping wire formatting entirely out of dispatch.
type Reply struct {
	Kind    ReplyKind
	Simple  string
	Err     string
	Int     int64
	Bulk    buffer.Frozen
	Array   []buffer.Frozen
}

func ok() Reply                     { return Reply{Kind: ReplySimpleString, Simple: "OK"} }
func simple(s string) Reply         { return Reply{Kind: ReplySimpleString, Simple: s} }
func errReply(s string) Reply       { return Reply{Kind: ReplyError, Err: s} }
func integer(n int64) Reply         { return Reply{Kind: ReplyInteger, Int: n} }
func bulk(f buffer.Frozen) Reply    { return Reply{Kind: ReplyBulkString, Bulk: f} }
func nullBulk() Reply               { return Reply{Kind: ReplyNullBulk} }
func array(fs []buffer.Frozen) Reply {
	if fs == nil {
		fs = []buffer.Frozen{}
	}
	return Reply{Kind: ReplyArray, Array: fs}
}

func wrongArgs(cmd string) Reply {
	return errReply("ERR wrong number of arguments for '" + cmd + "'")
}

func wrongType() Reply {
	return errReply("WRONGTYPE Operation against a key holding the wrong kind of value")
}

func unknownCommand(cmd string) Reply {
	return errReply("ERR unknown command '" + cmd + "'")
}
