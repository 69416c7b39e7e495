package encoder

import (
	"strconv"

	"github.com/kvora/kvora/internal/buffer"
	"github.com/kvora/kvora/internal/dispatch"
)

var (
	crlf     = []byte("\r\n")
	nullBulk = []byte("$-1\r\n")
)

// Job is one reply queued for a connection's writer goroutine, in the
// order its originating request was parsed.
type Job struct {
	Reply dispatch.Reply
}

// Encode appends reply's RESP2 encoding onto acc's tail. It never
// allocates a fresh []byte for the header portion of a reply — lengths
// and integers are formatted with strconv.AppendInt directly into a
// small stack buffer before being copied in.
func Encode(acc *buffer.Accumulator, reply dispatch.Reply) {
	switch reply.Kind {
	case dispatch.ReplySimpleString:
		acc.Append([]byte{'+'})
		acc.Append([]byte(reply.Simple))
		acc.Append(crlf)
	case dispatch.ReplyError:
		acc.Append([]byte{'-'})
		acc.Append([]byte(reply.Err))
		acc.Append(crlf)
	case dispatch.ReplyInteger:
		acc.Append([]byte{':'})
		appendInt(acc, reply.Int)
		acc.Append(crlf)
	case dispatch.ReplyBulkString:
		encodeBulk(acc, reply.Bulk)
	case dispatch.ReplyNullBulk:
		acc.Append(nullBulk)
	case dispatch.ReplyArray:
		acc.Append([]byte{'*'})
		appendInt(acc, int64(len(reply.Array)))
		acc.Append(crlf)
		for _, elem := range reply.Array {
			encodeBulk(acc, elem)
		}
	}
}

func encodeBulk(acc *buffer.Accumulator, b buffer.Frozen) {
	acc.Append([]byte{'$'})
	appendInt(acc, int64(b.Len()))
	acc.Append(crlf)
	acc.Append(b.Bytes())
	acc.Append(crlf)
}

func appendInt(acc *buffer.Accumulator, n int64) {
	var scratch [20]byte
	acc.Append(strconv.AppendInt(scratch[:0], n, 10))
}
