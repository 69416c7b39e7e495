package resp

import (
	"bytes"
	"strconv"

	"github.com/kvora/kvora/internal/buffer"
)

// Protocol limits bound how much a single frame can demand of memory
// before the connection is dropped instead of kept waiting.
const (
	// MaxArrayLen limits the number of elements in a RESP array.
	MaxArrayLen = 1024

	// MaxBulkLen limits the size of a single bulk string (512KB).
	MaxBulkLen = 512 * 1024

	// MaxInlineLen limits inline command line length (4KB).
	MaxInlineLen = 4 * 1024
)

// Status is the outcome of trying to extract one frame from an
// accumulator.
type Status int

const (
	// StatusComplete means Frame holds a fully parsed command.
	StatusComplete Status = iota
	// StatusIncomplete means the accumulator doesn't yet hold a full
	// frame; no input was consumed and the caller should read more.
	StatusIncomplete
	// StatusInvalid means the buffered bytes cannot be a valid RESP
	// frame under any amount of additional input; the connection must
	// be closed.
	StatusInvalid
)

// Frame is one parsed command: Args[0] is the command name, Args[1:] are
// its arguments, each a zero-copy slice of the accumulator that produced
// it.
type Frame struct {
	Args []buffer.Frozen
}

// Next attempts to parse exactly one frame from the front of acc. On
// StatusComplete or StatusInvalid it has consumed the bytes belonging to
// that frame (or, for Invalid, made no promise about how much it looked
// at — the caller is expected to close the connection either way). On
// StatusIncomplete it consumes nothing, so the same call can be retried
// after more bytes arrive.
func Next(acc *buffer.Accumulator) (Frame, Status) {
	head := acc.Peek(1)
	if len(head) == 0 {
		return Frame{}, StatusIncomplete
	}
	if head[0] == '*' {
		return nextArray(acc)
	}
	return nextInline(acc)
}

// ReadFrames greedily extracts as many complete frames as acc currently
// holds, stopping at the first Incomplete (need more bytes) or Invalid
// (protocol error) frame. The terminal status tells the caller whether to
// go read more or to close the connection.
func ReadFrames(acc *buffer.Accumulator) ([]Frame, Status) {
	var frames []Frame
	for {
		f, status := Next(acc)
		switch status {
		case StatusComplete:
			frames = append(frames, f)
		case StatusIncomplete:
			return frames, StatusIncomplete
		case StatusInvalid:
			return frames, StatusInvalid
		}
	}
}

// findLine locates the CRLF terminating the line starting at the front of
// acc's unconsumed window, bounded by maxLen. It returns the line's
// length without the CRLF and found=true; found=false with tooLong=false
// if no LF is buffered yet; tooLong=true if more than maxLen bytes are
// buffered without an LF, or the LF is not preceded by CR.
func findLine(acc *buffer.Accumulator, maxLen int) (lineLen int, found bool, tooLong bool) {
	peek := acc.Peek(maxLen + 2)
	idx := bytes.IndexByte(peek, '\n')
	if idx < 0 {
		if len(peek) > maxLen {
			return 0, false, true
		}
		return 0, false, false
	}
	if idx == 0 || peek[idx-1] != '\r' {
		return 0, false, true
	}
	return idx - 1, true, false
}

func nextInline(acc *buffer.Accumulator) (Frame, Status) {
	n, found, tooLong := findLine(acc, MaxInlineLen)
	if tooLong {
		return Frame{}, StatusInvalid
	}
	if !found {
		return Frame{}, StatusIncomplete
	}
	line := acc.Peek(n)
	line = bytes.TrimSpace(line)
	if len(line) == 0 {
		acc.Discard(n + 2)
		return Next(acc)
	}
	fields := bytes.Fields(line)
	args := make([]buffer.Frozen, 0, len(fields))
	for _, field := range fields {
		args = append(args, buffer.NewFrozen(append([]byte(nil), field...)))
	}
	acc.Discard(n + 2)
	return Frame{Args: args}, StatusComplete
}

func nextArray(acc *buffer.Accumulator) (Frame, Status) {
	n, found, tooLong := findLine(acc, 32)
	if tooLong {
		return Frame{}, StatusInvalid
	}
	if !found {
		return Frame{}, StatusIncomplete
	}
	header := acc.Peek(n)
	count, err := strconv.Atoi(string(bytes.TrimSpace(header[1:])))
	if err != nil {
		return Frame{}, StatusInvalid
	}
	if count < 1 {
		return Frame{}, StatusInvalid
	}
	if count > MaxArrayLen {
		return Frame{}, StatusInvalid
	}

	// Speculatively parse without consuming anything from acc until the
	// whole array is confirmed present, so a partially delivered command
	// can be retried from scratch once more bytes arrive.
	consumed := n + 2
	remaining := acc.Bytes()[consumed:]
	off := 0
	for i := 0; i < count; i++ {
		blen, headerLen, status := peekBulkHeader(remaining[off:])
		if status == StatusIncomplete {
			return Frame{}, StatusIncomplete
		}
		if status == StatusInvalid {
			return Frame{}, StatusInvalid
		}
		total := headerLen + blen + 2
		if off+total > len(remaining) {
			return Frame{}, StatusIncomplete
		}
		off += total
	}
	consumed += off

	if acc.Len() < consumed {
		return Frame{}, StatusIncomplete
	}

	// Re-walk using Discard/Take against the real offset now that the
	// full frame is known to be buffered, so ownership of each argument's
	// bytes transfers cleanly out of the accumulator.
	frame := Frame{Args: make([]buffer.Frozen, 0, count)}
	acc.Discard(n + 2)
	for i := 0; i < count; i++ {
		blen, headerLen, status := peekBulkHeader(acc.Bytes())
		if status != StatusComplete {
			// Unreachable: already validated above.
			return Frame{}, StatusInvalid
		}
		acc.Discard(headerLen)
		val, ok := acc.Take(blen)
		if !ok {
			return Frame{}, StatusInvalid
		}
		if !acc.Discard(2) {
			return Frame{}, StatusInvalid
		}
		frame.Args = append(frame.Args, val)
	}
	return frame, StatusComplete
}

// peekBulkHeader reads a "$<n>\r\n" header from the front of b without
// consuming anything, returning the declared body length and the header's
// own byte length (including its CRLF).
func peekBulkHeader(b []byte) (bodyLen, headerLen int, status Status) {
	idx := bytes.IndexByte(b, '\n')
	if idx < 0 {
		if len(b) > 32 {
			return 0, 0, StatusInvalid
		}
		return 0, 0, StatusIncomplete
	}
	if idx == 0 || b[idx-1] != '\r' {
		return 0, 0, StatusInvalid
	}
	line := b[:idx-1]
	if len(line) < 2 || line[0] != '$' {
		return 0, 0, StatusInvalid
	}
	n, err := strconv.Atoi(string(bytes.TrimSpace(line[1:])))
	if err != nil || n < 0 || n > MaxBulkLen {
		return 0, 0, StatusInvalid
	}
	return n, idx + 1, StatusComplete
}
