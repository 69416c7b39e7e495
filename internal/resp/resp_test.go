package resp

import (
	"strings"
	"testing"

	"github.com/kvora/kvora/internal/buffer"
)

func fill(acc *buffer.Accumulator, s string) {
	acc.Fill(len(s), func(p []byte) (int, error) {
		return copy(p, s), nil
	})
}

func argsOf(f Frame) []string {
	out := make([]string, len(f.Args))
	for i, a := range f.Args {
		out[i] = a.String()
	}
	return out
}

func TestNext_Array(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "simple PING command",
			input: "*1\r\n$4\r\nPING\r\n",
			want:  []string{"PING"},
		},
		{
			name:  "GET command",
			input: "*2\r\n$3\r\nGET\r\n$6\r\nmykey1\r\n",
			want:  []string{"GET", "mykey1"},
		},
		{
			name:  "SET command with value",
			input: "*3\r\n$3\r\nSET\r\n$5\r\nmykey\r\n$7\r\nmyvalue\r\n",
			want:  []string{"SET", "mykey", "myvalue"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acc := buffer.NewAccumulator(0)
			fill(acc, tt.input)
			frame, status := Next(acc)
			if status != StatusComplete {
				t.Fatalf("status = %v, want StatusComplete", status)
			}
			got := argsOf(frame)
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d (%v)", len(got), len(tt.want), got)
			}
			for i, want := range tt.want {
				if got[i] != want {
					t.Errorf("arg[%d] = %q, want %q", i, got[i], want)
				}
			}
		})
	}
}

func TestNext_Inline(t *testing.T) {
	acc := buffer.NewAccumulator(0)
	fill(acc, "PING\r\n")
	frame, status := Next(acc)
	if status != StatusComplete {
		t.Fatalf("status = %v, want StatusComplete", status)
	}
	if got := argsOf(frame); len(got) != 1 || got[0] != "PING" {
		t.Fatalf("args = %v, want [PING]", got)
	}
}

func TestNext_IncompleteConsumesNothing(t *testing.T) {
	acc := buffer.NewAccumulator(0)
	full := "*2\r\n$3\r\nGET\r\n$3\r\nfoo\r\n"
	// Feed byte-by-byte and confirm every prefix short of the full frame
	// reports Incomplete without consuming anything.
	for i := 1; i < len(full); i++ {
		acc.Reset()
		fill(acc, full[:i])
		before := acc.Len()
		_, status := Next(acc)
		if status != StatusIncomplete {
			t.Fatalf("prefix %d: status = %v, want StatusIncomplete", i, status)
		}
		if acc.Len() != before {
			t.Fatalf("prefix %d: Incomplete consumed input, Len %d -> %d", i, before, acc.Len())
		}
	}
	fill(acc, full[len(full)-1:])
	frame, status := Next(acc)
	if status != StatusComplete {
		t.Fatalf("final byte: status = %v, want StatusComplete", status)
	}
	if got := argsOf(frame); len(got) != 2 || got[0] != "GET" || got[1] != "foo" {
		t.Fatalf("args = %v", got)
	}
}

func TestNext_InvalidBadArrayLength(t *testing.T) {
	acc := buffer.NewAccumulator(0)
	fill(acc, "*abc\r\n")
	if _, status := Next(acc); status != StatusInvalid {
		t.Fatalf("status = %v, want StatusInvalid", status)
	}
}

func TestNext_InvalidEmptyArray(t *testing.T) {
	acc := buffer.NewAccumulator(0)
	fill(acc, "*0\r\n")
	if _, status := Next(acc); status != StatusInvalid {
		t.Fatalf("status = %v, want StatusInvalid", status)
	}
}

func TestNext_InvalidNegativeArrayLength(t *testing.T) {
	acc := buffer.NewAccumulator(0)
	fill(acc, "*-1\r\n")
	if _, status := Next(acc); status != StatusInvalid {
		t.Fatalf("status = %v, want StatusInvalid", status)
	}
}

func TestNext_InvalidArrayTooLong(t *testing.T) {
	acc := buffer.NewAccumulator(0)
	fill(acc, "*99999\r\n")
	if _, status := Next(acc); status != StatusInvalid {
		t.Fatalf("status = %v, want StatusInvalid", status)
	}
}

func TestNext_InvalidBulkTooLong(t *testing.T) {
	acc := buffer.NewAccumulator(0)
	fill(acc, "*1\r\n$99999999\r\n")
	if _, status := Next(acc); status != StatusInvalid {
		t.Fatalf("status = %v, want StatusInvalid", status)
	}
}

func TestReadFrames_DrainsMultiplePipelinedFrames(t *testing.T) {
	acc := buffer.NewAccumulator(0)
	fill(acc, "*1\r\n$4\r\nPING\r\n*1\r\n$4\r\nPING\r\n*1\r\n$4\r\nPING\r\n")
	frames, status := ReadFrames(acc)
	if status != StatusIncomplete {
		t.Fatalf("status = %v, want StatusIncomplete (nothing left)", status)
	}
	if len(frames) != 3 {
		t.Fatalf("len(frames) = %d, want 3", len(frames))
	}
	for _, f := range frames {
		if got := argsOf(f); len(got) != 1 || got[0] != "PING" {
			t.Fatalf("frame args = %v", got)
		}
	}
	if acc.Len() != 0 {
		t.Fatalf("acc.Len() = %d, want 0 after draining", acc.Len())
	}
}

func TestReadFrames_StopsAtTrailingPartialFrame(t *testing.T) {
	acc := buffer.NewAccumulator(0)
	fill(acc, "*1\r\n$4\r\nPING\r\n*2\r\n$3\r\nGET\r\n$3\r\nfo")
	frames, status := ReadFrames(acc)
	if status != StatusIncomplete {
		t.Fatalf("status = %v, want StatusIncomplete", status)
	}
	if len(frames) != 1 {
		t.Fatalf("len(frames) = %d, want 1", len(frames))
	}
	// The partial GET frame must still be sitting in the accumulator,
	// untouched, ready to complete on the next read.
	if !strings.HasPrefix(string(acc.Bytes()), "*2\r\n$3\r\nGET\r\n$3\r\nfo") {
		t.Fatalf("partial frame was consumed: %q", acc.Bytes())
	}
}

func TestReadFrames_StopsAtInvalidFrame(t *testing.T) {
	acc := buffer.NewAccumulator(0)
	fill(acc, "*1\r\n$4\r\nPING\r\n*abc\r\n")
	frames, status := ReadFrames(acc)
	if status != StatusInvalid {
		t.Fatalf("status = %v, want StatusInvalid", status)
	}
	if len(frames) != 1 {
		t.Fatalf("len(frames) = %d, want 1", len(frames))
	}
}
