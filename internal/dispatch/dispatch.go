package dispatch

import (
	"strings"

	"github.com/kvora/kvora/internal/buffer"
	"github.com/kvora/kvora/internal/resp"
	"github.com/kvora/kvora/internal/store"
)

// Dispatch resolves frame's command against Table, checks arity, and
// applies it to s, returning the Reply for internal/encoder to write.
//
// Argument ownership: Dispatch never retains frame.Args past this call
// itself. Handlers that need to keep an argument's bytes past the
// current accumulator (SET's value, LPUSH/RPUSH/SADD's members) call
// Frozen.Own before handing it to the store; handlers that only need to
// look a key up pass its raw bytes straight through.
func Dispatch(frame resp.Frame, s *store.Store) Reply {
	if len(frame.Args) == 0 {
		return errReply("ERR no command")
	}
	name := normalizeCommandName(frame.Args[0])
	cmd, ok := Table[name]
	if !ok {
		return unknownCommand(name)
	}
	args := frame.Args[1:]
	if !fits(len(args), cmd.MinArity, cmd.MaxArity) {
		return wrongArgs(name)
	}
	return cmd.Handle(s, args)
}

func normalizeCommandName(f buffer.Frozen) string {
	return strings.ToUpper(f.String())
}

func own(f buffer.Frozen) buffer.Frozen {
	return f.Own(InlineCopyThreshold)
}
