package dispatch

import (
	"errors"

	"github.com/kvora/kvora/internal/buffer"
	"github.com/kvora/kvora/internal/store"
)

// InlineCopyThreshold is the size, in bytes, at or above which an argument
// Frozen kept past dispatch retains its accumulator-backed page instead
// of being copied into a fresh minimal allocation. See Frozen.Own.
const InlineCopyThreshold = 1024

// unboundedArity marks a command with no maximum argument count.
const unboundedArity = -1

// Command describes one entry in Table: its argument-count bounds (not
// counting the command name itself) and the handler that implements it.
type Command struct {
	MinArity int
	MaxArity int
	Handle   func(s *store.Store, args []buffer.Frozen) Reply
}

// Table maps an uppercased command name to its Command, built once at
// package init the way the teacher's per-command switch is laid out, but
// as data instead of code so arity lives next to the handler.
var Table = map[string]Command{
	"PING":      {MinArity: 0, MaxArity: 0, Handle: cmdPing},
	"GET":       {MinArity: 1, MaxArity: 1, Handle: cmdGet},
	"SET":       {MinArity: 2, MaxArity: 2, Handle: cmdSet},
	"LPUSH":     {MinArity: 2, MaxArity: unboundedArity, Handle: cmdLPush},
	"RPUSH":     {MinArity: 2, MaxArity: unboundedArity, Handle: cmdRPush},
	"LPOP":      {MinArity: 1, MaxArity: 1, Handle: cmdLPop},
	"RPOP":      {MinArity: 1, MaxArity: 1, Handle: cmdRPop},
	"LRANGE":    {MinArity: 3, MaxArity: 3, Handle: cmdLRange},
	"SADD":      {MinArity: 2, MaxArity: unboundedArity, Handle: cmdSAdd},
	"SPOP":      {MinArity: 1, MaxArity: 1, Handle: cmdSPop},
	"SMEMBERS":  {MinArity: 1, MaxArity: 1, Handle: cmdSMembers},
	"DEL":       {MinArity: 1, MaxArity: unboundedArity, Handle: cmdDel},
	"EXISTS":    {MinArity: 1, MaxArity: unboundedArity, Handle: cmdExists},
	"TYPE":      {MinArity: 1, MaxArity: 1, Handle: cmdType},
	"LLEN":      {MinArity: 1, MaxArity: 1, Handle: cmdLLen},
	"SCARD":     {MinArity: 1, MaxArity: 1, Handle: cmdSCard},
	"SISMEMBER": {MinArity: 2, MaxArity: 2, Handle: cmdSIsMember},
	"DBSIZE":    {MinArity: 0, MaxArity: 0, Handle: cmdDBSize},
	"FLUSHALL":  {MinArity: 0, MaxArity: 0, Handle: cmdFlushAll},
}

func fits(n, min, max int) bool {
	if n < min {
		return false
	}
	return max == unboundedArity || n <= max
}

// replyForTypeError converts a store.TypeError into the WRONGTYPE reply,
// leaving any other error to the caller (there currently is no other
// error kind the store can return).
func replyForTypeError(err error) (Reply, bool) {
	var te *store.TypeError
	if errors.As(err, &te) {
		return wrongType(), true
	}
	return Reply{}, false
}
