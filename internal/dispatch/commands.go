package dispatch

import (
	"strconv"

	"github.com/kvora/kvora/internal/buffer"
	"github.com/kvora/kvora/internal/store"
)

func cmdPing(_ *store.Store, _ []buffer.Frozen) Reply {
	return simple("PONG")
}

func cmdGet(s *store.Store, args []buffer.Frozen) Reply {
	v, found, err := s.Get(args[0].Bytes())
	if r, isType := replyForTypeError(err); isType {
		return r
	}
	if !found {
		return nullBulk()
	}
	return bulk(v)
}

func cmdSet(s *store.Store, args []buffer.Frozen) Reply {
	key := args[0].Bytes()
	s.Set(key, own(args[1]))
	return ok()
}

func cmdLPush(s *store.Store, args []buffer.Frozen) Reply {
	return pushCmd(s.LPush, args)
}

func cmdRPush(s *store.Store, args []buffer.Frozen) Reply {
	return pushCmd(s.RPush, args)
}

func pushCmd(op func([]byte, []buffer.Frozen) (int, error), args []buffer.Frozen) Reply {
	key := args[0].Bytes()
	vals := make([]buffer.Frozen, len(args)-1)
	for i, a := range args[1:] {
		vals[i] = own(a)
	}
	n, err := op(key, vals)
	if r, isType := replyForTypeError(err); isType {
		return r
	}
	return integer(int64(n))
}

func cmdLPop(s *store.Store, args []buffer.Frozen) Reply {
	return popCmd(s.LPop, args)
}

func cmdRPop(s *store.Store, args []buffer.Frozen) Reply {
	return popCmd(s.RPop, args)
}

func popCmd(op func([]byte) (buffer.Frozen, bool, error), args []buffer.Frozen) Reply {
	v, found, err := op(args[0].Bytes())
	if r, isType := replyForTypeError(err); isType {
		return r
	}
	if !found {
		return nullBulk()
	}
	return bulk(v)
}

func cmdLRange(s *store.Store, args []buffer.Frozen) Reply {
	start, err1 := strconv.ParseInt(args[1].String(), 10, 64)
	stop, err2 := strconv.ParseInt(args[2].String(), 10, 64)
	if err1 != nil || err2 != nil {
		return errReply("ERR value is not an integer or out of range")
	}
	items, err := s.LRange(args[0].Bytes(), start, stop)
	if r, isType := replyForTypeError(err); isType {
		return r
	}
	return array(items)
}

func cmdSAdd(s *store.Store, args []buffer.Frozen) Reply {
	key := args[0].Bytes()
	members := make([]buffer.Frozen, len(args)-1)
	for i, a := range args[1:] {
		members[i] = own(a)
	}
	n, err := s.SAdd(key, members)
	if r, isType := replyForTypeError(err); isType {
		return r
	}
	return integer(int64(n))
}

func cmdSPop(s *store.Store, args []buffer.Frozen) Reply {
	v, found, err := s.SPop(args[0].Bytes())
	if r, isType := replyForTypeError(err); isType {
		return r
	}
	if !found {
		return nullBulk()
	}
	return bulk(v)
}

func cmdSMembers(s *store.Store, args []buffer.Frozen) Reply {
	members, err := s.SMembers(args[0].Bytes())
	if r, isType := replyForTypeError(err); isType {
		return r
	}
	return array(members)
}

func cmdDel(s *store.Store, args []buffer.Frozen) Reply {
	keys := make([][]byte, len(args))
	for i, a := range args {
		keys[i] = a.Bytes()
	}
	return integer(int64(s.Del(keys)))
}

func cmdExists(s *store.Store, args []buffer.Frozen) Reply {
	keys := make([][]byte, len(args))
	for i, a := range args {
		keys[i] = a.Bytes()
	}
	return integer(int64(s.Exists(keys)))
}

func cmdType(s *store.Store, args []buffer.Frozen) Reply {
	return simple(s.Type(args[0].Bytes()))
}

func cmdLLen(s *store.Store, args []buffer.Frozen) Reply {
	n, err := s.LLen(args[0].Bytes())
	if r, isType := replyForTypeError(err); isType {
		return r
	}
	return integer(int64(n))
}

func cmdSCard(s *store.Store, args []buffer.Frozen) Reply {
	n, err := s.SCard(args[0].Bytes())
	if r, isType := replyForTypeError(err); isType {
		return r
	}
	return integer(int64(n))
}

func cmdSIsMember(s *store.Store, args []buffer.Frozen) Reply {
	yes, err := s.SIsMember(args[0].Bytes(), args[1].Bytes())
	if r, isType := replyForTypeError(err); isType {
		return r
	}
	if yes {
		return integer(1)
	}
	return integer(0)
}

func cmdDBSize(s *store.Store, _ []buffer.Frozen) Reply {
	return integer(int64(s.DBSize()))
}

func cmdFlushAll(s *store.Store, _ []buffer.Frozen) Reply {
	s.FlushAll()
	return ok()
}
