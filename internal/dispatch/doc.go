// Package dispatch matches a parsed resp.Frame's command name against a
// table of known commands, checks arity, applies the operation to a
// store.Store, and produces a Reply describing what internal/encoder
// should write back.
//
// The table (Table, built once at package init) generalizes the
// per-command switch statement the teacher's redisserver.CommandHandler
// uses into data: arity metadata lives next to the handler function
// instead of being re-checked ad hoc inside each case.
package dispatch
