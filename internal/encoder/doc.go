// Package encoder serializes a dispatch.Reply into RESP2 bytes, mirroring
// the Write* helpers the teacher's redisserver.resp.go writes straight to
// a *bufio.Writer, but targeting a buffer.Accumulator instead so a
// connection's writer goroutine can batch several replies into one
// net.Conn.Write.
package encoder
