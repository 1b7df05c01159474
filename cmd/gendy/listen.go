package main

import (
	"context"
	"log"
	"log/slog"
	"net"
	"strings"
)

const maxPacket = 4096

// listenAndServe applies the control messages that arrive at addr until ctx
// is done.
func listenAndServe(ctx context.Context, addr string, engines ensemble) error {
	conn, err := net.ListenPacket("udp", addr)
	if err != nil {
		return err
	}
	return serve(ctx, conn, engines)
}

// serve reads packets of messages separated by semicolons or newlines, as a
// patcher's network send would produce.
func serve(ctx context.Context, conn net.PacketConn, engines ensemble) error {
	log.Printf("listening on %s", conn.LocalAddr())
	go func() {
		<-ctx.Done()
		conn.Close()
	}()
	b := make([]byte, maxPacket)
	for {
		n, from, err := conn.ReadFrom(b)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		if n >= maxPacket {
			log.Printf("%s: too big", from)
			continue
		}
		for _, line := range strings.FieldsFunc(string(b[:n]), func(r rune) bool { return r == ';' || r == '\n' }) {
			if strings.TrimSpace(line) == "" {
				continue
			}
			if err := engines.configure(line); err != nil {
				slog.Warn("message", "from", from, "msg", strings.TrimSpace(line), "err", err)
			}
		}
	}
}
