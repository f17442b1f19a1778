package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mickamy/mcnet/net/client"
	"github.com/mickamy/mcnet/net/packet"
	"github.com/mickamy/mcnet/net/reactor"
)

var version = "dev"

func main() {
	fs := flag.NewFlagSet("mcnetd", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "mcnetd — connection-handling core for a Minecraft-compatible server\n\nUsage:\n  mcnetd [flags]\n\nFlags:\n")
		fs.PrintDefaults()
	}

	listen := fs.String("listen", ":25565", "client listen address")
	keepaliveTimeout := fs.Duration("keepalive-timeout", 30*time.Second, "inactivity timeout set on each client's keep-alive tracker (connections are not dropped automatically)")
	keepaliveInterval := fs.Duration("keepalive-interval", 10*time.Second, "keep-alive cadence set on each client's keep-alive tracker (no pings are sent automatically)")
	showVersion := fs.Bool("version", false, "show version and exit")

	_ = fs.Parse(os.Args[1:])

	if *showVersion {
		fmt.Printf("mcnetd %s\n", version)
		return
	}

	if err := run(*listen, *keepaliveTimeout, *keepaliveInterval); err != nil {
		log.Fatal(err)
	}
}

func run(listen string, keepaliveTimeout, keepaliveInterval time.Duration) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	callbacks := reactor.Callbacks{
		Accept: func(ip string, port uint16) bool {
			log.Printf("accept %s:%d", ip, port)
			return true
		},
		Connect: func(cl *client.Client) {
			log.Printf("connect %s (%s:%d)", cl.Connection().ID(), cl.Connection().IP(), cl.Connection().Port())
		},
		Disconnect: func(cl *client.Client, reason string) {
			log.Printf("disconnect %s: %s", cl.Connection().ID(), reason)
		},
		Receive: func(cl *client.Client, pkt packet.Packet) {
			handlePacket(cl, pkt)
		},
		Log: func(message string, level reactor.Level) {
			log.Printf("[%s] %s", levelString(level), message)
		},
		Panic: func(err error) {
			log.Printf("PANIC: %v", err)
		},
	}

	r := reactor.New(callbacks, nil, packet.Serverbound, keepaliveTimeout, keepaliveInterval)

	log.Printf("mcnetd listening on %s", listen)
	if err := r.Serve(ctx, []string{listen}); err != nil {
		return fmt.Errorf("mcnetd: serve: %w", err)
	}
	return nil
}

// handlePacket is the seam where protocol-phase logic is wired in; the
// reactor only decodes and delivers packets, it never interprets them. It
// applies a Handshake's next state and answers StatusRequest and StatusPing;
// Login and Play packets are delivered here but not acted on.
func handlePacket(cl *client.Client, pkt packet.Packet) {
	switch p := pkt.(type) {
	case packet.Handshake:
		cl.SetState(p.NextState)
	case packet.StatusRequest:
		_ = cl.Send(packet.StatusResponse{JSON: `{"version":{"name":"mcnet","protocol":4},"players":{"max":20,"online":0},"description":{"text":"mcnet"}}`})
	case packet.StatusPing:
		_ = cl.Send(packet.StatusPong{Payload: p.Payload})
	}
}

func levelString(l reactor.Level) string {
	switch l {
	case reactor.LevelWarn:
		return "warn"
	case reactor.LevelError:
		return "error"
	default:
		return "info"
	}
}
