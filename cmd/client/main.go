// Command client connects a randomized Wind Waker game running in an
// emulator to a multiworld server and keeps the two in sync.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"

	"tww-multiworld/world/internal/apclient"
	"tww-multiworld/world/internal/dolphin"
	"tww-multiworld/world/internal/tracker"
	"tww-multiworld/world/logging"
	loggingSinks "tww-multiworld/world/logging/sinks"
)

type config struct {
	ServerURL   string `env:"TWW_SERVER_URL" envDefault:"ws://localhost:38281"`
	SlotName    string `env:"TWW_SLOT_NAME"`
	Password    string `env:"TWW_PASSWORD"`
	LogJSONPath string `env:"TWW_LOG_JSON"`
	Debug       bool   `env:"TWW_DEBUG"`
}

func main() {
	if err := run(context.Background()); err != nil {
		log.Fatalf("%v", err)
	}
}

func run(ctx context.Context) error {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}
	flag.StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "multiworld server websocket url")
	flag.StringVar(&cfg.SlotName, "slot", cfg.SlotName, "slot name to connect as")
	flag.StringVar(&cfg.Password, "password", cfg.Password, "room password")
	flag.StringVar(&cfg.LogJSONPath, "log-json", cfg.LogJSONPath, "path for newline-delimited JSON logs")
	flag.BoolVar(&cfg.Debug, "debug", cfg.Debug, "log debug events")
	flag.Parse()

	if cfg.SlotName == "" {
		return fmt.Errorf("a slot name is required (TWW_SLOT_NAME or -slot)")
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logCfg := logging.DefaultConfig()
	if cfg.Debug {
		logCfg.MinimumSeverity = logging.SeverityDebug
	}
	sinks := []logging.NamedSink{
		{Name: "console", Sink: loggingSinks.NewConsoleSink(os.Stdout, logCfg.Console)},
	}
	if cfg.LogJSONPath != "" {
		file, err := os.OpenFile(cfg.LogJSONPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open json log: %w", err)
		}
		defer file.Close()
		sinks = append(sinks, logging.NamedSink{
			Name: "json",
			Sink: loggingSinks.NewJSON(file, logCfg.JSON.FlushInterval),
		})
	}
	router, err := logging.NewRouter(nil, logCfg, sinks)
	if err != nil {
		return fmt.Errorf("construct logging router: %w", err)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		router.Close(closeCtx)
	}()

	// The process-attach memory engine is platform specific and ships
	// separately; the in-memory fake keeps the client runnable for dry
	// runs until one is plugged in.
	hook := dolphin.NewFakeHook()

	session := tracker.NewSession(tracker.Config{
		SlotName:  cfg.SlotName,
		Password:  cfg.Password,
		Memory:    dolphin.NewMemory(hook),
		Publisher: logging.WithFields(router, map[string]any{"slot_name": cfg.SlotName}),
	})

	go serverLoop(ctx, cfg.ServerURL, session)
	go session.RunEmulatorLoop(ctx)

	log.Printf("Starting Dolphin connector. Type `dolphin` for status information.")
	console(ctx, session)
	return nil
}

// serverLoop keeps one live server connection, redialing with a fixed
// backoff whenever it drops.
func serverLoop(ctx context.Context, url string, session *tracker.Session) {
	for ctx.Err() == nil {
		conn, err := apclient.Dial(ctx, url, session, log.Default())
		if err != nil {
			log.Printf("server dial failed: %v (retrying in %s)", err, apclient.DefaultReconnectBackoff)
			sleepCtx(ctx, apclient.DefaultReconnectBackoff)
			continue
		}
		session.AttachServer(conn)
		err = conn.Run()
		session.DetachServer()
		conn.Close()
		if ctx.Err() != nil {
			return
		}
		if err != nil {
			log.Printf("server connection lost: %v (reconnecting in %s)", err, apclient.DefaultReconnectBackoff)
		}
		sleepCtx(ctx, apclient.DefaultReconnectBackoff)
	}
}

func sleepCtx(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}

// console reads commands from stdin until EOF or shutdown.
func console(ctx context.Context, session *tracker.Session) {
	scanner := bufio.NewScanner(os.Stdin)
	lines := make(chan string)
	go func() {
		defer close(lines)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case line, ok := <-lines:
			if !ok {
				<-ctx.Done()
				return
			}
			switch strings.TrimSpace(line) {
			case "":
			case "dolphin":
				fmt.Printf("Dolphin Status: %s\n", session.Status())
			case "telemetry":
				data, err := json.MarshalIndent(session.Telemetry(), "", "  ")
				if err != nil {
					fmt.Printf("telemetry snapshot failed: %v\n", err)
					continue
				}
				fmt.Println(string(data))
			default:
				fmt.Printf("unknown command %q (try `dolphin` or `telemetry`)\n", strings.TrimSpace(line))
			}
		}
	}
}
