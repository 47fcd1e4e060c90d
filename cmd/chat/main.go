package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"

	"github.com/StaticAccess/Lynai/internal"
	"github.com/StaticAccess/Lynai/roomapi"
	"github.com/StaticAccess/Lynai/runtime/workers"
	"github.com/StaticAccess/Lynai/session"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	// The main function acts as a thin wrapper.
	// Its only responsibility is to call run() and handle the OS exit code.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Chat terminated with error: %v\n", err)
	}
	os.Exit(code)
}

func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return exitConfig, err
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	roomID := flag.String("room", "", "Room id to join")
	password := flag.String("password", "", "Room password")
	create := flag.Bool("create", false, "Create a new room instead of joining one")
	flag.Parse()

	// 2. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Room of record
	api := roomapi.NewClient(config.APIBaseURL, config.HTTPTimeout, log)

	id := *roomID
	if *create {
		created, err := api.CreateRoom(ctx, *password)
		if err != nil {
			return exitRuntime, fmt.Errorf("create room failed: %w", err)
		}
		id = created
		color.Green.Printf("Room created: %s\n", id)
	} else {
		if id == "" {
			return exitConfig, fmt.Errorf("missing -room (or use -create)")
		}
		if err := api.JoinRoom(ctx, id, *password); err != nil {
			return exitRuntime, fmt.Errorf("join room failed: %w", err)
		}
	}

	// 4. Session & Console
	sink := newConsoleSink(os.Stdout)
	deps := session.Deps{
		Rooms:   api,
		Renames: api,
		Timers:  api,
		Exports: api,
		Imports: api,
		Log:     log,
	}
	controller, err := session.Open(ctx, config.WSBaseURL, id, deps, session.WithSinks(sink))
	if err != nil {
		return exitRuntime, err
	}

	term := newTerminal(os.Stdin, os.Stdout, controller, id, sink.Ended())

	// 5. Supervision: the session loop and the terminal reader run side
	// by side until the session ends or the user interrupts.
	sup := workers.NewSupervisor(log)
	sup.Add(controller, term).Run(ctx)

	log.Info("Program stopped cleanly")
	return exitOK, nil
}
