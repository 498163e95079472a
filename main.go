// main.go
//
// Entrypoint for Haunted Chessboard.
//
// Modes:
//   (default)   play the game in the terminal
//   -souls      dump the Hall of Souls and exit
//   -serve      run the Hall of Souls HTTP viewer
//   -hash PW    print a bcrypt hash for ADMIN_PASSWORD_HASH
//
// Wiring: .env via godotenv, Config via envconfig, logging via
// zerolog (stderr; stdout belongs to the game). SIGINT and panics
// are caught at this boundary and turned into a closing narrative
// line so the process exits normally either way.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/robalobadob/haunted-chessboard/internal/config"
	"github.com/robalobadob/haunted-chessboard/internal/game"
	"github.com/robalobadob/haunted-chessboard/internal/httpserver"
	"github.com/robalobadob/haunted-chessboard/internal/rooms"
	"github.com/robalobadob/haunted-chessboard/internal/souls"
	"github.com/robalobadob/haunted-chessboard/internal/ui"
)

func main() {
	dumpSouls := flag.Bool("souls", false, "print the Hall of Souls and exit")
	serve := flag.Bool("serve", false, "run the Hall of Souls HTTP viewer")
	hashPw := flag.String("hash", "", "print a bcrypt hash of the given admin password and exit")
	flag.Parse()

	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	switch {
	case *hashPw != "":
		h, err := bcrypt.GenerateFromPassword([]byte(*hashPw), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal().Err(err).Msg("hash password")
		}
		fmt.Println(string(h))
	case *dumpSouls:
		ui.DumpHall(context.Background(), os.Stdout, souls.NewFileStore(cfg.SoulsFile))
	case *serve:
		runServer(cfg)
	default:
		play(cfg)
	}
}

// runServer starts the leaderboard viewer on cfg.SoulsAddr.
func runServer(cfg config.Config) {
	if cfg.SoulsDB == "" {
		log.Fatal().Msg("SOULS_DB must be set for serve mode")
	}
	store, err := souls.OpenSQLiteStore(cfg.SoulsDB)
	if err != nil {
		log.Fatal().Err(err).Msg("open souls db")
	}
	defer store.Close()

	srv := httpserver.New(store, cfg.JWTSecret, cfg.AdminPasswordHash)
	log.Info().Str("addr", cfg.SoulsAddr).Msg("starting hall-of-souls viewer")
	if err := srv.Start(cfg.SoulsAddr); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

// play runs one interactive session.
func play(cfg config.Config) {
	// The spirits must not crash the terminal: any panic or an
	// interrupt ends with a narrative line and a clean exit.
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("supernatural error")
			fmt.Println("\nA supernatural error occurred:", r)
		}
	}()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	go func() {
		<-interrupt
		fmt.Println("\n\n" + ui.InterruptMessage)
		os.Exit(0)
	}()

	scroll := souls.NewFileStore(cfg.SoulsFile)
	stores := []souls.Store{scroll}
	if cfg.SoulsDB != "" {
		if db, err := souls.OpenSQLiteStore(cfg.SoulsDB); err != nil {
			// Leaderboard is optional; the scroll still works.
			log.Warn().Err(err).Msg("open souls db")
		} else {
			defer db.Close()
			stores = append(stores, db)
		}
	}

	runner := &ui.Runner{
		In: bufio.NewScanner(os.Stdin),
		Printer: &ui.Printer{
			Out:   os.Stdout,
			Delay: time.Duration(cfg.TypeDelayMs) * time.Millisecond,
		},
		Session: game.New(rooms.All(), cfg.StartHealth, cfg.MovePenalty),
		Stores:  stores,
		Scroll:  scroll,
	}
	state := runner.Run(context.Background())
	log.Info().Str("state", state).Int("health", runner.Session.Health).Msg("session finished")
}
