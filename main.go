package main

import (
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/tm-paseri/termjack/internal/blackjack"
	"github.com/tm-paseri/termjack/internal/config"
	"github.com/tm-paseri/termjack/internal/console"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	_ = godotenv.Load()

	cfg, err := config.FromEnvironment()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logOut := io.Discard
	if cfg.Debug {
		logOut = os.Stderr
	}
	logger := log.New(logOut, "termjack ", log.LstdFlags|log.Lmicroseconds)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Printf("starting: chips=%d seed=%d", cfg.StartingChips, seed)

	game := blackjack.NewGame(console.New(os.Stdin, os.Stdout, cfg.Color), blackjack.Options{
		StartingChips: cfg.StartingChips,
		Shuffler:      rand.New(rand.NewSource(seed)),
		Logger:        logger,
	})
	if err := game.Run(); err != nil {
		log.Fatalf("game: %v", err)
	}
}
