package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/bowling/internal/store"
)

// usage: bowling 10 7 3 9 0 ...
func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	rolls, err := parseRolls(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("invalid rolls")
	}

	score, err := play(context.Background(), store.NewMemoryStore(), rolls)
	if err != nil {
		log.Fatal().Err(err).Ints("rolls", rolls).Msg("cannot score game")
	}
	log.Info().Int("score", score).Int("rolls", len(rolls)).Msg("game scored")
	fmt.Println(score)
}

// play records rolls on a fresh game and scores it.
func play(ctx context.Context, st store.Store, rolls []int) (int, error) {
	id, err := st.Create(ctx)
	if err != nil {
		return 0, err
	}
	defer func() { _ = st.Delete(ctx, id) }()

	for _, pins := range rolls {
		if err := st.Roll(ctx, id, pins); err != nil {
			return 0, err
		}
	}

	frames, err := st.Frames(ctx, id)
	if err != nil {
		return 0, err
	}
	for _, f := range frames {
		log.Debug().Int("frame", f.Number).Str("kind", string(f.Kind)).Ints("rolls", f.Rolls).
			Int("score", f.Score).Int("total", f.Total).Msg("frame")
	}
	return st.Score(ctx, id)
}

func parseRolls(args []string) ([]int, error) {
	rolls := make([]int, 0, len(args))
	for _, a := range args {
		pins, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("roll %q: %w", a, err)
		}
		rolls = append(rolls, pins)
	}
	return rolls, nil
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
