package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"siziqi/internal/engine"
	"siziqi/internal/mcts"
	"siziqi/internal/siziqi"
)

type playerKind string

const (
	playerAlphaBeta playerKind = "alphabeta"
	playerMCTS      playerKind = "mcts"
	resultDraw      playerKind = "draw"
)

type gameResult struct {
	ID     uuid.UUID
	Winner playerKind
	Plies  int
	Took   time.Duration
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func main() {
	// .env 不存在就算了，env 只是 flag 的默认值来源
	_ = godotenv.Load()

	games := flag.Int("games", envInt("SELFPLAY_GAMES", 10), "number of games to play")
	abMs := flag.Int("ab-ms", envInt("SELFPLAY_AB_MS", 200), "alpha-beta time budget per move (ms)")
	mctsMs := flag.Int("mcts-ms", envInt("SELFPLAY_MCTS_MS", 200), "MCTS time budget per move (ms)")
	workers := flag.Int("workers", envInt("SELFPLAY_WORKERS", 4), "concurrent games")
	seed := flag.Int64("seed", int64(envInt("SELFPLAY_SEED", 1)), "base RNG seed")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	log.Info().
		Int("games", *games).
		Int("ab_ms", *abMs).
		Int("mcts_ms", *mctsMs).
		Int("workers", *workers).
		Msg("selfplay-start")

	results := make([]gameResult, *games)

	var g errgroup.Group
	g.SetLimit(*workers)
	for i := 0; i < *games; i++ {
		i := i
		g.Go(func() error {
			// alpha-beta 和 MCTS 轮流执红，消掉先手优势
			abPlaysRed := i%2 == 0
			results[i] = playGame(*abMs, *mctsMs, *seed+int64(i), abPlaysRed)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("selfplay-failed")
	}

	byWinner := lo.CountValuesBy(results, func(r gameResult) playerKind { return r.Winner })
	totalPlies := lo.SumBy(results, func(r gameResult) int { return r.Plies })

	log.Info().
		Int("alphabeta_wins", byWinner[playerAlphaBeta]).
		Int("mcts_wins", byWinner[playerMCTS]).
		Int("draws", byWinner[resultDraw]).
		Int("avg_plies", totalPlies / max(*games, 1)).
		Msg("selfplay-done")

	fmt.Printf("alpha-beta %d : %d mcts (draws %d)\n",
		byWinner[playerAlphaBeta], byWinner[playerMCTS], byWinner[resultDraw])
}

func playGame(abMs, mctsMs int, seed int64, abPlaysRed bool) gameResult {
	id := uuid.New()
	start := time.Now()

	// 每局各自独立的会话，互相不共享置换表和随机源
	e := engine.NewEngineSeeded(seed)
	s := mcts.NewSearcherSeeded(mcts.Config{
		TimeLimit: time.Duration(mctsMs) * time.Millisecond,
		Cpuct:     mcts.DefaultConfig().Cpuct,
	}, seed+1)

	abCfg := engine.SearchConfig{TimeLimit: time.Duration(abMs) * time.Millisecond}

	board := &siziqi.Board{}
	player := siziqi.Red
	plies := 0

	for ; plies < siziqi.NumCells; plies++ {
		abTurn := (player == siziqi.Red) == abPlaysRed

		var col int
		if abTurn {
			col = e.BestMove(board, player, abCfg).Column
		} else {
			col = s.Search(board, player, nil).Column
		}
		if col < 0 {
			break
		}

		next, _, err := board.ApplyDrop(col, player)
		if err != nil {
			log.Error().Str("game", id.String()).Int("column", col).Err(err).Msg("illegal-move")
			break
		}
		board = next

		if w := board.Winner(); w != siziqi.Empty {
			winner := playerMCTS
			if (w == siziqi.Red) == abPlaysRed {
				winner = playerAlphaBeta
			}
			log.Debug().
				Str("game", id.String()).
				Str("winner", string(winner)).
				Int("plies", plies+1).
				Msg("game-over")
			return gameResult{ID: id, Winner: winner, Plies: plies + 1, Took: time.Since(start)}
		}
		if board.Full() {
			break
		}
		player = player.Opponent()
	}

	log.Debug().Str("game", id.String()).Int("plies", plies).Msg("game-drawn")
	return gameResult{ID: id, Winner: resultDraw, Plies: plies, Took: time.Since(start)}
}
