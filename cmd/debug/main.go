package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"siziqi/internal/engine"
	"siziqi/internal/mcts"
	"siziqi/internal/siziqi"
)

func main() {
	boardStr := flag.String("board", "7/7/7/7/7/7", "board string, rows top-down joined by '/'")
	discStr := flag.String("disc", "R", "side to move: R or Y")
	budgetMs := flag.Int("budget", 500, "search budget (ms)")
	flag.Parse()

	b, err := siziqi.DecodeBoard(*boardStr)
	if err != nil {
		fmt.Fprintln(os.Stderr, "bad board:", err)
		os.Exit(1)
	}
	player := siziqi.Red
	if *discStr == "Y" {
		player = siziqi.Yellow
	}

	fmt.Println("Board:", b.Encode())
	fmt.Println("Stones:", b.StoneCount(), "Winner:", b.Winner())
	fmt.Println("Legal moves:", b.LegalMoves())
	fmt.Println("Eval:", engine.EvaluateBoard(b, player, nil, -1))
	fmt.Println("Opponent open threes:", engine.CountOpenThree(b, player.Opponent()))

	e := engine.NewEngine()
	fmt.Println("Ordered moves:")
	for _, mv := range e.OrderedMoves(b, player) {
		fmt.Printf("  col=%d row=%d win=%v block=%v threats=%d score=%d\n",
			mv.Col, mv.Row, mv.IsWinning, mv.IsBlocking, mv.FutureThreats, mv.Score)
	}

	res := e.BestMove(b, player, engine.SearchConfig{TimeLimit: time.Duration(*budgetMs) * time.Millisecond})
	fmt.Printf("Alpha-beta: col=%d score=%d depth=%d nodes=%d time=%v\n",
		res.Column, res.Score, res.Depth, res.Nodes, res.TimeUsed)

	s := mcts.NewSearcher(mcts.Config{TimeLimit: time.Duration(*budgetMs) * time.Millisecond})
	mr := s.Search(b, player, nil)
	fmt.Printf("MCTS: col=%d sims=%d winrate=%.3f time=%v\n",
		mr.Column, mr.Simulations, mr.WinRate, mr.TimeUsed)
}
