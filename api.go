// Package siziqi 对外的库门面：给定局面和时间预算，返回要下的列。
// 每次调用都新建一个搜索会话（置换表、随机源都是会话私有），
// 多局并发互不干扰。
package siziqi

import (
	"time"

	"siziqi/internal/engine"
	core "siziqi/internal/siziqi"
	"siziqi/internal/mcts"
)

type (
	Board = core.Board
	Disc  = core.Disc
)

const (
	Empty  = core.Empty
	Red    = core.Red
	Yellow = core.Yellow

	Rows = core.Rows
	Cols = core.Cols
)

// DecodeBoard 解析紧凑棋盘串（行用“/”隔开，数字压缩空位）。
func DecodeBoard(s string) (*Board, error) { return core.DecodeBoard(s) }

// LegalMoves 返回所有还能落子的列。
func LegalMoves(b *Board) []int { return b.LegalMoves() }

// GetBestMove 迭代加深 alpha-beta 选步。budgetMs 是软预算；
// priors 可为 nil。只要还有合法列就一定返回其中之一，否则 -1。
func GetBestMove(b *Board, player Disc, budgetMs int, priors []float64) int {
	e := engine.NewEngine()
	res := e.BestMove(b, player, engine.SearchConfig{
		TimeLimit: time.Duration(budgetMs) * time.Millisecond,
		Priors:    priors,
	})
	return res.Column
}

// EvaluateBoard 静态评估（从 player 视角）。lastCol 是产生该局面的那步
// 所在列，没有就传 -1；priors 可为 nil。
func EvaluateBoard(b *Board, player Disc, priors []float64, lastCol int) int {
	return engine.EvaluateBoard(b, player, priors, lastCol)
}

// RunMCTS 独立的蒙特卡洛树搜索入口，纯壁钟驱动，可做第二意见。
func RunMCTS(b *Board, player Disc, budgetMs int, priors []float64) int {
	s := mcts.NewSearcher(mcts.Config{
		TimeLimit: time.Duration(budgetMs) * time.Millisecond,
		Cpuct:     mcts.DefaultConfig().Cpuct,
	})
	return s.Search(b, player, priors).Column
}
