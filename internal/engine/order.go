package engine

import (
	"sort"

	"siziqi/internal/siziqi"
)

// Move 一个带注解的候选步，只在当前节点排序时存在。
type Move struct {
	Col           int
	Row           int
	IsWinning     bool // 我方落这里直接四连
	IsBlocking    bool // 对方落这里会四连，抢先占掉
	FutureThreats int  // 这步送给对方多少条新活三
	Score         int  // 综合排序键
}

const (
	orderWinBonus    = 1_000_000
	orderBlockBonus  = 100_000
	orderThreatCost  = 10_000
	orderCenterScale = 100
)

// OrderedMoves 给所有合法列打分并按 Score 降序排。
// 好的排序是 alpha-beta 剪枝效率的来源；每个节点现算，不缓存，
// 所以这里的开销必须远小于它省下的递归量。
func (e *Engine) OrderedMoves(b *siziqi.Board, player siziqi.Disc) []Move {
	opp := player.Opponent()
	oppThreesBefore := CountOpenThree(b, opp)

	legal := b.LegalMoves()
	moves := make([]Move, 0, len(legal))
	for _, col := range legal {
		mine, row, err := b.ApplyDrop(col, player)
		if err != nil {
			continue
		}
		theirs, _, err := b.ApplyDrop(col, opp)
		if err != nil {
			continue
		}

		mv := Move{Col: col, Row: row}

		mineBits := bitsOf(mine, player)
		theirBits := bitsOf(theirs, opp)
		mv.IsWinning = siziqi.CheckWin(mineBits)
		mv.IsBlocking = siziqi.CheckWin(theirBits)

		enabled := CountOpenThree(mine, opp) - oppThreesBefore
		if enabled < 0 {
			enabled = 0
		}
		mv.FutureThreats = enabled

		mv.Score = EvaluateBoard(mine, player, nil, col) -
			orderThreatCost*enabled +
			orderCenterScale*(siziqi.Cols/2-abs(col-siziqi.Cols/2))
		if mv.IsWinning {
			mv.Score += orderWinBonus
		}
		if mv.IsBlocking {
			mv.Score += orderBlockBonus
		}

		moves = append(moves, mv)
	}

	sort.SliceStable(moves, func(i, j int) bool {
		return moves[i].Score > moves[j].Score
	})
	return moves
}

func bitsOf(b *siziqi.Board, d siziqi.Disc) uint64 {
	red, yellow := b.Bitboards()
	if d == siziqi.Yellow {
		return yellow
	}
	return red
}
