package engine

import "siziqi/internal/siziqi"

const (
	quiesceMaxPly     = 6
	quiesceNodeBudget = 4000
)

type quiesceContext struct {
	nodes int
}

func (ctx *quiesceContext) reachNodeBudget() bool {
	ctx.nodes++
	return ctx.nodes > quiesceNodeBudget
}

// Quiesce 静态延伸：深度打穿之后，只沿“强制手”继续走，
// 免得在一串互相叫杀的中间截断评估。返回分数和推荐列（可能是 -1）。
// 分数语义跟一层 alpha-beta 一致：从 player 视角、落在 [alpha,beta] 窗口里。
func (e *Engine) Quiesce(b *siziqi.Board, alpha, beta int, player siziqi.Disc) (int, int) {
	ctx := &quiesceContext{}
	return e.quiesce(b, player, alpha, beta, quiesceMaxPly, ctx)
}

func (e *Engine) quiesce(b *siziqi.Board, player siziqi.Disc, alpha, beta, ply int, ctx *quiesceContext) (int, int) {
	standPat := EvaluateBoard(b, player, nil, -1)
	if ply <= 0 || ctx.reachNodeBudget() {
		return standPat, -1
	}
	if standPat >= beta {
		return standPat, -1
	}
	if standPat > alpha {
		alpha = standPat
	}

	bestScore, bestCol := standPat, -1
	for _, mv := range e.tacticalMoves(b, player) {
		if mv.IsWinning {
			return winScore + ply, mv.Col
		}
		child, _, err := b.ApplyDrop(mv.Col, player)
		if err != nil {
			continue
		}
		score, _ := e.quiesce(child, player.Opponent(), -beta, -alpha, ply-1, ctx)
		score = -score
		if score > bestScore {
			bestScore = score
			bestCol = mv.Col
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			break
		}
	}
	return bestScore, bestCol
}

// tacticalMoves 只留强制手：直接赢、挡对方直接赢、
// 或者落完之后任一方活三数有变化的步。安静步一概不延伸。
func (e *Engine) tacticalMoves(b *siziqi.Board, player siziqi.Disc) []Move {
	myThrees := CountOpenThree(b, player)

	all := e.OrderedMoves(b, player)
	out := all[:0]
	for _, mv := range all {
		if mv.IsWinning || mv.IsBlocking || mv.FutureThreats > 0 {
			out = append(out, mv)
			continue
		}
		child, _, err := b.ApplyDrop(mv.Col, player)
		if err != nil {
			continue
		}
		if CountOpenThree(child, player) > myThrees {
			out = append(out, mv)
		}
	}
	return out
}
