package engine

import (
	"time"

	"github.com/rs/zerolog/log"

	"siziqi/internal/siziqi"
)

const (
	// 足够大的值当正负无穷
	scoreInf = 1_000_000_000

	// 分数离 winScore 这么近就认为是必胜线，不用再加深了
	winScoreMargin = 64
)

// SearchConfig 搜索配置
type SearchConfig struct {
	TimeLimit time.Duration // 软时间预算（0 表示只跑起始深度那一轮）
	Priors    []float64     // 外部策略给的逐列先验，可为 nil
}

// SearchResult 搜索结果
type SearchResult struct {
	Column   int
	Score    int
	Depth    int // 实际完成的最深一轮
	Nodes    int64
	TimeUsed time.Duration
}

// 开局分支因子大、深度价值低，按盘面子数挑起始深度
func startDepthFor(stones int) int {
	switch {
	case stones < 8:
		return 4
	case stones < 20:
		return 6
	default:
		return 8
	}
}

// BestMove 顶层驱动：迭代加深 alpha-beta。
// 先清置换表（根调用按“每次搜索”算，不是每个节点）；
// 有一步直接赢的就立刻返回，不搜；否则从起始深度每轮 +2
// （跟双方各走一手的两 ply 结构对齐）逐轮加深，
// 直到 elapsed*3 > 预算 预测下一轮会超时，或当前轮已见必胜分。
// 软预算：一轮开始了就跑完，时间检查只拦下一轮。
func (e *Engine) BestMove(b *siziqi.Board, player siziqi.Disc, cfg SearchConfig) SearchResult {
	start := time.Now()
	e.tt.Clear()
	e.nodes = 0

	legal := b.LegalMoves()
	if len(legal) == 0 {
		return SearchResult{Column: -1, TimeUsed: time.Since(start)}
	}

	// 有直接四连的列就不用搜了
	for _, col := range legal {
		child, _, err := b.ApplyDrop(col, player)
		if err != nil {
			continue
		}
		if siziqi.CheckWin(bitsOf(child, player)) {
			return SearchResult{Column: col, Score: winScore, Depth: 1, TimeUsed: time.Since(start)}
		}
	}

	best := SearchResult{Column: -1}
	completed := false

	for depth := startDepthFor(b.StoneCount()); ; depth += 2 {
		score, col := e.searchRoot(b, player, depth, cfg.Priors)
		if col >= 0 {
			best = SearchResult{Column: col, Score: score, Depth: depth}
			completed = true
		}

		log.Debug().
			Str("session", e.ID.String()).
			Int("depth", depth).
			Int("score", score).
			Int64("nodes", e.nodes).
			Dur("elapsed", time.Since(start)).
			Msg("deepening-iteratively")

		if score >= winScore-winScoreMargin {
			// 已经看到必胜线，直接落子
			break
		}
		if depth >= siziqi.NumCells {
			break
		}
		elapsed := time.Since(start)
		if cfg.TimeLimit <= 0 || elapsed*3 > cfg.TimeLimit {
			break
		}
	}

	if !completed {
		// 理论上走不到：上面的必胜短路保证至少有列可返回。兜底随机
		best.Column = legal[e.rng.Intn(len(legal))]
	}
	best.Nodes = e.nodes
	best.TimeUsed = time.Since(start)
	return best
}

func (e *Engine) searchRoot(b *siziqi.Board, player siziqi.Disc, depth int, priors []float64) (int, int) {
	alpha, beta := -scoreInf, scoreInf
	bestScore, bestCol := -scoreInf, -1

	for _, mv := range e.OrderedMoves(b, player) {
		child, _, err := b.ApplyDrop(mv.Col, player)
		if err != nil {
			continue
		}
		score := -e.alphaBeta(child, player.Opponent(), depth-1, -beta, -alpha, mv.Col, priors)
		if score > bestScore {
			bestScore = score
			bestCol = mv.Col
		}
		if score > alpha {
			alpha = score
		}
	}
	return bestScore, bestCol
}

// alphaBeta negamax 递归：查表 → 终局判定 → 展开排序 → 递归 → 存表。
// 返回值从 player（当前行棋方）视角为正。
func (e *Engine) alphaBeta(b *siziqi.Board, player siziqi.Disc, depth, alpha, beta int, lastCol int, priors []float64) int {
	e.nodes++
	alphaOrig := alpha

	key := e.zob.Hash(b)
	if entry, ok := e.tt.Lookup(key); ok && entry.Depth >= depth {
		switch entry.Flag {
		case ttExact:
			return entry.Score
		case ttLower:
			if entry.Score > alpha {
				alpha = entry.Score
			}
		case ttUpper:
			if entry.Score < beta {
				beta = entry.Score
			}
		}
		if alpha >= beta {
			return entry.Score
		}
	}

	// 终局：上一手可能已经连成四
	own, theirs := bitsOf(b, player), bitsOf(b, player.Opponent())
	if siziqi.CheckWin(own) {
		return winScore + depth // 越早赢分越高
	}
	if siziqi.CheckWin(theirs) {
		return -winScore - depth
	}

	legal := b.LegalMoves()
	if len(legal) == 0 {
		return 0 // 和棋
	}

	if depth <= 0 {
		// 只有“吵”的叶子才值得静态延伸，安静局面直接静态评估
		if e.isPositionNoisy(b, player) {
			score, _ := e.Quiesce(b, alpha, beta, player)
			return score
		}
		return EvaluateBoard(b, player, priors, lastCol)
	}

	bestScore, bestCol := -scoreInf, -1
	for _, mv := range e.OrderedMoves(b, player) {
		child, _, err := b.ApplyDrop(mv.Col, player)
		if err != nil {
			continue
		}
		score := -e.alphaBeta(child, player.Opponent(), depth-1, -beta, -alpha, mv.Col, priors)
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

	flag := ttExact
	if bestScore <= alphaOrig {
		flag = ttUpper // 没抬过 alpha：只是上界
	} else if bestScore >= beta {
		flag = ttLower // beta 截断：至少有这么好
	}
	e.tt.Store(key, ttEntry{Depth: depth, Score: bestScore, Col: bestCol, Flag: flag})

	return bestScore
}

// isPositionNoisy 叶子是否“吵”：
// 任一方有一步直接赢、任一方已有活三、或任一步会让某方活三数上涨。
// 只有吵的叶子才交给静态延伸，安静叶子必须走静态评估，控制延伸成本。
func (e *Engine) isPositionNoisy(b *siziqi.Board, player siziqi.Disc) bool {
	opp := player.Opponent()
	legal := b.LegalMoves()

	for _, col := range legal {
		mine, _, err := b.ApplyDrop(col, player)
		if err != nil {
			continue
		}
		if siziqi.CheckWin(bitsOf(mine, player)) {
			return true
		}
		theirs, _, err := b.ApplyDrop(col, opp)
		if err != nil {
			continue
		}
		if siziqi.CheckWin(bitsOf(theirs, opp)) {
			return true
		}
	}

	myThrees := CountOpenThree(b, player)
	oppThrees := CountOpenThree(b, opp)
	if myThrees > 0 || oppThrees > 0 {
		return true
	}

	for _, col := range legal {
		mine, _, err := b.ApplyDrop(col, player)
		if err != nil {
			continue
		}
		if CountOpenThree(mine, player) > myThrees {
			return true
		}
		theirs, _, err := b.ApplyDrop(col, opp)
		if err != nil {
			continue
		}
		if CountOpenThree(theirs, opp) > oppThrees {
			return true
		}
	}
	return false
}
