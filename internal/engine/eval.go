package engine

import (
	"golang.org/x/exp/constraints"

	"siziqi/internal/siziqi"
)

// ======= 静态评估 =======

const (
	winScore = 1_000_000

	// 对手叉（双重活三）基本等于输棋，给一个大额固定罚分
	forkDoublePenalty = 500_000
	forkSinglePenalty = 80_000

	threeOpenEndBonus = 300 // 活三，空位在窗口端点（还能延伸）
	threeGapBonus     = 150 // 三连但空位夹在中间
	twoBonus          = 40  // 二连 + 两空，成形中的威胁
	windowCenterBonus = 30  // 占住窗口中间两格
	oppThreePenalty   = 250

	centerColBonus = 40 // 中路列逐格加/减分
	topRowDamp     = 2  // 顶行窗口威胁打折：要多垫好几手才兑现
	priorWeight    = 1000
)

func abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

var evalDirs = [4][2]int{
	{0, 1},  // 横
	{1, 0},  // 纵
	{1, 1},  // 斜 ↘
	{1, -1}, // 斜 ↙
}

// EvaluateWindow 给一个 4 格窗口打分（从 player 视角）。
// 入参不合法（长度不对、出现未知符号）直接返回 0——
// 评估器绝不允许把一次坏探测变成搜索中断。
func EvaluateWindow(window []siziqi.Disc, player siziqi.Disc) int {
	if len(window) != 4 || player == siziqi.Empty {
		return 0
	}
	opp := player.Opponent()

	var own, theirs, empty int
	for _, d := range window {
		switch d {
		case player:
			own++
		case opp:
			theirs++
		case siziqi.Empty:
			empty++
		default:
			return 0
		}
	}

	if own == 4 {
		return winScore
	}
	if theirs == 4 {
		return -winScore
	}

	score := 0
	switch {
	case own == 3 && empty == 1:
		// 空位在端点说明这个三连还开着口，比夹在中间的更急
		if window[0] == siziqi.Empty || window[3] == siziqi.Empty {
			score += threeOpenEndBonus
		} else {
			score += threeGapBonus
		}
	case own == 2 && empty == 2:
		score += twoBonus
	}
	if theirs == 3 && empty == 1 {
		score -= oppThreePenalty
	}

	// 窗口中间两格比端点值钱
	if window[1] == player {
		score += windowCenterBonus
	}
	if window[2] == player {
		score += windowCenterBonus
	}
	return score
}

// evaluatePosition 把所有横/纵/斜 4 格窗口的分加起来，
// 顶行窗口按固定系数打折，另外整条中路列逐格加减分。
func evaluatePosition(b *siziqi.Board, player siziqi.Disc) int {
	score := 0
	var window [4]siziqi.Disc

	for _, dir := range evalDirs {
		dr, dc := dir[0], dir[1]
		for r := 0; r < siziqi.Rows; r++ {
			for c := 0; c < siziqi.Cols; c++ {
				er, ec := r+3*dr, c+3*dc
				if er < 0 || er >= siziqi.Rows || ec < 0 || ec >= siziqi.Cols {
					continue
				}
				touchesTop := false
				for i := 0; i < 4; i++ {
					rr, cc := r+i*dr, c+i*dc
					window[i] = b.At(rr, cc)
					if rr == 0 {
						touchesTop = true
					}
				}
				w := EvaluateWindow(window[:], player)
				if touchesTop {
					w /= topRowDamp
				}
				score += w
			}
		}
	}

	// 中路列整列加/减分
	mid := siziqi.Cols / 2
	opp := player.Opponent()
	for r := 0; r < siziqi.Rows; r++ {
		switch b.At(r, mid) {
		case player:
			score += centerColBonus
		case opp:
			score -= centerColBonus
		}
	}

	return score
}

// EvaluateBoard 完整局面评估（从 player 视角）。
// 已有四连直接给饱和分；对手有活三叉子直接给大额罚分；
// 否则退回窗口评估，可选地叠加外部策略给的该步先验。
// priors 为 nil 或 lastCol 为 -1 时行为不变。
func EvaluateBoard(b *siziqi.Board, player siziqi.Disc, priors []float64, lastCol int) int {
	red, yellow := b.Bitboards()
	own, theirs := red, yellow
	if player == siziqi.Yellow {
		own, theirs = yellow, red
	}
	if siziqi.CheckWin(own) {
		return winScore
	}
	if siziqi.CheckWin(theirs) {
		return -winScore
	}

	oppThrees := CountOpenThree(b, player.Opponent())
	if oppThrees >= 2 {
		// 双活三堵不完
		return -forkDoublePenalty
	}
	if oppThrees == 1 {
		return -forkSinglePenalty
	}

	score := evaluatePosition(b, player)
	if priors != nil && lastCol >= 0 && lastCol < len(priors) {
		score += int(priors[lastCol] * priorWeight)
	}
	return score
}

// CountOpenThree 数 d 方“三连且至少一端开口”的条数，四个方向都扫。
func CountOpenThree(b *siziqi.Board, d siziqi.Disc) int {
	count := 0
	for _, dir := range evalDirs {
		dr, dc := dir[0], dir[1]
		for r := 0; r < siziqi.Rows; r++ {
			for c := 0; c < siziqi.Cols; c++ {
				er, ec := r+2*dr, c+2*dc
				if er < 0 || er >= siziqi.Rows || ec < 0 || ec >= siziqi.Cols {
					continue
				}
				if b.At(r, c) != d || b.At(r+dr, c+dc) != d || b.At(er, ec) != d {
					continue
				}
				// 两端任意一头是空格就算开口
				pr, pc := r-dr, c-dc
				nr, nc := r+3*dr, c+3*dc
				open := false
				if pr >= 0 && pr < siziqi.Rows && pc >= 0 && pc < siziqi.Cols && b.At(pr, pc) == siziqi.Empty {
					open = true
				}
				if nr >= 0 && nr < siziqi.Rows && nc >= 0 && nc < siziqi.Cols && b.At(nr, nc) == siziqi.Empty {
					open = true
				}
				if open {
					count++
				}
			}
		}
	}
	return count
}

// 方向权重：横向威胁优先处理，其次竖排，斜线最后
var blockDirWeight = [4]int{4, 3, 2, 2}

// FindOpenThreeBlock 在对手所有“三子带缺口”的形里，
// 找一个既能补上缺口、当前又真能落进去（受列高限制）的列。
// 多个威胁时按方向权重 + 靠中程度取最优；没有返回 -1。
func FindOpenThreeBlock(b *siziqi.Board, opp siziqi.Disc) int {
	bestCol := -1
	bestScore := -1

	for di, dir := range evalDirs {
		dr, dc := dir[0], dir[1]
		for r := 0; r < siziqi.Rows; r++ {
			for c := 0; c < siziqi.Cols; c++ {
				er, ec := r+3*dr, c+3*dc
				if er < 0 || er >= siziqi.Rows || ec < 0 || ec >= siziqi.Cols {
					continue
				}
				oppCount, gapRow, gapCol := 0, -1, -1
				ok := true
				for i := 0; i < 4; i++ {
					rr, cc := r+i*dr, c+i*dc
					switch b.At(rr, cc) {
					case opp:
						oppCount++
					case siziqi.Empty:
						gapRow, gapCol = rr, cc
					default:
						ok = false
					}
				}
				if !ok || oppCount != 3 || gapCol < 0 {
					continue
				}
				// 缺口必须是当前列高下一手就能落到的位置
				if b.DropRow(gapCol) != gapRow {
					continue
				}
				s := blockDirWeight[di]*10 + (siziqi.Cols/2 - abs(gapCol-siziqi.Cols/2))
				if s > bestScore {
					bestScore = s
					bestCol = gapCol
				}
			}
		}
	}
	return bestCol
}
