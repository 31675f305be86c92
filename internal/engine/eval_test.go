package engine

import (
	"testing"

	"siziqi/internal/siziqi"
)

func mustBoard(t *testing.T, s string) *siziqi.Board {
	t.Helper()
	b, err := siziqi.DecodeBoard(s)
	if err != nil {
		t.Fatalf("bad board fixture %q: %v", s, err)
	}
	return b
}

func TestEvaluateWindowSaturation(t *testing.T) {
	four := []siziqi.Disc{siziqi.Red, siziqi.Red, siziqi.Red, siziqi.Red}
	if got := EvaluateWindow(four, siziqi.Red); got != winScore {
		t.Fatalf("own four: got=%d want=%d", got, winScore)
	}
	if got := EvaluateWindow(four, siziqi.Yellow); got != -winScore {
		t.Fatalf("opponent four: got=%d want=%d", got, -winScore)
	}
}

func TestEvaluateWindowThreeOrdering(t *testing.T) {
	openEnd := []siziqi.Disc{siziqi.Empty, siziqi.Red, siziqi.Red, siziqi.Red}
	gap := []siziqi.Disc{siziqi.Red, siziqi.Red, siziqi.Empty, siziqi.Red}
	two := []siziqi.Disc{siziqi.Red, siziqi.Red, siziqi.Empty, siziqi.Empty}

	sOpen := EvaluateWindow(openEnd, siziqi.Red)
	sGap := EvaluateWindow(gap, siziqi.Red)
	sTwo := EvaluateWindow(two, siziqi.Red)

	if !(sOpen > sGap && sGap > sTwo && sTwo > 0) {
		t.Fatalf("bonus ordering wrong: open=%d gap=%d two=%d", sOpen, sGap, sTwo)
	}
}

func TestEvaluateWindowFailsSafe(t *testing.T) {
	// 长度不对、未知符号都静默返回 0，绝不中断搜索
	if got := EvaluateWindow([]siziqi.Disc{siziqi.Red, siziqi.Red, siziqi.Red}, siziqi.Red); got != 0 {
		t.Fatalf("short window: got=%d want=0", got)
	}
	if got := EvaluateWindow([]siziqi.Disc{siziqi.Red, siziqi.Disc(9), siziqi.Red, siziqi.Red}, siziqi.Red); got != 0 {
		t.Fatalf("junk symbol: got=%d want=0", got)
	}
	if got := EvaluateWindow(nil, siziqi.Red); got != 0 {
		t.Fatalf("nil window: got=%d want=0", got)
	}
}

func TestEvaluateBoardWinShortCircuit(t *testing.T) {
	b := mustBoard(t, "7/7/Y6/Y6/Y6/Y6")
	if got := EvaluateBoard(b, siziqi.Yellow, nil, -1); got != winScore {
		t.Fatalf("winner's view: got=%d want=%d", got, winScore)
	}
	if got := EvaluateBoard(b, siziqi.Red, nil, -1); got != -winScore {
		t.Fatalf("loser's view: got=%d want=%d", got, -winScore)
	}
}

func TestEvaluateBoardForkPenalties(t *testing.T) {
	// 黄方一条活三
	single := mustBoard(t, "7/7/7/Y6/Y6/Y6")
	if got := EvaluateBoard(single, siziqi.Red, nil, -1); got != -forkSinglePenalty {
		t.Fatalf("single fork: got=%d want=%d", got, -forkSinglePenalty)
	}

	// 黄方两条互不相干的活三：堵不完
	double := mustBoard(t, "7/7/7/Y5Y/Y5Y/Y5Y")
	if got := EvaluateBoard(double, siziqi.Red, nil, -1); got != -forkDoublePenalty {
		t.Fatalf("double fork: got=%d want=%d", got, -forkDoublePenalty)
	}
}

func TestEvaluateBoardIdempotent(t *testing.T) {
	b := mustBoard(t, "7/7/3Y3/2YR3/1YRY3/1RYR3")
	before := b.Cells

	s1 := EvaluateBoard(b, siziqi.Red, nil, -1)
	s2 := EvaluateBoard(b, siziqi.Red, nil, -1)
	if s1 != s2 {
		t.Fatalf("evaluation not idempotent: %d then %d", s1, s2)
	}
	if b.Cells != before {
		t.Fatal("evaluation mutated the board")
	}
}

func TestEvaluateBoardPriorNudge(t *testing.T) {
	b := mustBoard(t, "7/7/7/7/7/3R3")
	priors := []float64{0, 0, 0, 0.9, 0, 0, 0}

	base := EvaluateBoard(b, siziqi.Red, nil, 3)
	nudged := EvaluateBoard(b, siziqi.Red, priors, 3)
	if nudged <= base {
		t.Fatalf("prior should nudge score up: base=%d nudged=%d", base, nudged)
	}
	// lastCol=-1 时 priors 必须被忽略
	if got := EvaluateBoard(b, siziqi.Red, priors, -1); got != base {
		t.Fatalf("priors applied without lastCol: got=%d want=%d", got, base)
	}
}

func TestCountOpenThree(t *testing.T) {
	if got := CountOpenThree(&siziqi.Board{}, siziqi.Red); got != 0 {
		t.Fatalf("empty board: got=%d want=0", got)
	}

	vert := mustBoard(t, "7/7/7/Y6/Y6/Y6")
	if got := CountOpenThree(vert, siziqi.Yellow); got != 1 {
		t.Fatalf("vertical open three: got=%d want=1", got)
	}
	if got := CountOpenThree(vert, siziqi.Red); got != 0 {
		t.Fatalf("red has no threes: got=%d", got)
	}

	// 顶到天花板的竖三没有开口，不算
	capped := mustBoard(t, "Y6/Y6/Y6/R6/R6/Y6")
	if got := CountOpenThree(capped, siziqi.Yellow); got != 0 {
		t.Fatalf("capped column: got=%d want=0", got)
	}
}

func TestFindOpenThreeBlock(t *testing.T) {
	t.Run("PlayableGap", func(t *testing.T) {
		b := mustBoard(t, "7/7/7/7/7/YY1Y3")
		if got := FindOpenThreeBlock(b, siziqi.Yellow); got != 2 {
			t.Fatalf("block column: got=%d want=2", got)
		}
	})

	t.Run("FloatingGapIgnored", func(t *testing.T) {
		// 缺口 (4,2) 下面是空的，这手根本落不进去
		b := mustBoard(t, "7/7/7/7/YY1Y3/RR1R3")
		if got := FindOpenThreeBlock(b, siziqi.Yellow); got != -1 {
			t.Fatalf("floating gap: got=%d want=-1", got)
		}
	})

	t.Run("NoThreat", func(t *testing.T) {
		if got := FindOpenThreeBlock(&siziqi.Board{}, siziqi.Yellow); got != -1 {
			t.Fatalf("empty board: got=%d want=-1", got)
		}
	})
}
