package engine

import (
	"testing"

	"siziqi/internal/siziqi"
)

func TestOrderedMovesWinningFirst(t *testing.T) {
	e := NewEngineSeeded(1)
	// 红方 6 列上三连，落 6 即胜
	b := mustBoard(t, "7/7/7/6R/6R/6R")

	moves := e.OrderedMoves(b, siziqi.Red)
	if len(moves) == 0 {
		t.Fatal("no moves returned")
	}
	if !moves[0].IsWinning || moves[0].Col != 6 {
		t.Fatalf("winning move not first: %+v", moves[0])
	}
}

func TestOrderedMovesBlockingAboveQuiet(t *testing.T) {
	e := NewEngineSeeded(1)
	// 黄方 0 列三连，红方视角：落 0 是挡杀
	b := mustBoard(t, "7/7/7/Y6/Y6/Y6")

	moves := e.OrderedMoves(b, siziqi.Red)
	if len(moves) == 0 {
		t.Fatal("no moves returned")
	}
	if !moves[0].IsBlocking || moves[0].Col != 0 {
		t.Fatalf("blocking move not first: %+v", moves[0])
	}
	for _, mv := range moves[1:] {
		if mv.Score > moves[0].Score {
			t.Fatalf("quiet move %+v outranks block %+v", mv, moves[0])
		}
	}
}

func TestOrderedMovesSkipsFullColumns(t *testing.T) {
	e := NewEngineSeeded(1)
	b := &siziqi.Board{}
	d := siziqi.Red
	for i := 0; i < siziqi.Rows; i++ {
		nb, _, err := b.ApplyDrop(2, d)
		if err != nil {
			t.Fatal(err)
		}
		b = nb
		d = d.Opponent()
	}

	moves := e.OrderedMoves(b, siziqi.Red)
	if len(moves) != siziqi.Cols-1 {
		t.Fatalf("move count: got=%d want=%d", len(moves), siziqi.Cols-1)
	}
	for _, mv := range moves {
		if mv.Col == 2 {
			t.Fatalf("full column offered: %+v", mv)
		}
	}
}

func TestOrderedMovesCenterBiasOnEmptyBoard(t *testing.T) {
	e := NewEngineSeeded(1)
	moves := e.OrderedMoves(&siziqi.Board{}, siziqi.Red)
	if len(moves) != siziqi.Cols {
		t.Fatalf("move count: got=%d want=%d", len(moves), siziqi.Cols)
	}
	if moves[0].Col != siziqi.Cols/2 {
		t.Fatalf("empty board should prefer center: got col %d", moves[0].Col)
	}
}
