package siziqi

type Disc int8

const (
	Empty  Disc = 0
	Red    Disc = 1
	Yellow Disc = 2
)

func (d Disc) Valid() bool {
	return d == Empty || d == Red || d == Yellow
}

func (d Disc) Opponent() Disc {
	switch d {
	case Red:
		return Yellow
	case Yellow:
		return Red
	}
	return Empty
}

func (d Disc) String() string {
	switch d {
	case Red:
		return "R"
	case Yellow:
		return "Y"
	}
	return "."
}

const (
	Rows     = 6
	Cols     = 7
	NumCells = Rows * Cols
)

// Board 固定 6x7 棋盘，行优先展开；row 0 是最上面一行。
// 重力不变量：每一列里空格只会连续出现在上方。
type Board struct {
	Cells [NumCells]Disc
}
