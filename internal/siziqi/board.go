package siziqi

import (
	"errors"
	"strings"
)

var (
	ErrColumnFull   = errors.New("siziqi: column full")
	ErrInvalidBoard = errors.New("siziqi: invalid board string")
)

func indexOf(row, col int) int { return row*Cols + col }

func (b *Board) At(row, col int) Disc {
	return b.Cells[indexOf(row, col)]
}

// LegalMoves 返回所有还有空位的列，按列号升序。
func (b *Board) LegalMoves() []int {
	cols := make([]int, 0, Cols)
	for c := 0; c < Cols; c++ {
		if b.Cells[indexOf(0, c)] == Empty {
			cols = append(cols, c)
		}
	}
	return cols
}

// DropRow 返回棋子落在 col 列时停在哪一行；列满或越界返回 -1。
// 这是个探测接口，失败用哨兵值而不是 error，搜索里会大量调用。
func (b *Board) DropRow(col int) int {
	if col < 0 || col >= Cols {
		return -1
	}
	for r := Rows - 1; r >= 0; r-- {
		if b.Cells[indexOf(r, col)] == Empty {
			return r
		}
	}
	return -1
}

// ApplyDrop 在 col 列落一枚 d，返回新棋盘和落点行号。
// 永远不改原棋盘；搜索树里各节点不会共享可变状态。
// 列满返回 ErrColumnFull —— 热路径应当先用 LegalMoves 过滤，走不到这个分支。
func (b *Board) ApplyDrop(col int, d Disc) (*Board, int, error) {
	row := b.DropRow(col)
	if row < 0 {
		return nil, -1, ErrColumnFull
	}
	nb := *b
	nb.Cells[indexOf(row, col)] = d
	return &nb, row, nil
}

func (b *Board) StoneCount() int {
	n := 0
	for _, c := range b.Cells {
		if c != Empty {
			n++
		}
	}
	return n
}

func (b *Board) Full() bool {
	for c := 0; c < Cols; c++ {
		if b.Cells[indexOf(0, c)] == Empty {
			return false
		}
	}
	return true
}

// Encode 紧凑棋盘串：6 行用“/”隔开，空位用数字压缩，从上往下。
func (b *Board) Encode() string {
	var sb strings.Builder
	for r := 0; r < Rows; r++ {
		if r > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for c := 0; c < Cols; c++ {
			d := b.Cells[indexOf(r, c)]
			if d == Empty {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteString(d.String())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}
	return sb.String()
}

// DecodeBoard 解析 Encode 产生的棋盘串。
func DecodeBoard(s string) (*Board, error) {
	rows := strings.Split(s, "/")
	if len(rows) != Rows {
		return nil, ErrInvalidBoard
	}
	var b Board
	for r := 0; r < Rows; r++ {
		c := 0
		for _, ch := range rows[r] {
			if c >= Cols {
				return nil, ErrInvalidBoard
			}
			switch {
			case ch >= '1' && ch <= '7':
				c += int(ch - '0')
			case ch == 'R':
				b.Cells[indexOf(r, c)] = Red
				c++
			case ch == 'Y':
				b.Cells[indexOf(r, c)] = Yellow
				c++
			default:
				return nil, ErrInvalidBoard
			}
		}
		if c != Cols {
			return nil, ErrInvalidBoard
		}
	}
	return &b, nil
}
