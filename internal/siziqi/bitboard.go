package siziqi

// 位棋盘：每方一个 uint64，bit 下标 = row*Cols + col。
// 两个位棋盘的并集恰好等于所有非空格子，且同一位至多属于一方。

var (
	// 四连起点列掩码。横向和两条斜线的移位判定会跨行回绕，
	// 必须把起点限制在 col<=Cols-4（或 col>=3）的格子上。
	maskStartLeft  uint64 // col 0..Cols-4
	maskStartRight uint64 // col 3..Cols-1
)

func init() {
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			if c <= Cols-4 {
				maskStartLeft |= 1 << uint(indexOf(r, c))
			}
			if c >= 3 {
				maskStartRight |= 1 << uint(indexOf(r, c))
			}
		}
	}
}

// Bitboards 把棋盘打包成 (红, 黄) 两个位棋盘。
func (b *Board) Bitboards() (red, yellow uint64) {
	for i, d := range b.Cells {
		switch d {
		case Red:
			red |= 1 << uint(i)
		case Yellow:
			yellow |= 1 << uint(i)
		}
	}
	return red, yellow
}

// CheckWin 判断一个位棋盘里是否存在四连。
// 每个方向用经典的两次 AND+移位：m = bits & (bits>>s1)，再 m & (m>>s2)。
// 移位对 (s1,s2)：横向 (1,2)，纵向 (Cols,2*Cols)，斜向 (Cols±1, 2*(Cols±1))。
func CheckWin(bits uint64) bool {
	// 横向
	m := bits & (bits >> 1)
	if m&(m>>2)&maskStartLeft != 0 {
		return true
	}
	// 纵向（列号不变，不会回绕）
	m = bits & (bits >> Cols)
	if m&(m>>(2*Cols)) != 0 {
		return true
	}
	// 斜向 ↘（行+1 列+1）
	m = bits & (bits >> (Cols + 1))
	if m&(m>>(2*(Cols+1)))&maskStartLeft != 0 {
		return true
	}
	// 斜向 ↙（行+1 列-1）
	m = bits & (bits >> (Cols - 1))
	if m&(m>>(2*(Cols-1)))&maskStartRight != 0 {
		return true
	}
	return false
}

// Winner 哪一方已经四连；都没有返回 Empty。
func (b *Board) Winner() Disc {
	red, yellow := b.Bitboards()
	if CheckWin(red) {
		return Red
	}
	if CheckWin(yellow) {
		return Yellow
	}
	return Empty
}
