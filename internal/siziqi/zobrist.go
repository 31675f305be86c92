package siziqi

import "sync"

// Zobrist 每个 (棋子, 格子) 一个随机键，整盘哈希 = 所有落子键的 XOR。
// XOR 自反且与顺序无关，同一局面不管怎么走到哈希都一样。
// 四子棋的行棋方由子数奇偶决定，所以不需要额外的 side key。
type Zobrist struct {
	keys [2][NumCells]uint64
}

const defaultZobristSeed = 0x9E3779B97F4A7C15

// NewZobrist 用 splitmix64 从 seed 生成键表；同一 seed 结果完全确定。
func NewZobrist(seed uint64) *Zobrist {
	next := func() uint64 {
		seed += 0x9E3779B97F4A7C15
		z := seed
		z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
		z = (z ^ (z >> 27)) * 0x94D049BB133111EB
		z ^= z >> 31
		if z == 0 {
			// 0 对 XOR 无效
			z = 1
		}
		return z
	}

	var zt Zobrist
	for side := 0; side < 2; side++ {
		for sq := 0; sq < NumCells; sq++ {
			zt.keys[side][sq] = next()
		}
	}
	return &zt
}

var (
	zobristOnce    sync.Once
	defaultZobrist *Zobrist
)

// DefaultZobrist 进程级键表，启动后只读。
func DefaultZobrist() *Zobrist {
	zobristOnce.Do(func() {
		defaultZobrist = NewZobrist(defaultZobristSeed)
	})
	return defaultZobrist
}

// Hash 全量计算棋盘哈希；空格不参与。
func (z *Zobrist) Hash(b *Board) uint64 {
	var h uint64
	for sq, d := range b.Cells {
		switch d {
		case Red:
			h ^= z.keys[0][sq]
		case Yellow:
			h ^= z.keys[1][sq]
		}
	}
	return h
}
