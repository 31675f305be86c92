package mcts

import "siziqi/internal/siziqi"

// Node 一次 MCTS 调用内的树节点。
// parent 只是弱回指，不拥有；children 归本节点所有，搜完整棵树一起丢。
type Node struct {
	board  *siziqi.Board
	toMove siziqi.Disc

	parent   *Node
	children []*Node
	col      int // 产生本节点的那一步；根节点为 -1

	prior  float64
	visits int
	wins   float64

	terminal bool
	winner   siziqi.Disc // terminal 时的赢家；和棋为 Empty
}

func newNode(b *siziqi.Board, toMove siziqi.Disc, parent *Node, col int, prior float64) *Node {
	n := &Node{
		board:  b,
		toMove: toMove,
		parent: parent,
		col:    col,
		prior:  prior,
	}
	if w := b.Winner(); w != siziqi.Empty {
		n.terminal = true
		n.winner = w
	} else if b.Full() {
		n.terminal = true
	}
	return n
}

func (n *Node) expanded() bool { return len(n.children) > 0 }

const winRateEpsilon = 1e-6

// WinRate 平均胜率；visits 为 0 时靠 epsilon 避免除零。
func (n *Node) WinRate() float64 {
	return n.wins / (float64(n.visits) + winRateEpsilon)
}
