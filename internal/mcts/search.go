package mcts

import (
	"math"
	"math/rand"
	"time"

	"github.com/rs/zerolog/log"

	"siziqi/internal/siziqi"
)

// Searcher 一次 MCTS 会话；随机源归它所有，可注入种子复现。
type Searcher struct {
	cfg Config
	rng *rand.Rand
}

func NewSearcher(cfg Config) *Searcher {
	return NewSearcherSeeded(cfg, time.Now().UnixNano())
}

func NewSearcherSeeded(cfg Config, seed int64) *Searcher {
	if cfg.Cpuct <= 0 {
		cfg.Cpuct = DefaultConfig().Cpuct
	}
	return &Searcher{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Result MCTS 搜索结果
type Result struct {
	Column      int
	Simulations int
	WinRate     float64
	TimeUsed    time.Duration
}

// Search 四阶段循环跑到壁钟到点：
// Select（PUCT 下行，未访问子节点直接短路）→ Expand →
// Playout（随机走子到终局或 Rows*Cols 手封顶）→ Backpropagate。
// 最终取根节点下胜率最高的子节点；预算内一次仿真都没跑完就随机兜底。
func (s *Searcher) Search(b *siziqi.Board, player siziqi.Disc, priors []float64) Result {
	start := time.Now()
	deadline := start.Add(s.cfg.TimeLimit)

	root := newNode(b, player, nil, -1, 1.0)
	sims := 0

	for time.Now().Before(deadline) && !root.terminal {
		s.simulate(root, priors)
		sims++
	}

	legal := b.LegalMoves()
	if !root.expanded() {
		// 预算太小连一次展开都没有
		col := -1
		if len(legal) > 0 {
			col = legal[s.rng.Intn(len(legal))]
		}
		return Result{Column: col, Simulations: sims, TimeUsed: time.Since(start)}
	}

	var best *Node
	for _, child := range root.children {
		if best == nil || child.WinRate() > best.WinRate() {
			best = child
		}
	}

	log.Debug().
		Int("sims", sims).
		Int("column", best.col).
		Float64("winrate", best.WinRate()).
		Dur("elapsed", time.Since(start)).
		Msg("mcts-search-done")

	return Result{
		Column:      best.col,
		Simulations: sims,
		WinRate:     best.WinRate(),
		TimeUsed:    time.Since(start),
	}
}

func (s *Searcher) simulate(root *Node, priors []float64) {
	node := root

	// Selection
	for node.expanded() && !node.terminal {
		node = s.selectChild(node)
	}

	// Expansion
	if !node.terminal {
		s.expand(node, priors)
	}

	// Playout 起点：已展开就随机挑一个孩子，终端叶子就地评
	playoutFrom := node
	if node.expanded() {
		playoutFrom = node.children[s.rng.Intn(len(node.children))]
	}
	winner := s.playout(playoutFrom)

	// Backpropagation：胜场记在“走进该节点的那一方”头上，
	// 即 toMove 的对手。这样父节点选最大胜率子节点时视角才是自己的。
	for n := playoutFrom; n != nil; n = n.parent {
		n.visits++
		if winner == siziqi.Empty {
			n.wins += 0.5 // 和棋算半胜，别把逼和当输棋
		} else if n.toMove != winner {
			n.wins++
		}
	}
}

// selectChild PUCT：exploitation + Cpuct * prior * sqrt(N_parent)/(1+N_child)。
// 没访问过的孩子直接选，不用算。
func (s *Searcher) selectChild(node *Node) *Node {
	sqrtParent := math.Sqrt(float64(node.visits))

	var best *Node
	bestScore := math.Inf(-1)
	for _, child := range node.children {
		if child.visits == 0 {
			return child
		}
		score := child.WinRate() + s.cfg.Cpuct*child.prior*sqrtParent/(1.0+float64(child.visits))
		if score > bestScore {
			bestScore = score
			best = child
		}
	}
	return best
}

func (s *Searcher) expand(node *Node, priors []float64) {
	legal := node.board.LegalMoves()
	if len(legal) == 0 {
		node.terminal = true
		return
	}

	uniform := 1.0 / float64(len(legal))
	for _, col := range legal {
		child, _, err := node.board.ApplyDrop(col, node.toMove)
		if err != nil {
			continue
		}
		p := uniform
		if priors != nil && col < len(priors) {
			p = priors[col]
		}
		node.children = append(node.children, newNode(child, node.toMove.Opponent(), node, col, p))
	}
}

// playout 双方轮流随机落子，直到分出胜负、和棋或走满 Rows*Cols 手。
func (s *Searcher) playout(node *Node) siziqi.Disc {
	if node.terminal {
		return node.winner
	}

	b := node.board
	player := node.toMove
	for ply := 0; ply < siziqi.NumCells; ply++ {
		if w := b.Winner(); w != siziqi.Empty {
			return w
		}
		legal := b.LegalMoves()
		if len(legal) == 0 {
			return siziqi.Empty
		}
		next, _, err := b.ApplyDrop(legal[s.rng.Intn(len(legal))], player)
		if err != nil {
			return siziqi.Empty
		}
		b = next
		player = player.Opponent()
	}
	if w := b.Winner(); w != siziqi.Empty {
		return w
	}
	return siziqi.Empty
}
