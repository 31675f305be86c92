package engine

import (
	"math/rand"
	"time"

	"github.com/google/uuid"

	"siziqi/internal/siziqi"
)

const ttCapacity = 1 << 20

// Engine 一次搜索会话：置换表、Zobrist 键表、随机源都归它所有。
// 多局并发时每局建一个 Engine，互相不共享任何可变状态。
type Engine struct {
	ID uuid.UUID

	tt    *transTable
	zob   *siziqi.Zobrist
	rng   *rand.Rand
	nodes int64
}

func NewEngine() *Engine {
	return NewEngineSeeded(time.Now().UnixNano())
}

// NewEngineSeeded 固定随机种子，测试用；同一种子下结果可复现。
func NewEngineSeeded(seed int64) *Engine {
	return &Engine{
		ID:  uuid.New(),
		tt:  newTransTable(ttCapacity),
		zob: siziqi.DefaultZobrist(),
		rng: rand.New(rand.NewSource(seed)),
	}
}

func (e *Engine) Nodes() int64 { return e.nodes }
