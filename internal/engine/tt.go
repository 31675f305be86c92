package engine

type ttFlag uint8

const (
	ttExact ttFlag = iota
	ttLower        // beta 截断：真实分数 >= Score
	ttUpper        // alpha 截断：真实分数 <= Score
)

type ttEntry struct {
	Key   uint64
	Depth int
	Score int
	Col   int
	Flag  ttFlag
}

// transTable 有界置换表。
// 淘汰策略是先进先出：满了就丢最早插入的键。不是 LRU——
// 命中率略差一点，但 Store 路径保持 O(1)，这个分支因子下足够了。
type transTable struct {
	m     map[uint64]ttEntry
	order []uint64 // 插入顺序队列，head 之前的已淘汰
	head  int
	cap   int
}

func newTransTable(capacity int) *transTable {
	if capacity < 1 {
		capacity = 1
	}
	return &transTable{
		m:   make(map[uint64]ttEntry, 1<<12),
		cap: capacity,
	}
}

func (t *transTable) Lookup(key uint64) (ttEntry, bool) {
	e, ok := t.m[key]
	return e, ok
}

// Store 写入一条结果；同键覆盖，容量满时先淘汰最老的键。
func (t *transTable) Store(key uint64, e ttEntry) {
	e.Key = key
	if _, ok := t.m[key]; ok {
		t.m[key] = e
		return
	}
	if len(t.m) >= t.cap {
		// 静默淘汰，这不是错误
		delete(t.m, t.order[t.head])
		t.order[t.head] = 0
		t.head++
	}
	t.m[key] = e
	t.order = append(t.order, key)
}

// Clear 整表清空。每次全新的顶层搜索调一次，
// 免得上一个不同局面的迭代加深结果漏进来。
func (t *transTable) Clear() {
	t.m = make(map[uint64]ttEntry, 1<<12)
	t.order = t.order[:0]
	t.head = 0
}

func (t *transTable) Len() int { return len(t.m) }
