package mcts

import "time"

// Config MCTS 搜索配置
type Config struct {
	TimeLimit time.Duration // 纯壁钟预算，循环跑到点为止
	Cpuct     float64       // 探索常数
}

func DefaultConfig() Config {
	return Config{
		TimeLimit: 500 * time.Millisecond,
		Cpuct:     1.4,
	}
}
