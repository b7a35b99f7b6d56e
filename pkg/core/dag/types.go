package dag

// Edge 有向边（From -> To）
type Edge struct {
	From int // 起点节点ID
	To   int // 终点节点ID
}

// Graph 待检测的图：节点序列 + 边序列（对外导出）
// 节点ID允许重复，边的端点不要求出现在节点序列中
type Graph struct {
	Nodes []int
	Edges []Edge
}

// Result DAG检测结果（对外导出）
type Result struct {
	NumNodes int  // 节点数量（按出现次数计，不去重）
	NumEdges int  // 边数量
	IsDAG    bool // 是否为有向无环图
}
