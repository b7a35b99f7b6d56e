package dag

// Check 统计节点/边数量并判断图是否为DAG（对外导出）
// 纯函数：不持有状态，可并发调用
func Check(g Graph) Result {
	return Result{
		NumNodes: len(g.Nodes),
		NumEdges: len(g.Edges),
		IsDAG:    IsDAG(g.Nodes, g.Edges),
	}
}

// IsDAG 使用 Kahn 算法判断图是否无环（对外导出）
// 判定条件：出队节点数 == len(nodes)
//
// 注意：边端点不在 nodes 中时不会自动补齐，
// 该节点只会在被前驱释放（入度减到0）时才出队并计数。
func IsDAG(nodes []int, edges []Edge) bool {
	// 1. 构建邻接表和入度表（入度只按 nodes 初始化，边的终点按需创建）
	graph := make(map[int][]int, len(nodes))
	inDegree := make(map[int]int, len(nodes))
	for _, node := range nodes {
		inDegree[node] = 0
	}
	for _, e := range edges {
		graph[e.From] = append(graph[e.From], e.To)
		inDegree[e.To]++
	}

	// 2. 入度为0的节点入队（按 nodes 顺序，重复ID重复入队）
	queue := make([]int, 0, len(nodes))
	for _, node := range nodes {
		if inDegree[node] == 0 {
			queue = append(queue, node)
		}
	}

	// 3. 不断移除入度为0的节点，并更新其子节点的入度
	visited := 0
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		visited++

		for _, child := range graph[node] {
			inDegree[child]--
			if inDegree[child] == 0 {
				queue = append(queue, child)
			}
		}
	}

	return visited == len(nodes)
}
