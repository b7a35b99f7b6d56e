package dto

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/gin-gonic/gin/binding"

	"github.com/LENAX/dag-checker/pkg/core/dag"
)

// ErrInvalidEdge 边不是 [from, to] 两个整数
var ErrInvalidEdge = errors.New("edge must be a [from, to] pair of integers")

// InvalidElementError 数组元素非法（例如 nodes 中出现 null）
type InvalidElementError struct {
	Field  string
	Reason string
}

func (e *InvalidElementError) Error() string {
	return e.Field + ": " + e.Reason
}

// Edge 有向边，JSON 形式为 [from, to]
type Edge [2]int

// UnmarshalJSON 只接受恰好两个整数的数组，端点不能为 null
func (e *Edge) UnmarshalJSON(data []byte) error {
	var pair []*int
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidEdge, string(data))
	}
	if len(pair) != 2 {
		return fmt.Errorf("%w: got %d elements", ErrInvalidEdge, len(pair))
	}
	if pair[0] == nil || pair[1] == nil {
		return fmt.Errorf("%w: got null endpoint in %s", ErrInvalidEdge, string(data))
	}
	e[0], e[1] = *pair[0], *pair[1]
	return nil
}

// ParsePipelineRequest 解析Pipeline请求
// POST /pipelines/parse
type ParsePipelineRequest struct {
	Nodes []int  `json:"nodes" binding:"required"`
	Edges []Edge `json:"edges" binding:"required"`
}

// UnmarshalJSON 拒绝 nodes 中的 null 元素
// 字段缺失或整体为 null 时保持 nil，交给 binding:"required" 校验
func (r *ParsePipelineRequest) UnmarshalJSON(data []byte) error {
	var raw struct {
		Nodes []*int `json:"nodes"`
		Edges []Edge `json:"edges"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	var nodes []int
	if raw.Nodes != nil {
		nodes = make([]int, len(raw.Nodes))
		for i, n := range raw.Nodes {
			if n == nil {
				return &InvalidElementError{
					Field:  fmt.Sprintf("nodes[%d]", i),
					Reason: "node id must be an integer, got null",
				}
			}
			nodes[i] = *n
		}
	}

	r.Nodes = nodes
	r.Edges = raw.Edges
	return nil
}

// BindParsePipelineRequest 解码并校验请求体
// 与 ShouldBindJSON 规则一致，另外拒绝第一个JSON值之后的多余内容
func BindParsePipelineRequest(data []byte, req *ParsePipelineRequest) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return io.EOF
	}
	if err := json.Unmarshal(data, req); err != nil {
		return err
	}
	return binding.Validator.ValidateStruct(req)
}

// ToGraph 转换为核心图结构
func (r *ParsePipelineRequest) ToGraph() dag.Graph {
	edges := make([]dag.Edge, len(r.Edges))
	for i, e := range r.Edges {
		edges[i] = dag.Edge{From: e[0], To: e[1]}
	}
	return dag.Graph{Nodes: r.Nodes, Edges: edges}
}
