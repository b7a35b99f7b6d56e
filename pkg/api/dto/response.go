package dto

import "github.com/LENAX/dag-checker/pkg/core/dag"

// APIResponse 通用API响应结构
type APIResponse[T any] struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    T      `json:"data,omitempty"`
}

// NewSuccessResponse 创建成功响应
func NewSuccessResponse[T any](data T) APIResponse[T] {
	return APIResponse[T]{
		Code:    0,
		Message: "success",
		Data:    data,
	}
}

// NewErrorResponse 创建错误响应
func NewErrorResponse(code int, message string) APIResponse[any] {
	return APIResponse[any]{
		Code:    code,
		Message: message,
	}
}

// PingResponse 根路由响应
type PingResponse struct {
	Ping string `json:"Ping"`
}

// ParsePipelineResponse 解析Pipeline响应
type ParsePipelineResponse struct {
	NumNodes int  `json:"num_nodes"`
	NumEdges int  `json:"num_edges"`
	IsDAG    bool `json:"is_dag"`
}

// NewParsePipelineResponse 由检测结果构建响应
func NewParsePipelineResponse(r dag.Result) ParsePipelineResponse {
	return ParsePipelineResponse{
		NumNodes: r.NumNodes,
		NumEdges: r.NumEdges,
		IsDAG:    r.IsDAG,
	}
}

// HealthResponse 健康检查响应
type HealthResponse struct {
	Status    string `json:"status"`
	Version   string `json:"version"`
	Uptime    string `json:"uptime"`
	Timestamp string `json:"timestamp"`
}
