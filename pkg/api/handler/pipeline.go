package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LENAX/dag-checker/pkg/api/dto"
	"github.com/LENAX/dag-checker/pkg/core/dag"
	"github.com/LENAX/dag-checker/pkg/logging"
	"github.com/LENAX/dag-checker/pkg/observability"
)

// PipelineHandler Pipeline API处理器
type PipelineHandler struct {
	metrics *observability.Metrics
}

// NewPipelineHandler 创建PipelineHandler
// metrics 可以为nil（关闭指标时）
func NewPipelineHandler(metrics *observability.Metrics) *PipelineHandler {
	return &PipelineHandler{metrics: metrics}
}

// Parse 统计Pipeline节点/边数量并判断是否为DAG
// POST /pipelines/parse
func (h *PipelineHandler) Parse(c *gin.Context) {
	logger := logging.FromContext(c.Request.Context())

	var req dto.ParsePipelineRequest
	body, err := c.GetRawData()
	if err == nil {
		err = dto.BindParsePipelineRequest(body, &req)
	}
	if err != nil {
		fieldErrs := dto.TranslateBindError(err, &req)
		logger.Debug("pipeline请求校验失败", "error", err, "fields", len(fieldErrs))
		c.JSON(http.StatusUnprocessableEntity, dto.NewValidationErrorResponse(fieldErrs))
		return
	}

	result := dag.Check(req.ToGraph())
	h.metrics.RecordCheck(result)

	logger.Debug("pipeline检测完成",
		"num_nodes", result.NumNodes,
		"num_edges", result.NumEdges,
		"is_dag", result.IsDAG,
	)

	c.JSON(http.StatusOK, dto.NewParsePipelineResponse(result))
}
