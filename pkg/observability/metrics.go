// Package observability 提供 dag-checker 的 Prometheus 指标
//
// 指标注册在独立的 Registry 上，由 API 服务器通过 /metrics 暴露。
// 所有方法并发安全。
package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/LENAX/dag-checker/pkg/core/dag"
)

const metricsNamespace = "dag_checker"

// 检测结果标签
const (
	OutcomeDAG    = "dag"
	OutcomeCyclic = "cyclic"
)

// Metrics 服务指标集合（对外导出）
type Metrics struct {
	registry *prometheus.Registry

	// ChecksTotal 按结果统计的DAG检测次数
	// Labels: outcome (dag, cyclic)
	ChecksTotal *prometheus.CounterVec

	// GraphSize 提交图的规模分布
	// Labels: kind (nodes, edges)
	GraphSize *prometheus.HistogramVec

	// RequestsTotal HTTP请求数
	// Labels: method, route, status
	RequestsTotal *prometheus.CounterVec

	// RequestDuration HTTP请求耗时
	// Labels: method, route
	RequestDuration *prometheus.HistogramVec
}

// NewMetrics 创建并注册指标
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		ChecksTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "pipeline",
			Name:      "checks_total",
			Help:      "Total number of pipeline DAG checks by outcome.",
		}, []string{"outcome"}),
		GraphSize: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "pipeline",
			Name:      "graph_size",
			Help:      "Number of nodes and edges in submitted pipelines.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}, []string{"kind"}),
		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"method", "route", "status"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
}

// RecordCheck 记录一次DAG检测
func (m *Metrics) RecordCheck(r dag.Result) {
	if m == nil {
		return
	}
	outcome := OutcomeCyclic
	if r.IsDAG {
		outcome = OutcomeDAG
	}
	m.ChecksTotal.WithLabelValues(outcome).Inc()
	m.GraphSize.WithLabelValues("nodes").Observe(float64(r.NumNodes))
	m.GraphSize.WithLabelValues("edges").Observe(float64(r.NumEdges))
}

// RecordRequest 记录一次HTTP请求
func (m *Metrics) RecordRequest(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.RequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.RequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// Handler 返回 /metrics 处理器
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
