package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const defaultNamespace = "minishop"

// Registry 应用指标集合，每个实例使用独立的 prometheus.Registry
type Registry struct {
	registry *prometheus.Registry

	requests        *prometheus.CounterVec
	latencyMS       *prometheus.HistogramVec
	checkouts       *prometheus.CounterVec
	checkoutLatency prometheus.Histogram
	tasks           *prometheus.CounterVec
}

// New 创建指标集合
func New(namespace string) *Registry {
	namespace = strings.TrimSpace(namespace)
	if namespace == "" {
		namespace = defaultNamespace
	}
	r := &Registry{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"method", "route", "status"}),
		latencyMS: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_ms",
			Help:      "HTTP request latency in milliseconds.",
			Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
		}, []string{"method", "route"}),
		checkouts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "checkout",
			Name:      "total",
			Help:      "Checkout attempts by result.",
		}, []string{"result"}),
		checkoutLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "checkout",
			Name:      "duration_ms",
			Help:      "Checkout latency in milliseconds, retries included.",
			Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500},
		}),
		tasks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "worker",
			Name:      "tasks_total",
			Help:      "Processed background tasks by type and result.",
		}, []string{"type", "result"}),
	}
	r.registry.MustRegister(
		r.requests,
		r.latencyMS,
		r.checkouts,
		r.checkoutLatency,
		r.tasks,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

// ObserveRequest 记录一次 HTTP 请求
func (r *Registry) ObserveRequest(method, route string, status int, duration time.Duration) {
	if r == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	r.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	r.latencyMS.WithLabelValues(method, route).Observe(float64(duration) / float64(time.Millisecond))
}

// ObserveCheckout 记录一次结算
func (r *Registry) ObserveCheckout(result string, duration time.Duration) {
	if r == nil {
		return
	}
	r.checkouts.WithLabelValues(result).Inc()
	r.checkoutLatency.Observe(float64(duration) / float64(time.Millisecond))
}

// ObserveTask 记录一次后台任务处理
func (r *Registry) ObserveTask(taskType, result string) {
	if r == nil {
		return
	}
	r.tasks.WithLabelValues(taskType, result).Inc()
}

// Handler 暴露 Prometheus 文本格式
func (r *Registry) Handler() http.Handler {
	if r == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// Gatherer 返回底层 registry，用于测试与扩展
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}
