// Package metrics exposes Prometheus collectors for node RPC traffic.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	rpcRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "txprovenance",
		Subsystem: "rpc_client",
		Name:      "operations_total",
		Help:      "Count of node RPC operations.",
	}, []string{"operation", "endpoint", "status"})
	rpcRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "txprovenance",
		Subsystem: "rpc_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of node RPC operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "endpoint", "status"})
)

// RPCClient tracks metrics for RPC calls to the Bitcoin node. The endpoint
// label distinguishes the node itself from per-wallet endpoints.
type RPCClient struct {
	endpoint string
}

// NewRPCClient constructs a metrics collector for one RPC endpoint.
func NewRPCClient(endpoint string) *RPCClient {
	if endpoint == "" {
		endpoint = "node"
	}
	return &RPCClient{endpoint: endpoint}
}

// Observe records a single RPC call outcome and duration.
func (m RPCClient) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	rpcRequestsTotal.WithLabelValues(operation, m.endpoint, status).Inc()
	rpcRequestDuration.WithLabelValues(operation, m.endpoint, status).Observe(time.Since(started).Seconds())
}
