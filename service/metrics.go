package service

import "github.com/prometheus/client_golang/prometheus"

var (
	// 开启分享次数，result: created / reread
	shareEnableTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "brainvault_share_enable_total",
			Help: "Share links issued, by outcome",
		},
		[]string{"result"},
	)

	// 分享令牌解析次数，source: cache / db / not_found
	shareResolveTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "brainvault_share_resolve_total",
			Help: "Share token lookups, by source",
		},
		[]string{"source"},
	)
)

func init() {
	prometheus.MustRegister(shareEnableTotal)
	prometheus.MustRegister(shareResolveTotal)
}
