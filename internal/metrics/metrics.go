package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Domain counters incremented by the services
var (
	DealsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dealflow_deals_created_total",
			Help: "Total number of deals created",
		},
	)

	StageChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dealflow_deal_stage_changes_total",
			Help: "Total number of deal stage transitions",
		},
		[]string{"from", "to"},
	)

	MemoSaves = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dealflow_memo_saves_total",
			Help: "Total number of memo versions saved",
		},
	)

	DealsDeleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dealflow_deals_deleted_total",
			Help: "Total number of deals deleted",
		},
	)
)
