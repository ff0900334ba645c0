package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "clipnest_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// VideoViews counts recorded video page visits.
	VideoViews = promauto.NewCounter(prometheus.CounterOpts{
		Name: "clipnest_video_views_total",
		Help: "Total number of video page visits recorded",
	})

	// UploadsTotal counts video uploads by category.
	UploadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "clipnest_uploads_total",
		Help: "Total number of video uploads by category",
	}, []string{"category"})

	// UploadBytes records the size of uploaded video files.
	UploadBytes = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "clipnest_upload_bytes",
		Help:    "Size distribution of uploaded video files in bytes",
		Buckets: prometheus.ExponentialBuckets(1024, 4, 10),
	})
)
