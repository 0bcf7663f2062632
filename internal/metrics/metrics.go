package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "tsteg"

var (
	requestCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "api",
			Name:      "requests_total",
			Help:      "Total number of API requests",
		},
		[]string{"method", "path", "status"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "api",
			Name:      "request_duration_seconds",
			Help:      "API request duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10},
		},
		[]string{"method", "path"},
	)

	MessagesEncoded = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "codec",
		Name:      "messages_encoded_total",
		Help:      "Messages successfully embedded into an image",
	})

	MessagesDecoded = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "codec",
		Name:      "messages_decoded_total",
		Help:      "Images a message was decoded from",
	})

	CapacityRejections = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "codec",
		Name:      "capacity_rejections_total",
		Help:      "Encode requests rejected because the message did not fit in the image",
	})

	BitsEmbedded = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "codec",
		Name:      "bits_embedded_total",
		Help:      "Message bits written into image LSBs",
	})
)

// Middleware records request counts and latencies. The route template is used as path label so the label set stays
// bounded.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		requestCounter.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		requestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}

func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
