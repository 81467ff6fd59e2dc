// Package metrics exposes the service's prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Classifications counts classification events per bot.
	Classifications = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mindhaven_classifications_total",
		Help: "Classification events by bot type.",
	}, []string{"bot"})

	// StoreWriteFailures counts persistence writes that were logged and
	// swallowed under the best-effort contract.
	StoreWriteFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mindhaven_store_write_failures_total",
		Help: "Best-effort persistence writes that failed.",
	})

	// EmotionFrames counts score frames received from the vision
	// collaborator.
	EmotionFrames = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mindhaven_emotion_frames_total",
		Help: "Expression score frames observed by the sampler.",
	})
)
