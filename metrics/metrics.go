package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	loginAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kb_login_attempts_total",
		Help: "Number of login attempts grouped by status.",
	}, []string{"status"})

	searches = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kb_searches_total",
		Help: "Number of recorded searches grouped by outcome.",
	}, []string{"outcome"})

	articleViews = promauto.NewCounter(prometheus.CounterOpts{
		Name: "kb_article_views_total",
		Help: "Number of article detail views.",
	})

	moderationActions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kb_moderation_actions_total",
		Help: "Number of moderation decisions grouped by action.",
	}, []string{"action"})

	assistRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kb_assist_requests_total",
		Help: "Number of AI assist calls grouped by status.",
	}, []string{"status"})

	rateLimitHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kb_rate_limit_hits_total",
		Help: "Rate limiter activations grouped by limiter name.",
	}, []string{"limiter"})
)

// IncLogin increments the login counter.
func IncLogin(status string) {
	loginAttempts.WithLabelValues(status).Inc()
}

// IncSearch increments the search counter.
func IncSearch(outcome string) {
	searches.WithLabelValues(outcome).Inc()
}

// IncArticleView increments the article view counter.
func IncArticleView() {
	articleViews.Inc()
}

// IncModeration increments the moderation decision counter.
func IncModeration(action string) {
	moderationActions.WithLabelValues(action).Inc()
}

// IncAssist increments the AI assist counter.
func IncAssist(status string) {
	assistRequests.WithLabelValues(status).Inc()
}

// IncRateLimit increments the rate-limit hit counter.
func IncRateLimit(name string) {
	rateLimitHits.WithLabelValues(name).Inc()
}
