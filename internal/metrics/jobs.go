package metrics

import "github.com/prometheus/client_golang/prometheus"

func init() {
	register(jobsCreatedTotal, jobsFinishedTotal, jobsEvictedTotal, jobsInFlight)
}

var (
	jobsCreatedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "jobs_created_total",
			Help: "Total number of jobs accepted by the job service.",
		},
	)

	jobsFinishedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobs_finished_total",
			Help: "Total number of jobs that reached a terminal status, labeled by status.",
		},
		[]string{"status"}, // 'completed', 'failed'
	)

	jobsEvictedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "jobs_evicted_total",
			Help: "Total number of jobs removed by the eviction sweeper.",
		},
	)

	jobsInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "jobs_in_flight",
			Help: "Number of lifecycle pipelines currently running.",
		},
	)
)

func IncJobCreated() {
	jobsCreatedTotal.Inc()
}

func IncJobFinished(status string) {
	jobsFinishedTotal.WithLabelValues(norm(status)).Inc()
}

func AddJobsEvicted(n int) {
	if n > 0 {
		jobsEvictedTotal.Add(float64(n))
	}
}

func IncInFlight() { jobsInFlight.Inc() }
func DecInFlight() { jobsInFlight.Dec() }
