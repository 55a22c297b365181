package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics groups the counters of the onboarding core. A nil *Metrics is valid
// and records nothing, which keeps unit tests free of registries.
type Metrics struct {
	registrations    prometheus.Counter
	groupsCreated    prometheus.Counter
	groupSwitches    prometheus.Counter
	messagesSent     prometheus.Counter
	messagesCensored prometheus.Counter
	listingFailures  prometheus.Counter
	HTTPLatency      *prometheus.HistogramVec
}

func NewMetrics(registerer prometheus.Registerer) *Metrics {
	m := &Metrics{
		registrations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "freshconnect_registrations_total",
			Help: "Students registered and placed in a group",
		}),
		groupsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "freshconnect_groups_created_total",
			Help: "Peer groups opened because no existing group had room",
		}),
		groupSwitches: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "freshconnect_group_switches_total",
			Help: "Successful group changes",
		}),
		messagesSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "freshconnect_messages_sent_total",
			Help: "Chat messages appended to a group",
		}),
		messagesCensored: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "freshconnect_messages_censored_total",
			Help: "Chat messages that had banned words masked",
		}),
		listingFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "freshconnect_listing_failures_total",
			Help: "Hostel listing fetches that failed and degraded to no listings",
		}),
		HTTPLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "freshconnect_http_request_duration_seconds",
			Help:    "Latency of HTTP requests",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
	registerer.MustRegister(
		m.registrations,
		m.groupsCreated,
		m.groupSwitches,
		m.messagesSent,
		m.messagesCensored,
		m.listingFailures,
		m.HTTPLatency,
	)
	return m
}

func (m *Metrics) Registered() {
	if m != nil {
		m.registrations.Inc()
	}
}

func (m *Metrics) GroupCreated() {
	if m != nil {
		m.groupsCreated.Inc()
	}
}

func (m *Metrics) GroupSwitched() {
	if m != nil {
		m.groupSwitches.Inc()
	}
}

func (m *Metrics) MessageSent(censored bool) {
	if m == nil {
		return
	}
	m.messagesSent.Inc()
	if censored {
		m.messagesCensored.Inc()
	}
}

func (m *Metrics) ListingFailed() {
	if m != nil {
		m.listingFailures.Inc()
	}
}
