// Package metrics collects Prometheus metrics for the account service and exposes them for scraping.
package metrics

import (
	"net/http"
	"strconv"

	"accounts/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector is the Prometheus implementation of service.AuthMetrics.
type Collector struct {
	logins           *prometheus.CounterVec
	tokenValidations *prometheus.CounterVec
	usersCreated     prometheus.Counter
	usersDeleted     prometheus.Counter
}

var _ service.AuthMetrics = (*Collector)(nil)

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "accounts_login_total",
			Help: "Login attempts by outcome.",
		}, []string{"outcome"}),
		tokenValidations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "accounts_token_validation_total",
			Help: "Bearer token validations by result.",
		}, []string{"valid"}),
		usersCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "accounts_users_created_total",
			Help: "Accounts created.",
		}),
		usersDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "accounts_users_deleted_total",
			Help: "Accounts deleted.",
		}),
	}

	reg.MustRegister(
		c.logins,
		c.tokenValidations,
		c.usersCreated,
		c.usersDeleted,
	)

	return c
}

// RecordLogin counts a login attempt.
func (c *Collector) RecordLogin(outcome string) {
	c.logins.WithLabelValues(outcome).Inc()
}

// RecordTokenValidation counts a bearer token check.
func (c *Collector) RecordTokenValidation(valid bool) {
	c.tokenValidations.WithLabelValues(strconv.FormatBool(valid)).Inc()
}

func (c *Collector) RecordUserCreated() {
	c.usersCreated.Inc()
}

func (c *Collector) RecordUserDeleted() {
	c.usersDeleted.Inc()
}

// Handler returns the HTTP handler serving gatherer in the Prometheus exposition format.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// NewRegistry returns a registry carrying the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return reg
}

// Nop discards every event.
type Nop struct{}

func (Nop) RecordLogin(string) {}

func (Nop) RecordTokenValidation(bool) {}

func (Nop) RecordUserCreated() {}

func (Nop) RecordUserDeleted() {}
