package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	Logins = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hostelms_logins_total",
		Help: "Login attempts by result.",
	}, []string{"result"})

	Registrations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hostelms_registrations_total",
		Help: "Successful registrations by role.",
	}, []string{"role"})

	ParentNotifications = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hostelms_parent_notifications_total",
		Help: "Parent notifications by channel and result.",
	}, []string{"channel", "result"})
)

// Handler serves the /metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
