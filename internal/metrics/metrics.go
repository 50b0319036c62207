package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	LoginAttemptsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "app_login_attempts_total",
		Help: "Total number of admin login attempts.",
	}, []string{"status"}) // status: "success" or "failed"

	OTPIssuedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "app_otp_issued_total",
		Help: "Total number of password-reset OTP codes issued.",
	})
	OTPVerificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "app_otp_verifications_total",
		Help: "Total number of OTP verification attempts.",
	}, []string{"status"}) // status: "success" or "failed"

	EmailSendsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "app_email_sends_total",
		Help: "Total number of notification email dispatches.",
	}, []string{"status"}) // status: "success" or "failed"

	MessagesCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "app_messages_created_total",
		Help: "Total number of contact messages received.",
	})
	GalleryImagesCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "app_gallery_images_created_total",
		Help: "Total number of gallery images created.",
	})
	ServicesCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "app_services_created_total",
		Help: "Total number of catalog services created.",
	})
)
