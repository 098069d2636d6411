package alert

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/floodwatch/floodwatch-backend-go/internal/models"
)

// Dispatcher sends flood alerts asynchronously. A slow or failing mail
// provider must never stall the flood query that triggered the alert, so
// every dispatch runs fire-and-forget under its own timeout and failures
// are logged, not returned.
type Dispatcher struct {
	notifier Notifier
	timeout  time.Duration
	onResult func(ok bool) // optional hook for metrics
}

// NewDispatcher creates an alert dispatcher. onResult may be nil.
func NewDispatcher(notifier Notifier, timeout time.Duration, onResult func(ok bool)) *Dispatcher {
	return &Dispatcher{
		notifier: notifier,
		timeout:  timeout,
		onResult: onResult,
	}
}

// DispatchFlood sends a flood alert for the assessment to the user,
// detached from the calling request
func (d *Dispatcher) DispatchFlood(userEmail string, assessment models.FloodAssessment) {
	if d.notifier == nil {
		log.Printf("alert suppressed (no notifier configured) for %s", userEmail)
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()

		err := d.notifier.Send(ctx, userEmail, floodSubject, floodBody(assessment))
		if d.onResult != nil {
			d.onResult(err == nil)
		}
		if err != nil {
			log.Printf("alert send failed for %s: %v", userEmail, err)
			return
		}
		log.Printf("flood alert sent to %s (risk %.2f)", userEmail, assessment.FloodRisk)
	}()
}

const floodSubject = "FLOOD ALERT - Immediate Action Required"

func floodBody(a models.FloodAssessment) string {
	return fmt.Sprintf(`FLOOD ALERT NOTIFICATION

Location: %f, %f
Flood Risk Level: %.1f%%
Estimated Water Depth: %.1f cm
Time: %s

SAFETY RECOMMENDATIONS:
- Avoid the affected area
- Seek higher ground if in danger
- Do not attempt to drive through flooded areas
- Follow local emergency services instructions

Stay safe!
Flood Detection System
`, a.Latitude, a.Longitude, a.FloodRisk*100, a.DepthCM, a.Timestamp.Format(time.RFC3339))
}
