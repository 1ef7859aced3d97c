// Package notify delivers fire-and-forget notifications to an external
// dispatch endpoint. Delivery failures are logged and never surfaced to the
// caller.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"buildtrack/internal/logging"

	"github.com/sony/gobreaker"
)

// TypeTaskAssigned is the only notification type the system currently sends.
const TypeTaskAssigned = "task_assigned"

// Payload is the wire shape of the dispatch endpoint.
type Payload struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
	Type    string `json:"type"`
}

type Notifier struct {
	url     string
	client  *http.Client
	breaker *gobreaker.CircuitBreaker
}

// New builds a notifier for the given endpoint. An empty url disables
// delivery entirely.
func New(url string) *Notifier {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "notifications-cb",
		MaxRequests: 1,
		Timeout:     5 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Logger.Infof("circuit breaker %q changed from %s to %s", name, from.String(), to.String())
		},
	})

	return &Notifier{
		url:     url,
		client:  &http.Client{Timeout: 5 * time.Second},
		breaker: breaker,
	}
}

// TaskAssigned notifies a user that a newly created task was assigned to
// them. Best effort: any failure is logged and swallowed.
func (n *Notifier) TaskAssigned(ctx context.Context, to, taskTitle string) {
	n.send(ctx, Payload{
		To:      to,
		Subject: "New Task Assigned",
		Text:    fmt.Sprintf("You have been assigned a new task: %s", taskTitle),
		Type:    TypeTaskAssigned,
	})
}

// TaskReassigned notifies a user that an existing task was reassigned to
// them.
func (n *Notifier) TaskReassigned(ctx context.Context, to, taskTitle string) {
	n.send(ctx, Payload{
		To:      to,
		Subject: "Task Assignment",
		Text:    fmt.Sprintf("You have been assigned to the task: %s", taskTitle),
		Type:    TypeTaskAssigned,
	})
}

func (n *Notifier) send(ctx context.Context, p Payload) {
	if n.url == "" {
		return
	}

	body, err := json.Marshal(p)
	if err != nil {
		logging.Logger.Errorf("notification marshal failed: %v", err)
		return
	}

	_, err = n.breaker.Execute(func() (interface{}, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := n.client.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 400 {
			return nil, fmt.Errorf("notification endpoint returned %d", resp.StatusCode)
		}
		return nil, nil
	})
	if err != nil {
		logging.Logger.Errorf("notification delivery failed for %s: %v", p.To, err)
	}
}
