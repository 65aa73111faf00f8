package notify

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"

	"sportshots/internal/domain"
)

type SubscriberLister interface {
	ListActive(ctx context.Context) ([]domain.Subscriber, error)
}

type UserReader interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// Options control which messages a create/update dispatch produces.
type Options struct {
	ConfirmationRequests bool
	NewsletterBroadcast  bool
}

// Result is the outcome of one fan-out, surfaced for logging only. A
// non-zero Failed count never propagates to the caller as an error.
type Result struct {
	Sent   int
	Failed int
}

// Dispatcher fans out event notifications. Every recipient is attempted
// exactly once; one bad address never aborts the batch.
type Dispatcher struct {
	mailer      Mailer
	subscribers SubscriberLister
	users       UserReader
	baseURL     string
}

func NewDispatcher(mailer Mailer, subscribers SubscriberLister, users UserReader, baseURL string) *Dispatcher {
	return &Dispatcher{
		mailer:      mailer,
		subscribers: subscribers,
		users:       users,
		baseURL:     strings.TrimRight(baseURL, "/"),
	}
}

// ConfirmationLink builds the unauthenticated two-parameter link mailed to
// photographers. The shape is a wire contract: the emailed URL must keep
// working for links issued before any reimplementation.
func (d *Dispatcher) ConfirmationLink(eventID, photographerID string) string {
	return fmt.Sprintf("%s/confirm-event?eventId=%s&photographerId=%s",
		d.baseURL, url.QueryEscape(eventID), url.QueryEscape(photographerID))
}

// EventCreated sends per-photographer confirmation requests and, when
// enabled, a newsletter broadcast. Subscriber addresses that already got a
// confirmation request are excluded from the broadcast.
func (d *Dispatcher) EventCreated(ctx context.Context, e *domain.Event, opts Options) Result {
	var res Result
	confirmed := make(map[string]bool)

	if opts.ConfirmationRequests {
		intro := "You have been assigned to a new event:"
		r, notified := d.confirmationRequests(ctx, e, "Photographer assignment: "+e.Title, intro)
		res.Sent += r.Sent
		res.Failed += r.Failed
		confirmed = notified
	}

	if opts.NewsletterBroadcast {
		body := fmt.Sprintf("A new event has been announced:\n\n%s\n", summarize(e))
		r := d.broadcast(ctx, "New event: "+e.Title, body, confirmed)
		res.Sent += r.Sent
		res.Failed += r.Failed
	}

	log.Printf("notify: event created dispatch event=%s sent=%d failed=%d", e.ID, res.Sent, res.Failed)
	return res
}

// EventUpdated re-requests confirmation from assigned photographers and
// broadcasts an update notice carrying the change list.
func (d *Dispatcher) EventUpdated(ctx context.Context, e *domain.Event, changes []string, opts Options) Result {
	var res Result
	confirmed := make(map[string]bool)

	changed := "What changed:\n"
	for _, ch := range changes {
		changed += "  - " + ch + "\n"
	}

	if opts.ConfirmationRequests {
		intro := "An event you are assigned to has been updated:"
		if len(changes) > 0 {
			intro += "\n\n" + strings.TrimRight(changed, "\n")
		}
		r, notified := d.confirmationRequests(ctx, e, "Event updated: "+e.Title, intro)
		res.Sent += r.Sent
		res.Failed += r.Failed
		confirmed = notified
	}

	if opts.NewsletterBroadcast {
		body := "An event you follow has been updated:\n\n" + summarize(e) + "\n\n" + changed
		r := d.broadcast(ctx, "Event updated: "+e.Title, body, confirmed)
		res.Sent += r.Sent
		res.Failed += r.Failed
	}

	log.Printf("notify: event updated dispatch event=%s sent=%d failed=%d", e.ID, res.Sent, res.Failed)
	return res
}

// confirmationRequests mails every assigned photographer a confirmation
// link under the given subject and intro line. It returns the normalized
// addresses that were reached so broadcasts can skip them.
func (d *Dispatcher) confirmationRequests(ctx context.Context, e *domain.Event, subject, intro string) (Result, map[string]bool) {
	var res Result
	notified := make(map[string]bool)

	for _, pid := range e.PhotographerIDs {
		p, err := d.users.GetByID(ctx, pid)
		if err != nil {
			log.Printf("notify: skip confirmation request event=%s photographer=%s: %v", e.ID, pid, err)
			res.Failed++
			continue
		}

		body := fmt.Sprintf(
			"Hi %s,\n\n%s\n\n%s\n\nPlease confirm or decline here:\n%s\n",
			p.Name, intro, summarize(e), d.ConfirmationLink(e.ID, p.ID))

		if err := d.mailer.Send(ctx, p.Email, subject, body); err != nil {
			log.Printf("notify: confirmation request failed event=%s to=%s: %v", e.ID, p.Email, err)
			res.Failed++
			continue
		}
		notified[normalize(p.Email)] = true
		res.Sent++
	}
	return res, notified
}

func (d *Dispatcher) broadcast(ctx context.Context, subject, body string, exclude map[string]bool) Result {
	var res Result

	subs, err := d.subscribers.ListActive(ctx)
	if err != nil {
		log.Printf("notify: broadcast aborted, subscriber list unavailable: %v", err)
		res.Failed++
		return res
	}

	for _, s := range subs {
		if exclude[normalize(s.Email)] {
			continue
		}
		if err := d.mailer.Send(ctx, s.Email, subject, body); err != nil {
			log.Printf("notify: broadcast send failed to=%s: %v", s.Email, err)
			res.Failed++
			continue
		}
		res.Sent++
	}
	return res
}

func summarize(e *domain.Event) string {
	var b strings.Builder
	b.WriteString(e.Title + "\n")
	b.WriteString("Date: " + e.Date)
	if e.EndDate != "" {
		b.WriteString(" - " + e.EndDate)
	}
	if e.Time != "" {
		b.WriteString(" at " + e.Time)
	}
	b.WriteString("\nLocation: " + e.Location)
	if e.Country != "" {
		b.WriteString(", " + e.Country)
	}
	if e.URL != "" {
		b.WriteString("\nMore info: " + e.URL)
	}
	return b.String()
}

func normalize(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
