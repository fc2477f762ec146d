// Package realtime is the in-process change feed: new readings per patient,
// notification changes and toasts per recipient.
package realtime

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/Sinon1310/CareSync-sub000/pkg/alerting"
	"github.com/Sinon1310/CareSync-sub000/pkg/common"
	"github.com/Sinon1310/CareSync-sub000/pkg/models"
)

type ChangeOp string

const (
	ChangeInsert ChangeOp = "insert"
	ChangeUpdate ChangeOp = "update"
	ChangeDelete ChangeOp = "delete"
)

type NotificationChange struct {
	Op           ChangeOp            `json:"op"`
	Notification models.Notification `json:"notification"`
}

// Unsubscribe ends a subscription. Calling it more than once is a no-op.
type Unsubscribe func()

var ErrHubClosed = errors.New("realtime hub is closed")

// SubscriptionError means the feed is gone. Resubscribe on a new hub to recover.
type SubscriptionError struct {
	Topic string
	Err   error
}

func (e *SubscriptionError) Error() string {
	return fmt.Sprintf("subscribe to %s: %v", e.Topic, e.Err)
}

func (e *SubscriptionError) Unwrap() error {
	return e.Err
}

type topic[T any] struct {
	name string
	subs map[string]map[uint64]func(T)
}

func newTopic[T any](name string) *topic[T] {
	return &topic[T]{name: name, subs: map[string]map[uint64]func(T){}}
}

func (t *topic[T]) add(key string, id uint64, fn func(T)) {
	if t.subs[key] == nil {
		t.subs[key] = map[uint64]func(T){}
	}
	t.subs[key][id] = fn
}

func (t *topic[T]) remove(key string, id uint64) {
	delete(t.subs[key], id)
	if len(t.subs[key]) == 0 {
		delete(t.subs, key)
	}
}

func (t *topic[T]) snapshot(key string) []func(T) {
	fns := make([]func(T), 0, len(t.subs[key]))
	for _, fn := range t.subs[key] {
		fns = append(fns, fn)
	}
	return fns
}

// Hub delivers synchronously: Publish returns after every subscriber callback
// has run, so a single publisher sees its events delivered in order.
type Hub struct {
	mu     sync.RWMutex
	closed bool
	done   chan struct{}
	nextID uint64

	readings      *topic[models.VitalReading]
	notifications *topic[NotificationChange]
	toasts        *topic[alerting.Alert]
}

func NewHub() *Hub {
	return &Hub{
		done:          make(chan struct{}),
		readings:      newTopic[models.VitalReading]("readings"),
		notifications: newTopic[NotificationChange]("notifications"),
		toasts:        newTopic[alerting.Alert]("toasts"),
	}
}

func subscribe[T any](h *Hub, t *topic[T], keys []string, fn func(T)) (Unsubscribe, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil, &SubscriptionError{Topic: t.name, Err: ErrHubClosed}
	}

	h.nextID++
	id := h.nextID
	keys = common.Unique(keys)
	for _, k := range keys {
		t.add(k, id, fn)
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			for _, k := range keys {
				t.remove(k, id)
			}
		})
	}, nil
}

func publish[T any](h *Hub, t *topic[T], key string, event T) {
	h.mu.RLock()
	fns := t.snapshot(key)
	h.mu.RUnlock()

	for _, fn := range fns {
		deliver(t.name, key, fn, event)
	}
}

func deliver[T any](name, key string, fn func(T), event T) {
	defer func() {
		if r := recover(); r != nil {
			common.GetCategoryLogger(common.LoggerNameRealtimeHub, common.LoggerCategorySubscription).
				Error("Subscriber panicked", zap.String("topic", name), zap.String("key", key), zap.Any("panic", r))
		}
	}()
	fn(event)
}

// SubscribeToNewReadings watches every reading stored for the given patients.
func (h *Hub) SubscribeToNewReadings(patientIDs []string, fn func(models.VitalReading)) (Unsubscribe, error) {
	return subscribe(h, h.readings, patientIDs, fn)
}

func (h *Hub) SubscribeToNotifications(recipientID string, fn func(NotificationChange)) (Unsubscribe, error) {
	return subscribe(h, h.notifications, []string{recipientID}, fn)
}

func (h *Hub) SubscribeToToasts(recipientID string, fn func(alerting.Alert)) (Unsubscribe, error) {
	return subscribe(h, h.toasts, []string{recipientID}, fn)
}

func (h *Hub) PublishReading(r models.VitalReading) {
	publish(h, h.readings, r.PatientID, r)
}

func (h *Hub) PublishNotificationChange(op ChangeOp, n models.Notification) {
	publish(h, h.notifications, n.RecipientID, NotificationChange{Op: op, Notification: n})
}

// ShowToast hands an alert to whatever is rendering the recipient's screen.
func (h *Hub) ShowToast(recipientID string, a alerting.Alert) {
	publish(h, h.toasts, recipientID, a)
}

// Done is closed once the hub is closed. Long-lived streams select on it.
func (h *Hub) Done() <-chan struct{} {
	return h.done
}

// Close drops every subscriber. Later subscribes fail with SubscriptionError.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true
	close(h.done)
	h.readings.subs = map[string]map[uint64]func(models.VitalReading){}
	h.notifications.subs = map[string]map[uint64]func(NotificationChange){}
	h.toasts.subs = map[string]map[uint64]func(alerting.Alert){}
}
