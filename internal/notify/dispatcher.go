package notify

import (
	"context"
	"errors"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/studio-booking/internal/domain"
	"github.com/m04kA/studio-booking/pkg/metrics"
)

type job struct {
	event   Event
	booking domain.Booking
}

// Dispatcher отправляет уведомления в фоне.
// Постановка в очередь никогда не блокирует вызывающего: при переполнении
// уведомление отбрасывается и логируется. Ошибки доставки только логируются.
type Dispatcher struct {
	composer    *Composer
	transport   Transport
	metrics     Metrics
	logger      Logger
	sendTimeout time.Duration

	queue chan job
	wg    sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

// NewDispatcher создаёт диспетчер и запускает workers обработчиков
func NewDispatcher(
	composer *Composer,
	transport Transport,
	workers int,
	queueSize int,
	sendTimeout time.Duration,
	metrics Metrics,
	logger Logger,
) *Dispatcher {
	if workers <= 0 {
		workers = 1
	}
	if queueSize < 0 {
		queueSize = 0
	}

	d := &Dispatcher{
		composer:    composer,
		transport:   transport,
		metrics:     metrics,
		logger:      logger,
		sendTimeout: sendTimeout,
		queue:       make(chan job, queueSize),
	}

	d.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go d.worker()
	}

	return d
}

// BookingCreated ставит в очередь письма о новом бронировании
func (d *Dispatcher) BookingCreated(b *domain.Booking) {
	d.enqueue(EventBookingCreated, b)
}

// BookingCancelled ставит в очередь оповещение об отмене
func (d *Dispatcher) BookingCancelled(b *domain.Booking) {
	d.enqueue(EventBookingCancelled, b)
}

func (d *Dispatcher) enqueue(event Event, b *domain.Booking) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.logger.Warn("Notify: %v, dropping %s for booking=%s", ErrClosed, event, b.ID)
		d.metrics.Notification(string(event), metrics.ResultDropped)
		return
	}

	select {
	case d.queue <- job{event: event, booking: *b}:
	default:
		d.logger.Error("Notify: %v, dropping %s for booking=%s", ErrQueueFull, event, b.ID)
		d.metrics.Notification(string(event), metrics.ResultDropped)
	}
}

// Close прекращает приём новых уведомлений и ждёт отправки уже поставленных
// в очередь, пока не истечёт ctx
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return nil
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()
	for j := range d.queue {
		d.process(j)
	}
}

// process отправляет все письма события параллельно; неудача одного не отменяет другие
func (d *Dispatcher) process(j job) {
	msgs, err := d.composer.Compose(j.event, &j.booking)
	if err != nil {
		d.logger.Error("Notify: %s booking=%s: %v", j.event, j.booking.ID, err)
		d.metrics.Notification(string(j.event), metrics.ResultFailed)
		return
	}

	ctx := context.Background()
	if d.sendTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.sendTimeout)
		defer cancel()
	}

	var g errgroup.Group
	for _, msg := range msgs {
		g.Go(func() error {
			if err := d.transport.Deliver(ctx, msg); err != nil {
				if !errors.Is(err, domain.ErrNotificationFailed) {
					err = errors.Join(domain.ErrNotificationFailed, err)
				}
				d.logger.Error("Notify: kind=%s booking=%s: %v", msg.Kind, msg.BookingID, err)
				d.metrics.Notification(string(msg.Kind), metrics.ResultFailed)
				return err
			}
			d.metrics.Notification(string(msg.Kind), metrics.ResultSent)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		d.logger.Warn("Notify: %s booking=%s delivered partially", j.event, j.booking.ID)
		return
	}
	d.logger.Info("Notify: %s booking=%s delivered (%d messages)", j.event, j.booking.ID, len(msgs))
}
