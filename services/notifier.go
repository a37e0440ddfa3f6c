package services

import (
	"context"
	"encoding/json"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"github.com/mukeshkdas03/hostel-management-system/metrics"
)

// ParentNotification is a message addressed to a student's parent contact.
// Delivery is best-effort; a failed send never fails the triggering
// operation.
type ParentNotification struct {
	StudentID     string `json:"studentId"`
	StudentName   string `json:"studentName"`
	ParentContact string `json:"parentContact"`
	Message       string `json:"message"`
}

// NotificationSender abstracts the parent messaging gateway. The log sender
// is the simulated default; the AMQP sender hands messages to a real broker.
type NotificationSender interface {
	Send(ctx context.Context, n ParentNotification) error
}

// LogNotifier writes the notification to the application log, mirroring the
// simulated "message sent to parent" behaviour of the demo deployment.
type LogNotifier struct {
	log *zap.Logger
}

func NewLogNotifier(log *zap.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (l *LogNotifier) Send(_ context.Context, n ParentNotification) error {
	l.log.Info("message sent to parent",
		zap.String("student_id", n.StudentID),
		zap.String("student_name", n.StudentName),
		zap.String("parent_contact", n.ParentContact),
		zap.String("message", n.Message),
	)
	metrics.ParentNotifications.WithLabelValues("log", "ok").Inc()
	return nil
}

// AMQPNotifier publishes notifications to a durable RabbitMQ queue. The
// circuit breaker keeps a dead broker from stalling every attendance mark
// and outpass decision.
type AMQPNotifier struct {
	conn  *amqp.Connection
	ch    *amqp.Channel
	queue string
	cb    *gobreaker.CircuitBreaker
}

func NewAMQPNotifier(amqpURL, queue string, log *zap.Logger) (*AMQPNotifier, error) {
	conn, err := amqp.Dial(amqpURL)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}
	// Queue declaration is idempotent.
	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "parent-notifier",
		MaxRequests: 3,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("circuit breaker state change",
				zap.String("name", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})

	return &AMQPNotifier{conn: conn, ch: ch, queue: queue, cb: cb}, nil
}

func (a *AMQPNotifier) Send(ctx context.Context, n ParentNotification) error {
	body, err := json.Marshal(n)
	if err != nil {
		return err
	}
	_, err = a.cb.Execute(func() (any, error) {
		return nil, a.ch.PublishWithContext(
			ctx,
			"",      // default exchange
			a.queue, // routing key == queue name
			false,
			false,
			amqp.Publishing{
				ContentType:  "application/json",
				DeliveryMode: amqp.Persistent,
				Body:         body,
			},
		)
	})
	if err != nil {
		metrics.ParentNotifications.WithLabelValues("amqp", "error").Inc()
		return err
	}
	metrics.ParentNotifications.WithLabelValues("amqp", "ok").Inc()
	return nil
}

func (a *AMQPNotifier) Close() error {
	if a.ch != nil {
		if err := a.ch.Close(); err != nil {
			return err
		}
	}
	if a.conn != nil {
		return a.conn.Close()
	}
	return nil
}
