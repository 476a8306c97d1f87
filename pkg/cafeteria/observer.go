package cafeteria

import "time"

type Observer interface {
	OrderChanged(o *Order, status Status)
}

// CustomerNotifier simulates SMS notices to the customer. It only reacts to
// the statuses a customer cares about.
type CustomerNotifier struct {
	Name   string
	logger Logger
}

func NewCustomerNotifier(name string, logger Logger) *CustomerNotifier {
	if logger == nil {
		logger = noopLogger{}
	}
	return &CustomerNotifier{Name: name, logger: logger}
}

func (n *CustomerNotifier) OrderChanged(o *Order, status Status) {
	switch status {
	case StatusPreparing:
		n.logger.Info("SMS to %s: order #%s is being prepared", n.Name, o.ShortID())
	case StatusReady:
		n.logger.Info("SMS to %s: order #%s is READY!", n.Name, o.ShortID())
	}
}

// StatusBoard mirrors every status change, like the shop's wall display.
type StatusBoard struct {
	logger Logger
}

func NewStatusBoard(logger Logger) *StatusBoard {
	if logger == nil {
		logger = noopLogger{}
	}
	return &StatusBoard{logger: logger}
}

func (b *StatusBoard) OrderChanged(o *Order, status Status) {
	b.logger.Info("board: order #%s -> %s", o.ShortID(), status)
}

// MetricsCollector counts status changes and keeps them queryable.
type MetricsCollector struct {
	logger Logger
	counts map[Status]int
}

func NewMetricsCollector(logger Logger) *MetricsCollector {
	if logger == nil {
		logger = noopLogger{}
	}
	return &MetricsCollector{logger: logger, counts: make(map[Status]int)}
}

func (m *MetricsCollector) OrderChanged(o *Order, status Status) {
	m.counts[status]++
	if status == StatusDelivered {
		m.logger.Info("metrics: order #%s delivered at %s", o.ShortID(), time.Now().Format("15:04:05"))
	}
}

func (m *MetricsCollector) Count(status Status) int {
	return m.counts[status]
}

func (m *MetricsCollector) Deliveries() int {
	return m.counts[StatusDelivered]
}
