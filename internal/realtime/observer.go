package realtime

import "github.com/hitushen/opscut/internal/models"

// Publisher 把某个访客的状态变更转发到其主题。
type Publisher struct {
	broker *Broker
	topic  string
}

func NewPublisher(b *Broker, topic string) *Publisher {
	return &Publisher{broker: b, topic: topic}
}

func (p *Publisher) ViewChanged(s models.Snapshot) {
	p.broker.Publish(p.topic, Event{Type: EventViewChanged, View: s.View.String(), Payload: s})
}

func (p *Publisher) ScanStepStarted(index int, label string) {
	p.broker.Publish(p.topic, Event{
		Type: EventScanStep,
		View: models.ViewScanning.String(),
		Payload: map[string]interface{}{
			"index": index,
			"label": label,
		},
	})
}

func (p *Publisher) ScanProgress(pr models.Progress) {
	p.broker.Publish(p.topic, Event{Type: EventScanProgress, View: models.ViewScanning.String(), Payload: pr})
}

func (p *Publisher) ScanComplete(result models.ScanResult) {
	p.broker.Publish(p.topic, Event{Type: EventScanComplete, View: models.ViewResults.String(), Payload: result})
}
