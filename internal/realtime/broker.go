package realtime

import (
	"encoding/json"
	"sync"
)

const (
	EventViewChanged  = "view_changed"
	EventScanStep     = "scan_step"
	EventScanProgress = "scan_progress"
	EventScanComplete = "scan_complete"
)

// Event 描述 SSE 推送时的消息载荷。
type Event struct {
	Type    string      `json:"type"`
	View    string      `json:"view,omitempty"`
	Payload interface{} `json:"payload,omitempty"`
}

// Broker 负责按主题向实时订阅者（SSE 客户端）分发事件。
type Broker struct {
	mu     sync.RWMutex
	topics map[string]map[chan []byte]struct{}
}

// NewBroker 创建一个新的 Broker 实例。
func NewBroker() *Broker {
	return &Broker{topics: make(map[string]map[chan []byte]struct{})}
}

// Subscribe 注册主题下的客户端通道并同时返回清理函数。
func (b *Broker) Subscribe(topic string) (<-chan []byte, func()) {
	ch := make(chan []byte, 16)
	b.mu.Lock()
	clients, ok := b.topics[topic]
	if !ok {
		clients = make(map[chan []byte]struct{})
		b.topics[topic] = clients
	}
	clients[ch] = struct{}{}
	b.mu.Unlock()

	var once sync.Once
	cleanup := func() {
		once.Do(func() {
			b.mu.Lock()
			delete(clients, ch)
			if cur, ok := b.topics[topic]; ok && len(cur) == 0 {
				delete(b.topics, topic)
			}
			b.mu.Unlock()
			close(ch)
		})
	}
	return ch, cleanup
}

// Subscribers 返回主题下的订阅者数量。
func (b *Broker) Subscribers(topic string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.topics[topic])
}

// Publish 将事件广播给主题下的所有订阅者。
func (b *Broker) Publish(topic string, evt Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	clients := b.topics[topic]
	if len(clients) == 0 {
		return
	}
	data, err := json.Marshal(evt)
	if err != nil {
		return
	}
	for ch := range clients {
		select {
		case ch <- data:
		default:
			// 如果订阅者处理过慢则丢弃消息，避免阻塞。
		}
	}
}
