package eventbus

import (
	"context"
	"sync"
	"time"
)

// Event 进程内领域事件，例如 habit.created / checkin.created
type Event struct {
	Type      string         `json:"type"`
	Timestamp int64          `json:"timestamp"` // 毫秒
	Data      map[string]any `json:"data,omitempty"`
}

// Hub 简单的发布订阅中心，订阅随 ctx 结束自动注销
type Hub struct {
	mu   sync.RWMutex
	subs map[chan Event]struct{}
	now  func() time.Time
}

func NewHub() *Hub {
	return &Hub{subs: make(map[chan Event]struct{}), now: time.Now}
}

// Publish 非阻塞投递给所有订阅者
func (h *Hub) Publish(evt Event) {
	if h == nil {
		return
	}
	if evt.Timestamp == 0 {
		evt.Timestamp = h.now().UnixMilli()
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for ch := range h.subs {
		select {
		case ch <- evt:
		default:
			// 慢消费者直接丢弃，不阻塞写请求
		}
	}
}

// Subscribe 注册订阅者，ctx 结束后通道被关闭
func (h *Hub) Subscribe(ctx context.Context, buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 16
	}
	ch := make(chan Event, buffer)

	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()

	go func() {
		<-ctx.Done()
		h.mu.Lock()
		delete(h.subs, ch)
		h.mu.Unlock()
		close(ch)
	}()

	return ch
}

// Subscribers 当前订阅者数量
func (h *Hub) Subscribers() int {
	if h == nil {
		return 0
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}
