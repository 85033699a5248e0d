// Package watch delivers product aggregate updates to subscribers, keeping
// reactive reads out of the synchronous aggregation core.
package watch

import (
	"fmt"
	"sync"

	"github.com/asaskevich/EventBus"

	"github.com/Zhouyuxin4/Scalor/internal/domain"
)

// ProductUpdate is one published product snapshot.
type ProductUpdate struct {
	UserID  int64
	Product domain.Product
}

// Hub fans product updates out to per-user subscribers. Publishing never
// blocks the publisher; a subscriber that falls behind loses the oldest
// pending update, not the stream.
type Hub struct {
	bus EventBus.Bus
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{bus: EventBus.New()}
}

func topic(userID int64) string {
	return fmt.Sprintf("product.updated.%d", userID)
}

// PublishProduct notifies the user's subscribers of an updated product.
func (h *Hub) PublishProduct(userID int64, p domain.Product) {
	h.bus.Publish(topic(userID), ProductUpdate{UserID: userID, Product: p})
}

// SubscribeProducts registers for a user's product updates. The returned
// cancel func is idempotent; after cancel the channel is closed.
func (h *Hub) SubscribeProducts(userID int64, buffer int) (<-chan ProductUpdate, func()) {
	if buffer < 1 {
		buffer = 1
	}
	ch := make(chan ProductUpdate, buffer)

	var mu sync.Mutex
	closed := false

	handler := func(u ProductUpdate) {
		mu.Lock()
		defer mu.Unlock()
		if closed {
			return
		}
		for {
			select {
			case ch <- u:
				return
			default:
				// Drop the oldest pending update to make room.
				select {
				case <-ch:
				default:
				}
			}
		}
	}
	_ = h.bus.Subscribe(topic(userID), handler)

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			_ = h.bus.Unsubscribe(topic(userID), handler)
			mu.Lock()
			closed = true
			close(ch)
			mu.Unlock()
		})
	}
	return ch, cancel
}
