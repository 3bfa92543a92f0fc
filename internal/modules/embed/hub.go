package embed

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Hub fans height and layout-change notifications out to the pages hosting
// the embeddable widget. Listeners are keyed by widget key; a tenant index
// lets layout saves reach every widget of that tenant.
type Hub struct {
	mu       sync.RWMutex
	byKey    map[string]map[*websocket.Conn]bool
	byTenant map[string]map[*websocket.Conn]bool
	tenantOf map[*websocket.Conn]string
	keyOf    map[*websocket.Conn]string
}

func NewHub() *Hub {
	return &Hub{
		byKey:    make(map[string]map[*websocket.Conn]bool),
		byTenant: make(map[string]map[*websocket.Conn]bool),
		tenantOf: make(map[*websocket.Conn]string),
		keyOf:    make(map[*websocket.Conn]string),
	}
}

func (h *Hub) Register(tenantID, widgetKey string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.byKey[widgetKey] == nil {
		h.byKey[widgetKey] = make(map[*websocket.Conn]bool)
	}
	if h.byTenant[tenantID] == nil {
		h.byTenant[tenantID] = make(map[*websocket.Conn]bool)
	}
	h.byKey[widgetKey][conn] = true
	h.byTenant[tenantID][conn] = true
	h.tenantOf[conn] = tenantID
	h.keyOf[conn] = widgetKey
}

func (h *Hub) Unregister(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.dropLocked(conn)
}

func (h *Hub) dropLocked(conn *websocket.Conn) {
	if key, ok := h.keyOf[conn]; ok {
		delete(h.byKey[key], conn)
		if len(h.byKey[key]) == 0 {
			delete(h.byKey, key)
		}
	}
	if tenant, ok := h.tenantOf[conn]; ok {
		delete(h.byTenant[tenant], conn)
		if len(h.byTenant[tenant]) == 0 {
			delete(h.byTenant, tenant)
		}
	}
	delete(h.keyOf, conn)
	delete(h.tenantOf, conn)
	_ = conn.Close()
}

// NotifyHeight relays a widget's content height to every listener on the
// same widget key, so the hosting page can resize its iframe.
func (h *Hub) NotifyHeight(widgetKey string, height int) int {
	return h.broadcast(h.snapshotKey(widgetKey), map[string]interface{}{
		"type":       "height",
		"widget_key": widgetKey,
		"height":     height,
	})
}

// LayoutUpdated tells every open widget of the tenant to refetch its form.
// Implements the layout engine's Notifier.
func (h *Hub) LayoutUpdated(tenantID, layoutID string) {
	h.broadcast(h.snapshotTenant(tenantID), map[string]interface{}{
		"type":      "layout_updated",
		"layout_id": layoutID,
	})
}

func (h *Hub) snapshotKey(widgetKey string) []*websocket.Conn {
	h.mu.RLock()
	defer h.mu.RUnlock()

	conns := make([]*websocket.Conn, 0, len(h.byKey[widgetKey]))
	for c := range h.byKey[widgetKey] {
		conns = append(conns, c)
	}
	return conns
}

func (h *Hub) snapshotTenant(tenantID string) []*websocket.Conn {
	h.mu.RLock()
	defer h.mu.RUnlock()

	conns := make([]*websocket.Conn, 0, len(h.byTenant[tenantID]))
	for c := range h.byTenant[tenantID] {
		conns = append(conns, c)
	}
	return conns
}

func (h *Hub) broadcast(conns []*websocket.Conn, message interface{}) int {
	sent := 0
	for _, conn := range conns {
		if err := conn.WriteJSON(message); err != nil {
			h.Unregister(conn)
			continue
		}
		sent++
	}
	return sent
}

func (h *Hub) ListenerCount(widgetKey string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.byKey[widgetKey])
}

func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.keyOf {
		h.dropLocked(conn)
	}
}
