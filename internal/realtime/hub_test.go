package realtime

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"
)

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("condition not met in time")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestSendToTopicReachesOnlyFollowers(t *testing.T) {
	hub := NewHubWithInstanceID(nil, "a")
	go hub.Run()
	defer hub.Shutdown()

	bookings := NewConnection("bookings", nil)
	customers := NewConnection("customers", nil)
	hub.Register(bookings)
	hub.Register(customers)
	waitFor(t, func() bool { return hub.GetConnectionCount() == 2 })

	hub.SendToTopic("bookings", &Event{Type: EventList, Resource: "bookings", Data: []int{1, 2}})

	select {
	case raw := <-bookings.Send:
		var ev Event
		if err := json.Unmarshal(raw, &ev); err != nil {
			t.Fatalf("decode failed: %v", err)
		}
		if ev.Type != EventList || ev.Resource != "bookings" {
			t.Fatalf("unexpected event %+v", ev)
		}
	case <-time.After(time.Second):
		t.Fatal("expected event for bookings follower")
	}

	select {
	case raw := <-customers.Send:
		t.Fatalf("customers follower must not receive bookings events, got %s", raw)
	default:
	}
}

func TestUnregisterClosesSendChannel(t *testing.T) {
	hub := NewHubWithInstanceID(nil, "a")
	go hub.Run()
	defer hub.Shutdown()

	conn := NewConnection("plans", nil)
	hub.Register(conn)
	waitFor(t, func() bool { return hub.TopicConnectionCount("plans") == 1 })

	hub.Unregister(conn)
	waitFor(t, func() bool { return hub.TopicConnectionCount("plans") == 0 })

	if _, ok := <-conn.Send; ok {
		t.Fatal("expected send channel to be closed")
	}

	// Sending to an unregistered connection is a no-op.
	hub.SendTo(conn, &Event{Type: EventList, Resource: "plans"})
}

func TestPublishChangeCarriesInstanceID(t *testing.T) {
	hub := NewHubWithInstanceID(nil, "instance-a")

	var (
		mu        sync.Mutex
		published []string
	)
	hub.publishFn = func(ctx context.Context, channel string, payload []byte) error {
		mu.Lock()
		defer mu.Unlock()
		published = append(published, channel+" "+string(payload))
		return nil
	}

	hub.PublishChange("bookings")

	mu.Lock()
	defer mu.Unlock()
	want := changesChannel + ` {"resource":"bookings","sender_instance_id":"instance-a"}`
	if len(published) != 1 || published[0] != want {
		t.Fatalf("unexpected publish %v", published)
	}
}

func TestRemoteChangeTriggersRefresh(t *testing.T) {
	hub := NewHubWithInstanceID(nil, "instance-a")

	refreshed := 0
	hub.OnRemoteChange("bookings", func() { refreshed++ })

	hub.handleChangePayload(`{"resource":"bookings","sender_instance_id":"instance-a"}`)
	if refreshed != 0 {
		t.Fatal("own change must not trigger refresh")
	}

	hub.handleChangePayload(`{"resource":"bookings","sender_instance_id":"instance-b"}`)
	if refreshed != 1 {
		t.Fatalf("expected one refresh, got %d", refreshed)
	}

	hub.handleChangePayload(`{"resource":"guides","sender_instance_id":"instance-b"}`)
	hub.handleChangePayload(`not json`)
	if refreshed != 1 {
		t.Fatalf("unexpected refreshes %d", refreshed)
	}
}

func TestPublishChangeWithoutRedisIsNoop(t *testing.T) {
	hub := NewHubWithInstanceID(nil, "a")
	hub.PublishChange("bookings")
}
