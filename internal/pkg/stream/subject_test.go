package stream

import (
	"sync"
	"testing"
)

func TestSubscribeReplaysCurrentValue(t *testing.T) {
	s := NewSubject([]int{})

	var got [][]int
	sub := s.Subscribe(func(v []int) { got = append(got, v) })
	defer sub.Unsubscribe()

	if len(got) != 1 || len(got[0]) != 0 {
		t.Fatalf("expected initial empty replay, got %v", got)
	}

	s.Publish([]int{1, 2})
	if len(got) != 2 || len(got[1]) != 2 {
		t.Fatalf("expected published value to be delivered, got %v", got)
	}

	var late []int
	lateSub := s.Subscribe(func(v []int) { late = v })
	defer lateSub.Unsubscribe()
	if len(late) != 2 {
		t.Fatalf("expected late subscriber to receive latest value, got %v", late)
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	s := NewSubject(0)

	calls := 0
	sub := s.Subscribe(func(int) { calls++ })
	sub.Unsubscribe()
	sub.Unsubscribe()

	s.Publish(5)
	if calls != 1 {
		t.Fatalf("expected only the replay call, got %d", calls)
	}
	if s.Subscribers() != 0 {
		t.Fatalf("expected no subscribers, got %d", s.Subscribers())
	}
	if s.Current() != 5 {
		t.Fatalf("expected current value 5, got %d", s.Current())
	}
}

func TestSubscriberCanUnsubscribeDuringPublish(t *testing.T) {
	s := NewSubject(0)

	var sub Subscription
	calls := 0
	sub = s.Subscribe(func(v int) {
		calls++
		if v == 1 {
			sub.Unsubscribe()
		}
	})

	s.Publish(1)
	s.Publish(2)
	if calls != 2 {
		t.Fatalf("expected replay + one publish, got %d", calls)
	}
}

func TestConcurrentPublish(t *testing.T) {
	s := NewSubject(0)

	var mu sync.Mutex
	seen := 0
	sub := s.Subscribe(func(int) {
		mu.Lock()
		seen++
		mu.Unlock()
	})
	defer sub.Unsubscribe()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(v int) {
			defer wg.Done()
			s.Publish(v)
		}(i)
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	if seen != 51 {
		t.Fatalf("expected 51 deliveries, got %d", seen)
	}
}
