package screen

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestListScreenActivateLoadsAndFollowsCache(t *testing.T) {
	client := newFakeClient(tripRead{ID: 1, Name: "Cusco"})
	rec := &Recorder{}
	list := NewListScreen(tripDefinition(), client, rec, fixedConfirmer(true))

	var renders [][]tripRead
	list.OnChange(func(items []tripRead) { renders = append(renders, items) })

	if err := list.Activate(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if list.State() != StateLoaded {
		t.Fatalf("expected loaded, got %s", list.State())
	}
	if got := list.Items(); len(got) != 1 || got[0].Name != "Cusco" {
		t.Fatalf("unexpected items %+v", got)
	}

	client.cache.Publish([]tripRead{{ID: 1, Name: "Cusco"}, {ID: 2, Name: "Puno"}})
	if got := list.Items(); len(got) != 2 {
		t.Fatalf("expected live refresh, got %+v", got)
	}
	if len(renders) == 0 || len(renders[len(renders)-1]) != 2 {
		t.Fatalf("expected OnChange with republished list, got %v", renders)
	}
	if len(rec.Notifications()) != 0 {
		t.Fatalf("expected no notifications, got %+v", rec.Notifications())
	}
}

func TestListScreenLoadFailureKeepsItemsAndNotifiesOnce(t *testing.T) {
	client := newFakeClient(tripRead{ID: 1, Name: "Cusco"})
	rec := &Recorder{}
	list := NewListScreen(tripDefinition(), client, rec, fixedConfirmer(true))

	if err := list.Activate(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	list.Deactivate()

	client.listErr = errBackend
	if err := list.Activate(context.Background()); !errors.Is(err, errBackend) {
		t.Fatalf("expected backend error, got %v", err)
	}
	if list.State() != StateLoadFailed {
		t.Fatalf("expected load_failed, got %s", list.State())
	}
	if got := list.Items(); len(got) != 1 || got[0].Name != "Cusco" {
		t.Fatalf("expected previous items untouched, got %+v", got)
	}

	notes := rec.Notifications()
	if len(notes) != 1 {
		t.Fatalf("expected exactly one notification, got %+v", notes)
	}
	if notes[0].Severity != SeverityError || notes[0].Detail != "No se pudieron cargar los viajes" {
		t.Fatalf("unexpected notification %+v", notes[0])
	}
}

func TestListScreenDeactivateStopsUpdates(t *testing.T) {
	client := newFakeClient(tripRead{ID: 1, Name: "Cusco"})
	list := NewListScreen(tripDefinition(), client, &Recorder{}, fixedConfirmer(true))

	if err := list.Activate(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	list.Deactivate()

	client.cache.Publish([]tripRead{})
	if got := list.Items(); len(got) != 1 {
		t.Fatalf("expected deactivated screen to ignore republish, got %+v", got)
	}
	if n := client.cache.Subscribers(); n != 0 {
		t.Fatalf("expected subscription released, got %d subscribers", n)
	}
}

func TestListScreenDropsLateResponse(t *testing.T) {
	client := newFakeClient(tripRead{ID: 1, Name: "Cusco"})
	client.block = make(chan struct{})
	rec := &Recorder{}
	list := NewListScreen(tripDefinition(), client, rec, fixedConfirmer(true))

	done := make(chan error, 1)
	go func() { done <- list.Activate(context.Background()) }()

	deadline := time.Now().Add(time.Second)
	for len(client.Calls()) == 0 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	list.Deactivate()
	close(client.block)

	if err := <-done; err != nil {
		t.Fatalf("expected late response to be dropped silently, got %v", err)
	}
	if got := list.Items(); len(got) != 0 {
		t.Fatalf("expected no items rendered, got %+v", got)
	}
	if n := client.cache.Subscribers(); n != 0 {
		t.Fatalf("expected no subscription, got %d", n)
	}
}

func TestListScreenRequestDelete(t *testing.T) {
	item := tripRead{ID: 7, Name: "Cusco"}

	t.Run("rejected prompt issues no call", func(t *testing.T) {
		client := newFakeClient(item)
		rec := &Recorder{}
		list := NewListScreen(tripDefinition(), client, rec, fixedConfirmer(false))

		accepted, err := list.RequestDelete(context.Background(), item)
		if accepted || err != nil {
			t.Fatalf("expected rejection without error, got accepted=%v err=%v", accepted, err)
		}
		if calls := client.Calls(); len(calls) != 0 {
			t.Fatalf("expected no network calls, got %v", calls)
		}
	})

	t.Run("accepted prompt deletes once", func(t *testing.T) {
		client := newFakeClient(item)
		rec := &Recorder{}
		var prompt Prompt
		confirm := ConfirmerFunc(func(ctx context.Context, p Prompt) bool {
			prompt = p
			return true
		})
		list := NewListScreen(tripDefinition(), client, rec, confirm)

		accepted, err := list.RequestDelete(context.Background(), item)
		if !accepted || err != nil {
			t.Fatalf("expected accepted delete, got accepted=%v err=%v", accepted, err)
		}
		calls := client.Calls()
		if len(calls) != 1 || calls[0] != "delete 7" {
			t.Fatalf("expected exactly one delete for id 7, got %v", calls)
		}
		if prompt.Message != "¿Está seguro de que desea eliminar el viaje \"Cusco\"?" || prompt.Header != "Confirmar Eliminación" {
			t.Fatalf("unexpected prompt %+v", prompt)
		}
		notes := rec.Notifications()
		if len(notes) != 1 || notes[0].Severity != SeveritySuccess || notes[0].Detail != "Viaje eliminado correctamente" {
			t.Fatalf("unexpected notifications %+v", notes)
		}
	})

	t.Run("failed delete shows error", func(t *testing.T) {
		client := newFakeClient(item)
		client.deleteErr = errBackend
		rec := &Recorder{}
		list := NewListScreen(tripDefinition(), client, rec, fixedConfirmer(true))
		if err := list.Activate(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := list.RequestDelete(context.Background(), item); !errors.Is(err, errBackend) {
			t.Fatalf("expected backend error, got %v", err)
		}
		if got := list.Items(); len(got) != 1 {
			t.Fatalf("expected row to stay visible, got %+v", got)
		}
		notes := rec.Notifications()
		if len(notes) != 1 || notes[0].Severity != SeverityError || notes[0].Detail != "No se pudo eliminar el viaje" {
			t.Fatalf("unexpected notifications %+v", notes)
		}
	})
}

func TestListScreenRequestDeleteID(t *testing.T) {
	client := newFakeClient()
	rec := &Recorder{}
	var prompt Prompt
	confirm := ConfirmerFunc(func(ctx context.Context, p Prompt) bool {
		prompt = p
		return true
	})
	def := tripDefinition()
	list := NewListScreen(def, client, rec, confirm)

	accepted, err := list.RequestDeleteID(context.Background(), 9, def.DefaultDeletePrompt())
	if !accepted || err != nil {
		t.Fatalf("expected accepted delete, got accepted=%v err=%v", accepted, err)
	}
	calls := client.Calls()
	if len(calls) != 1 || calls[0] != "delete 9" {
		t.Fatalf("expected only a delete for id 9, got %v", calls)
	}
	if prompt.Message != "¿Está seguro de que desea eliminar este registro?" || prompt.AcceptLabel != "Sí, eliminar" {
		t.Fatalf("unexpected prompt %+v", prompt)
	}
	notes := rec.Notifications()
	if len(notes) != 1 || notes[0].Severity != SeveritySuccess {
		t.Fatalf("unexpected notifications %+v", notes)
	}
}
