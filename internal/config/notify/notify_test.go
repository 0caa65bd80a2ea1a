package notify

import (
	"sync"
	"testing"
	"time"

	"github.com/webgroom/webgroom/internal/config/registry"
)

func TestGlobalSubscription(t *testing.T) {
	n := New()
	defer n.Close()

	var got []Change
	sub := n.Subscribe(func(c Change) { got = append(got, c) })

	n.Notify(Change{Option: registry.WrapLen, Name: "wrap", Type: ChangeSet, New: "72"})
	if len(got) != 1 || got[0].Name != "wrap" || got[0].New != "72" {
		t.Fatalf("got %+v", got)
	}

	sub.Unsubscribe()
	n.Notify(Change{Option: registry.WrapLen, Name: "wrap", Type: ChangeSet, New: "80"})
	if len(got) != 1 {
		t.Fatalf("observer fired after unsubscribe: %+v", got)
	}
}

func TestOptionSubscriptionFilters(t *testing.T) {
	n := New()
	defer n.Close()

	var wrapChanges, indentChanges int
	n.SubscribeOption(registry.WrapLen, func(Change) { wrapChanges++ })
	n.SubscribeOption(registry.IndentSpaces, func(Change) { indentChanges++ })

	n.Notify(Change{Option: registry.WrapLen, Name: "wrap", Type: ChangeSet})
	n.Notify(Change{Option: registry.WrapLen, Name: "wrap", Type: ChangeReset})

	if wrapChanges != 2 {
		t.Errorf("wrap observer fired %d times, want 2", wrapChanges)
	}
	if indentChanges != 0 {
		t.Errorf("indent observer fired %d times, want 0", indentChanges)
	}
}

func TestReloadReachesOptionObservers(t *testing.T) {
	n := New()
	defer n.Close()

	var fired int
	n.SubscribeOption(registry.TabSize, func(c Change) {
		if c.Type != ChangeReload {
			t.Errorf("type = %v, want reload", c.Type)
		}
		fired++
	})

	n.NotifyReload("groomrc")
	if fired != 1 {
		t.Errorf("fired %d times, want 1", fired)
	}
}

func TestAsyncDelivery(t *testing.T) {
	n := New(WithAsync(8))

	var mu sync.Mutex
	var got int
	n.Subscribe(func(Change) {
		mu.Lock()
		got++
		mu.Unlock()
	})

	for i := 0; i < 5; i++ {
		n.Notify(Change{Option: registry.Quiet, Name: "quiet", Type: ChangeSet})
	}
	n.Close()

	deadline := time.Now().Add(time.Second)
	for {
		mu.Lock()
		done := got == 5
		mu.Unlock()
		if done {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("delivered %d of 5 changes", got)
		}
		time.Sleep(time.Millisecond)
	}
}

func TestNotifyAfterClose(t *testing.T) {
	n := New()
	fired := false
	n.Subscribe(func(Change) { fired = true })
	n.Close()
	n.Close()

	n.Notify(Change{Option: registry.Quiet, Type: ChangeSet})
	if fired {
		t.Error("observer fired after Close")
	}
}
