package box

import (
	"sync"
	"testing"
)

// Exercises the uniqueness boundary under the race detector: goroutines
// clone and release their own handles to a shared value while the main
// goroutine mutates a provably unique box in place. Increments only ever
// happen through existing handles, so the unique box can never gain an
// owner behind the mutator's back.
func TestUpdateOwnedUniquenessBoundary(t *testing.T) {
	shared := New(100)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		h := shared.Clone()
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				c := h.Clone()
				if c.Get() != 100 {
					t.Error("shared value changed")
				}
				c.Release()
			}
			h.Release()
		}()
	}

	// Never cloned, never published: always unique.
	private := New(0)
	for j := 0; j < 1000; j++ {
		next, err := private.UpdateOwned(inc)
		if err != nil {
			t.Fatalf("UpdateOwned failed: %v", err)
		}
		private = next
	}
	if got := private.Get(); got != 1000 {
		t.Errorf("private box holds %d, want 1000", got)
	}

	wg.Wait()
	if got := shared.Get(); got != 100 {
		t.Errorf("shared box holds %d, want 100", got)
	}
}

// Concurrent readers and copy-on-write updaters on distinct handles to
// one value: updates build fresh storage, so readers never observe a
// torn or intermediate value.
func TestConcurrentReadersAndUpdaters(t *testing.T) {
	origin := New([2]int{1, 1})

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(2)

		reader := origin.Clone()
		go func() {
			defer wg.Done()
			defer reader.Release()
			for j := 0; j < 500; j++ {
				v := reader.Get()
				if v[0] != v[1] {
					t.Errorf("torn read: %v", v)
				}
			}
		}()

		updater := origin.Clone()
		go func() {
			defer wg.Done()
			defer updater.Release()
			for j := 0; j < 500; j++ {
				next, err := updater.Update(func(v [2]int) [2]int {
					return [2]int{v[0] + 1, v[1] + 1}
				})
				if err != nil {
					t.Errorf("Update failed: %v", err)
					return
				}
				updater.AssignMove(&next)
				next.Release()
			}
		}()
	}
	wg.Wait()

	if v := origin.Get(); v != [2]int{1, 1} {
		t.Errorf("origin changed: %v", v)
	}
}
