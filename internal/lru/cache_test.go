package lru

import (
	"strconv"
	"sync"
	"testing"
)

func TestGetAdd(t *testing.T) {
	c := New[string, int](4)
	if _, ok := c.Get("a"); ok {
		t.Fatal("Get on empty cache hit")
	}
	c.Add("a", 1)
	c.Add("a", 2)
	if v, ok := c.Get("a"); !ok || v != 2 {
		t.Errorf("Get(a) = %d, %v, want 2, true", v, ok)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestEvictsLeastRecentlyUsed(t *testing.T) {
	c := New[int, int](3)
	for i := range 3 {
		c.Add(i, i)
	}
	c.Get(0) // 1 is now the oldest
	c.Add(3, 3)

	if _, ok := c.Get(1); ok {
		t.Error("least recently used entry survived")
	}
	for _, k := range []int{0, 2, 3} {
		if _, ok := c.Get(k); !ok {
			t.Errorf("entry %d evicted", k)
		}
	}
	if c.Len() != 3 {
		t.Errorf("Len() = %d, want 3", c.Len())
	}
}

func TestGetOrAdd(t *testing.T) {
	c := New[string, int](0)
	calls := 0
	fn := func() int { calls++; return 7 }
	for range 3 {
		if v := c.GetOrAdd("k", fn); v != 7 {
			t.Fatalf("GetOrAdd() = %d, want 7", v)
		}
	}
	if calls != 1 {
		t.Errorf("fn called %d times, want 1", calls)
	}
	st := c.Stats()
	if st.Hits != 2 || st.Misses != 1 || st.Capacity != DefaultCapacity {
		t.Errorf("Stats() = %+v", st)
	}
}

func TestClear(t *testing.T) {
	c := New[int, int](8)
	c.Add(1, 1)
	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len() = %d after Clear", c.Len())
	}
	c.Add(2, 2)
	if v, ok := c.Get(2); !ok || v != 2 {
		t.Error("cache unusable after Clear")
	}
}

func TestConcurrentAccess(t *testing.T) {
	c := New[string, int](16)
	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 200 {
				k := strconv.Itoa((g * i) % 40)
				c.GetOrAdd(k, func() int { return i })
			}
		}()
	}
	wg.Wait()
	if c.Len() > 16 {
		t.Errorf("Len() = %d exceeds capacity", c.Len())
	}
}
