package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type MemoryStoreSuite struct {
	suite.Suite
	store *MemoryStore
	ctx   context.Context
}

func TestMemoryStoreSuite(t *testing.T) {
	suite.Run(t, new(MemoryStoreSuite))
}

func (s *MemoryStoreSuite) SetupTest() {
	s.store = NewMemoryStore()
	s.ctx = context.Background()
}

func (s *MemoryStoreSuite) TestGetSet() {
	s.Run("missing key", func() {
		_, ok, err := s.store.Get(s.ctx, "nope")
		s.Require().NoError(err)
		s.False(ok)
	})

	s.Run("round trip", func() {
		s.Require().NoError(s.store.Set(s.ctx, "k", []byte("v"), time.Minute))
		v, ok, err := s.store.Get(s.ctx, "k")
		s.Require().NoError(err)
		s.True(ok)
		s.Equal([]byte("v"), v)
	})

	s.Run("expired entry is a miss", func() {
		s.Require().NoError(s.store.Set(s.ctx, "short", []byte("v"), 10*time.Millisecond))
		time.Sleep(30 * time.Millisecond)
		_, ok, err := s.store.Get(s.ctx, "short")
		s.Require().NoError(err)
		s.False(ok)
	})

	s.Run("set sweeps expired entries", func() {
		s.Require().NoError(s.store.Set(s.ctx, "a", []byte("1"), 10*time.Millisecond))
		time.Sleep(30 * time.Millisecond)
		s.Require().NoError(s.store.Set(s.ctx, "b", []byte("2"), time.Minute))
		s.Equal(1, s.store.Len())
	})
}

type CacheSuite struct {
	suite.Suite
	ctx context.Context
}

func TestCacheSuite(t *testing.T) {
	suite.Run(t, new(CacheSuite))
}

func (s *CacheSuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *CacheSuite) TestDo() {
	s.Run("computes once then serves cached bytes", func() {
		c := New(NewMemoryStore(), time.Minute, nil)
		var calls int32
		compute := func() ([]byte, error) {
			atomic.AddInt32(&calls, 1)
			return []byte(`{"ok":true}`), nil
		}

		first, err := c.Do(s.ctx, "key", compute)
		s.Require().NoError(err)
		second, err := c.Do(s.ctx, "key", compute)
		s.Require().NoError(err)

		s.Equal(first, second)
		s.Equal(int32(1), atomic.LoadInt32(&calls))
	})

	s.Run("compute errors are not cached", func() {
		c := New(NewMemoryStore(), time.Minute, nil)
		var calls int32
		boom := errors.New("boom")

		_, err := c.Do(s.ctx, "key", func() ([]byte, error) {
			atomic.AddInt32(&calls, 1)
			return nil, boom
		})
		s.Require().ErrorIs(err, boom)

		out, err := c.Do(s.ctx, "key", func() ([]byte, error) {
			atomic.AddInt32(&calls, 1)
			return []byte("ok"), nil
		})
		s.Require().NoError(err)
		s.Equal([]byte("ok"), out)
		s.Equal(int32(2), atomic.LoadInt32(&calls))
	})

	s.Run("broken store degrades to compute", func() {
		c := New(&failingStore{}, time.Minute, nil)
		out, err := c.Do(s.ctx, "key", func() ([]byte, error) {
			return []byte("fresh"), nil
		})
		s.Require().NoError(err)
		s.Equal([]byte("fresh"), out)
	})

	s.Run("concurrent identical requests collapse", func() {
		c := New(NewMemoryStore(), time.Minute, nil)
		var calls int32
		compute := func() ([]byte, error) {
			atomic.AddInt32(&calls, 1)
			time.Sleep(50 * time.Millisecond)
			return []byte("slow"), nil
		}

		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				out, err := c.Do(s.ctx, "same", compute)
				s.NoError(err)
				s.Equal([]byte("slow"), out)
			}()
		}
		wg.Wait()
		s.Equal(int32(1), atomic.LoadInt32(&calls))
	})
}

type failingStore struct{}

func (f *failingStore) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, errors.New("store down")
}

func (f *failingStore) Set(context.Context, string, []byte, time.Duration) error {
	return errors.New("store down")
}
