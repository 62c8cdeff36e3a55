package catalog

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/joefazee/bosko/internal/cache"
	"github.com/joefazee/bosko/models"
)

func newResolver(p *MockPurchases) (*EligibilityResolver, *cache.MemoryCache[bool]) {
	memo := cache.NewMemoryCache[bool]()
	return NewEligibilityResolver(p, memo, 0, nil), memo
}

func TestEligibilityResolver(t *testing.T) {
	ctx := context.Background()

	t.Run("paid purchase qualifies and is memoized", func(t *testing.T) {
		p := &MockPurchases{}
		p.On("GetUserPurchases", mock.Anything, "u1", "s1").
			Return([]models.Purchase{{Status: models.PurchaseStatusPending}, {Status: "PAID"}}, nil).Once()
		r, memo := newResolver(p)
		defer memo.Close()

		assert.True(t, r.Ensure(ctx, "s1", "u1"))
		assert.True(t, r.Ensure(ctx, "s1", "u1"))
		p.AssertNumberOfCalls(t, "GetUserPurchases", 1)
	})

	t.Run("negative answers are memoized", func(t *testing.T) {
		p := &MockPurchases{}
		p.On("GetUserPurchases", mock.Anything, "u1", "s1").
			Return([]models.Purchase{{Status: models.PurchaseStatusCancelled}}, nil).Once()
		r, memo := newResolver(p)
		defer memo.Close()

		assert.False(t, r.Ensure(ctx, "s1", "u1"))
		assert.False(t, r.Ensure(ctx, "s1", "u1"))
		p.AssertNumberOfCalls(t, "GetUserPurchases", 1)
	})

	t.Run("lookup failure fails closed", func(t *testing.T) {
		p := &MockPurchases{}
		p.On("GetUserPurchases", mock.Anything, "u1", "s1").Return(nil, errors.New("502")).Once()
		r, memo := newResolver(p)
		defer memo.Close()

		assert.False(t, r.Ensure(ctx, "s1", "u1"))
		assert.False(t, r.Ensure(ctx, "s1", "u1"))
		p.AssertNumberOfCalls(t, "GetUserPurchases", 1)
	})

	t.Run("blank ids are ineligible without a lookup", func(t *testing.T) {
		p := &MockPurchases{}
		r, memo := newResolver(p)
		defer memo.Close()

		assert.False(t, r.Ensure(ctx, "", "u1"))
		assert.False(t, r.Ensure(ctx, "s1", "  "))
		p.AssertNotCalled(t, "GetUserPurchases", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("pairs are independent", func(t *testing.T) {
		p := &MockPurchases{}
		p.On("GetUserPurchases", mock.Anything, "u1", "s1").
			Return([]models.Purchase{{Status: models.PurchaseStatusCompleted}}, nil).Once()
		p.On("GetUserPurchases", mock.Anything, "u1", "s2").Return([]models.Purchase{}, nil).Once()
		r, memo := newResolver(p)
		defer memo.Close()

		assert.True(t, r.Ensure(ctx, "s1", "u1"))
		assert.False(t, r.Ensure(ctx, "s2", "u1"))
	})

	t.Run("concurrent callers share one lookup", func(t *testing.T) {
		p := &MockPurchases{}
		release := make(chan time.Time)
		p.On("GetUserPurchases", mock.Anything, "u1", "s1").
			Return([]models.Purchase{{Status: models.PurchaseStatusPaid}}, nil).WaitUntil(release)
		r, memo := newResolver(p)
		defer memo.Close()

		var wg sync.WaitGroup
		results := make([]bool, 8)
		for i := range results {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				results[i] = r.Ensure(ctx, "s1", "u1")
			}(i)
		}
		time.Sleep(20 * time.Millisecond)
		close(release)
		wg.Wait()

		for _, ok := range results {
			assert.True(t, ok)
		}
		p.AssertNumberOfCalls(t, "GetUserPurchases", 1)
	})

	t.Run("ids containing colons do not share an answer", func(t *testing.T) {
		p := &MockPurchases{}
		p.On("GetUserPurchases", mock.Anything, "a:b", "c").
			Return([]models.Purchase{{Status: models.PurchaseStatusPaid}}, nil).Once()
		p.On("GetUserPurchases", mock.Anything, "a", "b:c").
			Return([]models.Purchase{}, nil).Once()
		r, memo := newResolver(p)
		defer memo.Close()

		assert.True(t, r.Ensure(ctx, "c", "a:b"))
		assert.False(t, r.Ensure(ctx, "b:c", "a"))
		p.AssertNumberOfCalls(t, "GetUserPurchases", 2)
		assert.NotEqual(t, eligibilityKey("a:b", "c"), eligibilityKey("a", "b:c"))
	})

	t.Run("ttl expiry triggers a new lookup", func(t *testing.T) {
		p := &MockPurchases{}
		p.On("GetUserPurchases", mock.Anything, "u1", "s1").Return([]models.Purchase{}, nil).Once()
		p.On("GetUserPurchases", mock.Anything, "u1", "s1").
			Return([]models.Purchase{{Status: models.PurchaseStatusPaid}}, nil).Once()
		memo := cache.NewMemoryCache[bool]()
		defer memo.Close()
		r := NewEligibilityResolver(p, memo, 30*time.Millisecond, nil)

		assert.False(t, r.Ensure(ctx, "s1", "u1"))
		time.Sleep(60 * time.Millisecond)
		assert.True(t, r.Ensure(ctx, "s1", "u1"))
	})
}

func TestEligibilityResolverWithRedisMemo(t *testing.T) {
	mr := miniredis.RunT(t)
	memo, err := cache.New[bool](cache.Config{Backend: cache.RedisBackend, RedisAddr: mr.Addr(), KeyPrefix: "test:"})
	require.NoError(t, err)
	defer memo.Close()

	p := &MockPurchases{}
	p.On("GetUserPurchases", mock.Anything, "u1", "s1").
		Return([]models.Purchase{{Status: models.PurchaseStatusPaid}}, nil).Once()

	first := NewEligibilityResolver(p, memo, 0, nil)
	assert.True(t, first.Ensure(context.Background(), "s1", "u1"))
	assert.True(t, mr.Exists("test:eligibility:2:u1:s1"))

	// a second resolver over the same memo answers without a lookup
	second := NewEligibilityResolver(p, memo, 0, nil)
	assert.True(t, second.Ensure(context.Background(), "s1", "u1"))
	p.AssertNumberOfCalls(t, "GetUserPurchases", 1)
}

func TestStoreEligibilityWithoutResolver(t *testing.T) {
	s := NewStore(&MockRemote{}, nil, nil, nil)
	assert.False(t, s.IsUserEligibleForReview(context.Background(), "s1", "u1"))
}
