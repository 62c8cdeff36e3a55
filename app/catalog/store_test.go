package catalog

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/joefazee/bosko/app/remote"
	"github.com/joefazee/bosko/internal/logger"
	"github.com/joefazee/bosko/models"
)

func newTestStore(m *MockRemote) *Store {
	return NewStore(m, stubEligibility{}, nil, nil)
}

func service(id, categoryID, providerID, title string) models.Service {
	return models.Service{ID: id, CategoryID: categoryID, ProviderID: providerID, Title: title}
}

func TestFetchCategories(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		m := &MockRemote{}
		cats := []models.Category{{ID: "c1", Title: "Hogar"}, {ID: "c2", Title: "Belleza"}}
		m.On("GetCategories", mock.Anything).Return(cats, nil).Once()
		s := newTestStore(m)

		assert.Equal(t, StatusIdle, s.GetCategories().Status)
		s.FetchCategories(ctx)

		r := s.GetCategories()
		assert.Equal(t, StatusSuccess, r.Status)
		assert.Empty(t, r.Error)
		assert.Equal(t, cats, r.Data)
		m.AssertExpectations(t)
	})

	t.Run("in-flight fetch is not duplicated", func(t *testing.T) {
		m := &MockRemote{}
		release := make(chan time.Time)
		m.On("GetCategories", mock.Anything).Return([]models.Category{{ID: "c1"}}, nil).WaitUntil(release)
		s := newTestStore(m)

		done := make(chan struct{})
		go func() {
			s.FetchCategories(ctx)
			close(done)
		}()
		require.Eventually(t, func() bool {
			return s.GetCategories().Status == StatusLoading
		}, time.Second, 5*time.Millisecond)

		s.FetchCategories(ctx)
		close(release)
		<-done

		m.AssertNumberOfCalls(t, "GetCategories", 1)
		assert.Equal(t, StatusSuccess, s.GetCategories().Status)
	})

	t.Run("failure keeps previous data", func(t *testing.T) {
		m := &MockRemote{}
		cats := []models.Category{{ID: "c1"}}
		m.On("GetCategories", mock.Anything).Return(cats, nil).Once()
		m.On("GetCategories", mock.Anything).
			Return(nil, fmt.Errorf("get categories: %w", &remote.HTTPError{Status: http.StatusServiceUnavailable, Message: "maintenance"})).
			Once()
		s := newTestStore(m)

		s.FetchCategories(ctx)
		s.FetchCategories(ctx)

		r := s.GetCategories()
		assert.Equal(t, StatusError, r.Status)
		assert.Equal(t, "maintenance", r.Error)
		assert.Equal(t, cats, r.Data)
	})
}

func TestFetchServicesByCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("buckets are independent", func(t *testing.T) {
		m := &MockRemote{}
		m.On("GetServicesByCategory", mock.Anything, "c1").Return([]models.Service{service("s1", "c1", "p1", "Plomería")}, nil)
		m.On("GetServicesByCategory", mock.Anything, "c2").Return(nil, errors.New("timeout"))
		s := newTestStore(m)

		s.FetchServicesByCategory(ctx, "c1")
		s.FetchServicesByCategory(ctx, "c2")

		assert.Equal(t, StatusSuccess, s.GetServicesStatus("c1"))
		assert.Equal(t, StatusError, s.GetServicesStatus("c2"))
		assert.Equal(t, "timeout", s.GetServicesResource("c2").Error)
		assert.Len(t, s.GetServicesForCategory("c1"), 1)
		assert.NotNil(t, s.GetServicesForCategory("c2"))
		assert.Empty(t, s.GetServicesForCategory("c2"))
		assert.Equal(t, StatusIdle, s.GetServicesStatus("never"))
	})

	t.Run("refetch in another category refreshes shared services", func(t *testing.T) {
		m := &MockRemote{}
		m.On("GetServicesByCategory", mock.Anything, "c1").
			Return([]models.Service{service("s1", "c1", "p1", "Old title"), service("s2", "c1", "p1", "Other")}, nil)
		m.On("GetServicesByCategory", mock.Anything, "c2").
			Return([]models.Service{service("s1", "c1", "p1", "New title")}, nil)
		s := newTestStore(m)

		s.FetchServicesByCategory(ctx, "c1")
		s.FetchServicesByCategory(ctx, "c2")

		c1 := s.GetServicesForCategory("c1")
		require.Len(t, c1, 2)
		assert.Equal(t, "New title", c1[0].Title)
		assert.Equal(t, "Other", c1[1].Title)

		svc, ok := s.GetServiceByID("s1")
		require.True(t, ok)
		assert.Equal(t, "New title", svc.Title)

		_, ok = s.GetServiceByID("missing")
		assert.False(t, ok)
	})
}

func TestFetchProviderProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("fetched once", func(t *testing.T) {
		m := &MockRemote{}
		m.On("GetProvider", mock.Anything, "p1").Return(&models.Provider{ID: "p1", Name: "Luis"}, nil).Once()
		s := newTestStore(m)

		first := s.FetchProviderProfile(ctx, "p1")
		second := s.FetchProviderProfile(ctx, "p1")

		require.NotNil(t, first)
		require.NotNil(t, second)
		assert.Equal(t, "Luis", second.Name)
		assert.Equal(t, StatusSuccess, s.GetProviderStatus("p1"))
		m.AssertNumberOfCalls(t, "GetProvider", 1)
	})

	t.Run("concurrent callers share one request", func(t *testing.T) {
		m := &MockRemote{}
		release := make(chan time.Time)
		m.On("GetProvider", mock.Anything, "p1").Return(&models.Provider{ID: "p1"}, nil).WaitUntil(release)
		s := newTestStore(m)

		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.FetchProviderProfile(ctx, "p1")
		}()
		require.Eventually(t, func() bool {
			return s.GetProviderStatus("p1") == StatusLoading
		}, time.Second, 5*time.Millisecond)

		assert.Nil(t, s.FetchProviderProfile(ctx, "p1"))
		close(release)
		wg.Wait()

		m.AssertNumberOfCalls(t, "GetProvider", 1)
	})

	t.Run("failure can be retried", func(t *testing.T) {
		m := &MockRemote{}
		m.On("GetProvider", mock.Anything, "p1").Return(nil, errors.New("boom")).Once()
		m.On("GetProvider", mock.Anything, "p1").Return(&models.Provider{ID: "p1"}, nil).Once()
		s := newTestStore(m)

		assert.Nil(t, s.FetchProviderProfile(ctx, "p1"))
		assert.Equal(t, StatusError, s.GetProviderStatus("p1"))
		assert.Equal(t, "boom", s.GetProviderResource("p1").Error)

		assert.NotNil(t, s.FetchProviderProfile(ctx, "p1"))
		assert.Equal(t, StatusSuccess, s.GetProviderStatus("p1"))
	})

	t.Run("returned profile is a copy", func(t *testing.T) {
		m := &MockRemote{}
		m.On("GetProvider", mock.Anything, "p1").Return(&models.Provider{ID: "p1", Tags: []string{"a"}}, nil).Once()
		s := newTestStore(m)

		p := s.FetchProviderProfile(ctx, "p1")
		p.Tags[0] = "mutated"
		p.Name = "mutated"

		again := s.GetProvider("p1")
		assert.Equal(t, "a", again.Tags[0])
		assert.Empty(t, again.Name)
	})
}

func TestFetchServiceReviews(t *testing.T) {
	ctx := context.Background()
	m := &MockRemote{}
	reviews := []models.Review{{ID: "r1", ServiceID: "s1", Rating: 5}}
	m.On("GetServiceReviews", mock.Anything, "s1").Return(reviews, nil).Once()
	m.On("GetServiceReviews", mock.Anything, "s1").Return(nil, errors.New("offline")).Once()
	s := newTestStore(m)

	s.FetchServiceReviews(ctx, "s1")
	assert.Equal(t, StatusSuccess, s.GetReviewStatus("s1"))
	assert.Equal(t, reviews, s.GetReviewsForService("s1"))

	s.FetchServiceReviews(ctx, "s1")
	r := s.GetReviewsResource("s1")
	assert.Equal(t, StatusError, r.Status)
	assert.Equal(t, reviews, r.Data)
}

func TestSnapshotIsNotMutatedByLaterTransitions(t *testing.T) {
	ctx := context.Background()
	m := &MockRemote{}
	m.On("GetServiceReviews", mock.Anything, "s1").Return([]models.Review{{ID: "r1", Rating: 4}}, nil).Once()
	s := newTestStore(m)

	before := s.Snapshot()
	s.FetchServiceReviews(ctx, "s1")
	after := s.Snapshot()

	_, ok := before.ReviewsByService["s1"]
	assert.False(t, ok)
	assert.Len(t, after.ReviewsByService["s1"].Data, 1)
}

func TestSubscribe(t *testing.T) {
	m := &MockRemote{}
	m.On("GetCategories", mock.Anything).Return([]models.Category{}, nil)
	s := newTestStore(m)

	var statuses []Status
	unsubscribe := s.Subscribe(func(st State) {
		statuses = append(statuses, st.Categories.Status)
	})

	s.FetchCategories(context.Background())
	assert.Equal(t, []Status{StatusLoading, StatusSuccess}, statuses)

	unsubscribe()
	s.FetchCategories(context.Background())
	assert.Len(t, statuses, 2)
}

// pausingLogger parks the first dispatch of action between applying the
// transition and notifying subscribers.
type pausingLogger struct {
	logger.NullLogger
	action  string
	once    sync.Once
	paused  chan struct{}
	release chan struct{}
}

func (l *pausingLogger) Debug(_ string, fields map[string]interface{}) {
	if fields["action"] != l.action {
		return
	}
	l.once.Do(func() {
		close(l.paused)
		<-l.release
	})
}

func TestSubscribeNeverEndsOnAnOvertakenState(t *testing.T) {
	log := &pausingLogger{
		action:  fmt.Sprintf("%T", categoriesRequested{}),
		paused:  make(chan struct{}),
		release: make(chan struct{}),
	}
	s := NewStore(&MockRemote{}, stubEligibility{}, nil, log)

	var (
		mu   sync.Mutex
		seen []Status
	)
	unsubscribe := s.Subscribe(func(st State) {
		mu.Lock()
		seen = append(seen, st.Categories.Status)
		mu.Unlock()
	})
	defer unsubscribe()

	done := make(chan struct{})
	go func() {
		s.dispatch(categoriesRequested{})
		close(done)
	}()
	<-log.paused

	require.True(t, s.dispatch(categoriesReceived{items: []models.Category{{ID: "cat-1"}}}))
	close(log.release)
	<-done

	assert.Equal(t, StatusSuccess, s.Snapshot().Categories.Status)
	mu.Lock()
	defer mu.Unlock()
	require.NotEmpty(t, seen)
	assert.Equal(t, StatusSuccess, seen[len(seen)-1])
	assert.Equal(t, []Status{StatusSuccess}, seen)
}

func TestSubscribeConcurrentDispatchEndsOnCurrentState(t *testing.T) {
	s := newTestStore(&MockRemote{})

	var (
		mu   sync.Mutex
		last State
	)
	unsubscribe := s.Subscribe(func(st State) {
		mu.Lock()
		last = st
		mu.Unlock()
	})
	defer unsubscribe()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			categoryID := fmt.Sprintf("cat-%d", i)
			s.dispatch(servicesRequested{categoryID: categoryID})
			s.dispatch(servicesReceived{categoryID: categoryID, items: []models.Service{service("s"+categoryID, categoryID, "p1", "x")}})
		}(i)
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	assert.Len(t, last.ServicesByCategory, 20)
	assert.Equal(t, s.Snapshot().ServicesByCategory, last.ServicesByCategory)
}

func TestProviderAggregate(t *testing.T) {
	ctx := context.Background()
	rating := 1.0
	count := 99

	m := &MockRemote{}
	s1 := service("s1", "c1", "p1", "Plomería")
	s1.Rating = &rating
	s1.ReviewsCount = &count
	m.On("GetServicesByCategory", mock.Anything, "c1").
		Return([]models.Service{s1, service("s2", "c1", "p1", "Gas"), service("s3", "c1", "p2", "Other")}, nil)
	m.On("GetServicesByCategory", mock.Anything, "c2").
		Return([]models.Service{service("s1", "c1", "p1", "Plomería")}, nil)
	m.On("GetServiceReviews", mock.Anything, "s1").
		Return([]models.Review{{ID: "r1", Rating: 5}, {ID: "r2", Rating: 4}}, nil)
	m.On("GetServiceReviews", mock.Anything, "s2").
		Return([]models.Review{{ID: "r3", Rating: 4}}, nil)
	s := newTestStore(m)

	s.FetchServicesByCategory(ctx, "c1")
	s.FetchServicesByCategory(ctx, "c2")

	assert.Equal(t, models.ProviderAggregate{ProviderID: "p1"}, s.GetProviderAggregate("p1"))

	s.FetchProviderReviews(ctx, "p1")
	agg := s.GetProviderAggregate("p1")
	assert.Equal(t, 3, agg.TotalReviews)
	assert.InDelta(t, 4.3, agg.AverageRating, 1e-9)

	s.FetchProviderReviews(ctx, "p1")
	m.AssertNumberOfCalls(t, "GetServiceReviews", 2)
	m.AssertNotCalled(t, "GetServiceReviews", mock.Anything, "s3")
}

func TestAggregateRounding(t *testing.T) {
	st := NewState()
	st, _ = reduce(st, servicesReceived{categoryID: "c1", items: []models.Service{service("s1", "c1", "p1", "x")}})
	st, _ = reduce(st, reviewsReceived{serviceID: "s1", items: []models.Review{
		{ID: "a", Rating: 5}, {ID: "b", Rating: 5}, {ID: "c", Rating: 4},
	}})

	agg := Aggregate(st, "p1")
	assert.Equal(t, 3, agg.TotalReviews)
	assert.InDelta(t, 4.7, agg.AverageRating, 1e-9)
}

func TestAggregateCountsPendingReviews(t *testing.T) {
	st := NewState()
	st, _ = reduce(st, servicesReceived{categoryID: "c1", items: []models.Service{service("s1", "c1", "p1", "x")}})
	st, _ = reduce(st, reviewsReceived{serviceID: "s1", items: []models.Review{{ID: "a", Rating: 2}}})
	st, _ = reduce(st, reviewInserted{serviceID: "s1", review: models.Review{ID: "tmp-1-1", Rating: 5, Optimistic: true}})

	agg := Aggregate(st, "p1")
	assert.Equal(t, 2, agg.TotalReviews)
	assert.InDelta(t, 3.5, agg.AverageRating, 1e-9)
}
