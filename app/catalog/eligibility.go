package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/joefazee/bosko/internal/cache"
	"github.com/joefazee/bosko/internal/logger"
	"github.com/joefazee/bosko/models"
)

// EligibilityResolver answers "has this user paid for or completed this
// service?" and memoizes every answer, including negative ones and answers
// produced by a failed lookup.
type EligibilityResolver struct {
	purchases PurchaseLookup
	memo      cache.Cache[bool]
	ttl       time.Duration
	group     singleflight.Group
	logger    logger.Logger
}

var _ EligibilityChecker = (*EligibilityResolver)(nil)

// NewEligibilityResolver memoizes in memo for ttl; zero ttl keeps answers for
// the life of the cache.
func NewEligibilityResolver(purchases PurchaseLookup, memo cache.Cache[bool], ttl time.Duration, log logger.Logger) *EligibilityResolver {
	if log == nil {
		log = logger.NewNullLogger()
	}
	return &EligibilityResolver{purchases: purchases, memo: memo, ttl: ttl, logger: log}
}

// eligibilityKey length-prefixes userID so ids containing ":" cannot collide.
func eligibilityKey(userID, serviceID string) string {
	return fmt.Sprintf("eligibility:%d:%s:%s", len(userID), userID, serviceID)
}

// Ensure returns the memoized answer or asks the purchases endpoint once.
// Lookup failures count as ineligible.
func (r *EligibilityResolver) Ensure(ctx context.Context, serviceID, userID string) bool {
	if strings.TrimSpace(serviceID) == "" || strings.TrimSpace(userID) == "" {
		return false
	}
	ctx = context.WithoutCancel(ctx)
	key := eligibilityKey(userID, serviceID)

	if eligible, ok := r.cached(ctx, key); ok {
		return eligible
	}

	v, _, _ := r.group.Do(key, func() (interface{}, error) {
		if eligible, ok := r.cached(ctx, key); ok {
			return eligible, nil
		}

		eligible := false
		purchases, err := r.purchases.GetUserPurchases(ctx, userID, serviceID)
		if err != nil {
			r.logger.Error(err, logger.Fields{
				"operation":  "eligibility",
				"user_id":    userID,
				"service_id": serviceID,
			})
		} else {
			eligible = models.AnyQualifies(purchases)
		}

		if err := r.memo.Set(ctx, key, eligible, r.ttl); err != nil {
			r.logger.Warn("eligibility memo write failed", logger.Fields{"key": key, "error": err.Error()})
		}
		return eligible, nil
	})
	return v.(bool)
}

func (r *EligibilityResolver) cached(ctx context.Context, key string) (bool, bool) {
	eligible, err := r.memo.Get(ctx, key)
	if err == nil {
		return eligible, true
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		r.logger.Warn("eligibility memo read failed", logger.Fields{"key": key, "error": err.Error()})
	}
	return false, false
}

// IsUserEligibleForReview reports whether userID may review serviceID.
func (s *Store) IsUserEligibleForReview(ctx context.Context, serviceID, userID string) bool {
	return s.EnsureEligibility(ctx, serviceID, userID)
}

// EnsureEligibility resolves (and memoizes) eligibility. It fails closed.
func (s *Store) EnsureEligibility(ctx context.Context, serviceID, userID string) bool {
	if s.eligibility == nil {
		return false
	}
	return s.eligibility.Ensure(ctx, serviceID, userID)
}
