package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/joefazee/bosko/models"
)

// Aggregate derives a provider's average rating and review count from the
// reviews cached for each of its services. Denormalized Service.Rating and
// Service.ReviewsCount are ignored. Services whose reviews were never fetched
// contribute nothing, so callers wanting a complete figure fetch them first
// (see Store.FetchProviderReviews).
func Aggregate(st State, providerID string) models.ProviderAggregate {
	agg := models.ProviderAggregate{ProviderID: providerID}

	var sum int64
	for _, svc := range st.ProviderServices(providerID) {
		for _, r := range st.reviewsResource(svc.ID).Data {
			sum += int64(r.Rating)
			agg.TotalReviews++
		}
	}
	if agg.TotalReviews == 0 {
		return agg
	}

	avg := decimal.NewFromInt(sum).
		Div(decimal.NewFromInt(int64(agg.TotalReviews))).
		Round(1)
	agg.AverageRating = avg.InexactFloat64()
	return agg
}
