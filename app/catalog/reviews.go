package catalog

import (
	"context"
	"fmt"

	"github.com/joefazee/bosko/app/remote"
	"github.com/joefazee/bosko/internal/logger"
	"github.com/joefazee/bosko/internal/validator"
	"github.com/joefazee/bosko/models"
)

type submissionState int

const (
	submissionPending submissionState = iota
	submissionConfirmed
	submissionRolledBack
)

func (s submissionState) String() string {
	switch s {
	case submissionPending:
		return "pending"
	case submissionConfirmed:
		return "confirmed"
	case submissionRolledBack:
		return "rolled_back"
	default:
		return "unknown"
	}
}

// submission tracks one optimistic review from insert to resolution. Only the
// entry carrying tempID is ever replaced or removed.
type submission struct {
	store     *Store
	serviceID string
	tempID    string
	state     submissionState
}

func (sub *submission) confirm(review models.Review) error {
	if sub.state != submissionPending {
		return models.NewCodedError(models.CodeInvalidTransition,
			fmt.Sprintf("submission %s already %s", sub.tempID, sub.state), nil)
	}
	sub.store.dispatch(reviewConfirmed{serviceID: sub.serviceID, tempID: sub.tempID, review: review})
	sub.state = submissionConfirmed
	return nil
}

func (sub *submission) rollback() error {
	if sub.state != submissionPending {
		return models.NewCodedError(models.CodeInvalidTransition,
			fmt.Sprintf("submission %s already %s", sub.tempID, sub.state), nil)
	}
	sub.store.dispatch(reviewRolledBack{serviceID: sub.serviceID, tempID: sub.tempID})
	sub.state = submissionRolledBack
	return nil
}

func (s *Store) nextTempID() string {
	return fmt.Sprintf("%s%d-%d", models.TempReviewIDPrefix, s.now().UnixMilli(), s.seq.Add(1))
}

// begin inserts the optimistic review and returns its pending submission.
func (s *Store) begin(input ReviewInput, comment string) (*submission, error) {
	review := models.Review{
		ID:         s.nextTempID(),
		ServiceID:  input.ServiceID,
		UserID:     input.UserID,
		UserName:   input.UserName,
		Comment:    comment,
		Rating:     input.Rating,
		CreatedAt:  s.now().UTC(),
		Optimistic: true,
	}
	if !s.dispatch(reviewInserted{serviceID: input.ServiceID, review: review}) {
		return nil, fmt.Errorf("optimistic review %s already present", review.ID)
	}
	return &submission{store: s, serviceID: input.ServiceID, tempID: review.ID}, nil
}

func validateReview(input ReviewInput) error {
	v := validator.New()
	if err := v.Struct(input); err != nil {
		return err
	}
	v.Check(validator.Between(input.Rating, models.MinRating, models.MaxRating), "rating", models.ErrInvalidRating.Error())
	if !v.Valid() {
		return models.NewValidationError("invalid review", v.Errors)
	}
	return nil
}

// AddReviewWithRating posts a review for an eligible purchaser. The review is
// visible in the service's list immediately and is either swapped for the
// server copy or removed again when the request fails, in which case the
// original error is returned.
func (s *Store) AddReviewWithRating(ctx context.Context, input ReviewInput) (*models.Review, error) {
	if err := validateReview(input); err != nil {
		return nil, err
	}

	if !s.EnsureEligibility(ctx, input.ServiceID, input.UserID) {
		return nil, models.NewCodedError(models.CodeNotEligible,
			fmt.Sprintf("user %s cannot review service %s", input.UserID, input.ServiceID), nil)
	}

	comment := s.sanitizer.StripHTML(input.Comment)
	sub, err := s.begin(input, comment)
	if err != nil {
		return nil, err
	}

	created, err := s.remote.CreateReview(context.WithoutCancel(ctx), input.ServiceID, remote.CreateReviewPayload{
		UserID:   input.UserID,
		UserName: input.UserName,
		Rating:   input.Rating,
		Comment:  comment,
	})
	if err != nil {
		_ = sub.rollback()
		s.logger.Error(err, logger.Fields{
			"operation":  "add_review",
			"service_id": input.ServiceID,
			"temp_id":    sub.tempID,
		})
		return nil, err
	}

	review := *created
	review.Optimistic = false
	if review.ServiceID == "" {
		review.ServiceID = input.ServiceID
	}
	if err := sub.confirm(review); err != nil {
		return nil, err
	}
	s.logger.Info("review created", logger.Fields{"service_id": input.ServiceID, "review_id": review.ID})
	return &review, nil
}
