package gym

import (
	"context"
	"database/sql"
	"errors"
	"strconv"

	"gymperday/internal/metrics"
)

var (
	ErrInvalidGymName     = errors.New("gym name must start with a letter")
	ErrInvalidCity        = errors.New("please select a valid city")
	ErrInvalidMapLocation = errors.New("invalid Google Maps URL")
	ErrInvalidOpenHours   = errors.New("open hours must be like 6am-10pm")
	ErrInvalidPerDayCost  = errors.New("per day cost must be a positive integer without leading zero")
	ErrInvalidHoliday     = errors.New("holidays must be weekday names")
	ErrListingNotFound    = errors.New("listing not found")
	ErrNotOwner           = errors.New("listing belongs to another owner")
)

// IsValidationErr reports whether err is a rejected form field. These never
// reach the repository; the caller re-shows the form.
func IsValidationErr(err error) bool {
	switch {
	case errors.Is(err, ErrInvalidGymName),
		errors.Is(err, ErrInvalidCity),
		errors.Is(err, ErrInvalidMapLocation),
		errors.Is(err, ErrInvalidOpenHours),
		errors.Is(err, ErrInvalidPerDayCost),
		errors.Is(err, ErrInvalidHoliday):
		return true
	}
	return false
}

type Service interface {
	Create(ctx context.Context, ownerID int, req ListingRequest) (*Listing, error)
	ListByOwner(ctx context.Context, ownerID int) ([]Listing, error)
	Update(ctx context.Context, ownerID, listingID int, req ListingRequest) (*Listing, error)
	SearchByCity(ctx context.Context, city string) ([]Listing, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// validate checks fields in a fixed order and stops at the first failure,
// so exactly one error message surfaces per submission.
func validate(req ListingRequest) error {
	if !IsValidGymName(req.GymName) {
		metrics.RecordValidationFailure("gym_name")
		return ErrInvalidGymName
	}
	if !IsValidCity(req.City) {
		metrics.RecordValidationFailure("city")
		return ErrInvalidCity
	}
	if !IsValidMapLocation(req.MapLocation) {
		metrics.RecordValidationFailure("map_location")
		return ErrInvalidMapLocation
	}
	if !IsValidOpenHours(req.OpenHours) {
		metrics.RecordValidationFailure("open_hours")
		return ErrInvalidOpenHours
	}
	if !IsValidPerDayCost(req.PerDayCost) {
		metrics.RecordValidationFailure("per_day_cost")
		return ErrInvalidPerDayCost
	}
	for _, day := range req.Holidays {
		if !IsWeekday(day) {
			metrics.RecordValidationFailure("holidays")
			return ErrInvalidHoliday
		}
	}
	return nil
}

func (s *service) Create(ctx context.Context, ownerID int, req ListingRequest) (*Listing, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	perDayCost, err := strconv.Atoi(req.PerDayCost)
	if err != nil {
		return nil, ErrInvalidPerDayCost
	}

	listing, err := s.repo.Create(
		ctx,
		ownerID,
		req.GymName,
		req.City,
		req.MapLocation,
		req.OpenHours,
		perDayCost,
		NormalizeHolidays(req.Holidays),
	)
	if err != nil {
		return nil, err
	}

	metrics.RecordListingCreated(listing.City)
	return listing, nil
}

func (s *service) ListByOwner(ctx context.Context, ownerID int) ([]Listing, error) {
	listings, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	for i := range listings {
		listings[i].Holidays = NormalizeHolidays(listings[i].Holidays)
	}

	return listings, nil
}

func (s *service) Update(ctx context.Context, ownerID, listingID int, req ListingRequest) (*Listing, error) {
	existing, err := s.repo.GetByID(ctx, listingID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}

	if existing.OwnerID != ownerID {
		return nil, ErrNotOwner
	}

	if err := validate(req); err != nil {
		return nil, err
	}

	perDayCost, err := strconv.Atoi(req.PerDayCost)
	if err != nil {
		return nil, ErrInvalidPerDayCost
	}

	listing, err := s.repo.Update(
		ctx,
		listingID,
		req.GymName,
		req.City,
		req.MapLocation,
		req.OpenHours,
		perDayCost,
		NormalizeHolidays(req.Holidays),
	)
	if err != nil {
		return nil, err
	}

	metrics.RecordListingUpdated()
	return listing, nil
}

func (s *service) SearchByCity(ctx context.Context, city string) ([]Listing, error) {
	if !IsValidCity(city) {
		return nil, ErrInvalidCity
	}

	listings, err := s.repo.SearchByCity(ctx, city)
	if err != nil {
		return nil, err
	}

	for i := range listings {
		listings[i].Holidays = NormalizeHolidays(listings[i].Holidays)
	}

	metrics.RecordSearch(city)
	return listings, nil
}
