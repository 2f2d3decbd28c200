package gym

import "context"

type Repository interface {
	Create(ctx context.Context, ownerID int, gymName, city, mapLocation, openHours string, perDayCost int, holidays HolidayList) (*Listing, error)
	GetByID(ctx context.Context, id int) (*Listing, error)
	ListByOwner(ctx context.Context, ownerID int) ([]Listing, error)
	SearchByCity(ctx context.Context, city string) ([]Listing, error)
	Update(ctx context.Context, id int, gymName, city, mapLocation, openHours string, perDayCost int, holidays HolidayList) (*Listing, error)
}
