package gym

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, ownerID int, gymName, city, mapLocation, openHours string, perDayCost int, holidays HolidayList) (*Listing, error) {
	query := `
		INSERT INTO gyms (owner_id, gym_name, city, map_location, open_hours, per_day_cost, holidays)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, owner_id, gym_name, city, map_location, open_hours, per_day_cost, holidays, created_at
	`

	var listing Listing
	err := r.db.GetContext(ctx, &listing, query, ownerID, gymName, city, mapLocation, openHours, perDayCost, holidays)
	if err != nil {
		return nil, err
	}

	return &listing, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Listing, error) {
	query := `
		SELECT id, owner_id, gym_name, city, map_location, open_hours, per_day_cost, holidays, created_at
		FROM gyms
		WHERE id = $1
	`

	var listing Listing
	err := r.db.GetContext(ctx, &listing, query, id)
	if err != nil {
		return nil, err
	}

	return &listing, nil
}

func (r *repository) ListByOwner(ctx context.Context, ownerID int) ([]Listing, error) {
	query := `
		SELECT id, owner_id, gym_name, city, map_location, open_hours, per_day_cost, holidays, created_at
		FROM gyms
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`

	var listings []Listing
	err := r.db.SelectContext(ctx, &listings, query, ownerID)
	if err != nil {
		return nil, err
	}

	return listings, nil
}

func (r *repository) SearchByCity(ctx context.Context, city string) ([]Listing, error) {
	query := `
		SELECT id, owner_id, gym_name, city, map_location, open_hours, per_day_cost, holidays, created_at
		FROM gyms
		WHERE city = $1
		ORDER BY created_at DESC
	`

	var listings []Listing
	err := r.db.SelectContext(ctx, &listings, query, city)
	if err != nil {
		return nil, err
	}

	return listings, nil
}

func (r *repository) Update(ctx context.Context, id int, gymName, city, mapLocation, openHours string, perDayCost int, holidays HolidayList) (*Listing, error) {
	query := `
		UPDATE gyms
		SET gym_name = $1, city = $2, map_location = $3, open_hours = $4, per_day_cost = $5, holidays = $6
		WHERE id = $7
		RETURNING id, owner_id, gym_name, city, map_location, open_hours, per_day_cost, holidays, created_at
	`

	var listing Listing
	err := r.db.GetContext(ctx, &listing, query, gymName, city, mapLocation, openHours, perDayCost, holidays, id)
	if err != nil {
		return nil, err
	}

	return &listing, nil
}
