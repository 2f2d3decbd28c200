package gym

import "time"

// Listing is one gym's bookable day-pass offering. Created by an owner,
// mutated only by that owner, never deleted.
type Listing struct {
	ID          int         `db:"id" json:"id"`
	OwnerID     int         `db:"owner_id" json:"owner_id"`
	GymName     string      `db:"gym_name" json:"gym_name"`
	City        string      `db:"city" json:"city"`
	MapLocation string      `db:"map_location" json:"map_location"`
	OpenHours   string      `db:"open_hours" json:"open_hours"`
	PerDayCost  int         `db:"per_day_cost" json:"per_day_cost"`
	Holidays    HolidayList `db:"holidays" json:"holidays"`
	CreatedAt   time.Time   `db:"created_at" json:"created_at"`
}

// ListingRequest carries the registration and edit forms. PerDayCost arrives
// as the raw form string so the no-leading-zero rule can be checked before
// conversion.
type ListingRequest struct {
	GymName     string   `json:"gym_name" binding:"required"`
	City        string   `json:"city" binding:"required"`
	MapLocation string   `json:"map_location" binding:"required"`
	OpenHours   string   `json:"open_hours" binding:"required"`
	PerDayCost  string   `json:"per_day_cost" binding:"required"`
	Holidays    []string `json:"holidays"`
}
