package gym

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// HolidayList is the canonical shape of a listing's closed days: a list of
// weekday names. Old records persisted the field as a single bare string, so
// reads tolerate both shapes while every write stores the list form. The
// conversion happens at the storage and JSON boundaries; the rest of the
// code only ever sees the list.
type HolidayList []string

// NormalizeHolidays reconciles the legacy single-string representation with
// the list representation. Absent or empty input yields an empty list, a
// single string becomes a one-element list, and a list passes through
// unchanged (no cleansing of duplicates or non-weekday values). Idempotent.
func NormalizeHolidays(v interface{}) HolidayList {
	switch h := v.(type) {
	case nil:
		return HolidayList{}
	case string:
		if h == "" {
			return HolidayList{}
		}
		return HolidayList{h}
	case []string:
		if h == nil {
			return HolidayList{}
		}
		return HolidayList(h)
	case HolidayList:
		if h == nil {
			return HolidayList{}
		}
		return h
	default:
		return HolidayList{}
	}
}

func (h *HolidayList) UnmarshalJSON(data []byte) error {
	// Legacy records hold a bare string instead of an array.
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*h = NormalizeHolidays(single)
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("holidays must be a string or a list of strings: %w", err)
	}

	*h = NormalizeHolidays(list)
	return nil
}

func (h HolidayList) MarshalJSON() ([]byte, error) {
	if h == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(h))
}

// Value always persists the list form, converging legacy rows to the
// canonical shape as they are rewritten.
func (h HolidayList) Value() (driver.Value, error) {
	return json.Marshal(h)
}

func (h *HolidayList) Scan(src interface{}) error {
	switch data := src.(type) {
	case nil:
		*h = HolidayList{}
		return nil
	case []byte:
		return h.UnmarshalJSON(data)
	case string:
		return h.UnmarshalJSON([]byte(data))
	default:
		return fmt.Errorf("cannot scan holidays from %T", src)
	}
}
