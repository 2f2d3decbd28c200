package gym

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidGymName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"Single letter", "Z", true},
		{"Normal name", "Fit7", true},
		{"Lowercase start", "iron paradise", true},
		{"Starts with digit", "7th Gym", false},
		{"Starts with digit only", "7Fit", false},
		{"Starts with symbol", "-Gym", false},
		{"Empty", "", false},
		{"Leading space", " Gym", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidGymName(tt.input))
		})
	}
}

func TestIsValidMapLocation(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"maps.google.com", "https://maps.google.com/xyz", true},
		{"www.google.com/maps", "https://www.google.com/maps/xyz", true},
		{"google.com/maps", "https://google.com/maps/place/abc", true},
		{"Plain http", "http://maps.google.com", false},
		{"Other domain", "https://evil.com/maps", false},
		{"Missing protocol", "maps.google.com/xyz", false},
		{"Empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidMapLocation(tt.input))
		})
	}
}

func TestIsValidOpenHours(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"Morning to evening", "6am-9pm", true},
		{"Noon wrap", "12pm-1am", true},
		{"Ten to ten", "10am-10pm", true},
		{"Uppercase accepted", "6AM-10PM", true},
		{"Mixed case accepted", "6Am-10pM", true},
		{"Hour 13", "13pm-1am", false},
		{"Hour 0", "0am-9pm", false},
		{"Missing suffix on start", "6-9pm", false},
		{"Missing dash", "6am9pm", false},
		{"Trailing garbage", "6am-9pm!", false},
		{"Empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidOpenHours(tt.input))
		})
	}
}

func TestIsValidPerDayCost(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"Simple", "10", true},
		{"Large", "1500", true},
		{"Single digit", "5", true},
		{"Zero", "0", false},
		{"Leading zero", "01", false},
		{"Negative", "-5", false},
		{"Trailing letter", "5a", false},
		{"Decimal", "10.5", false},
		{"Empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidPerDayCost(tt.input))
		})
	}
}

func TestIsValidCity(t *testing.T) {
	for _, city := range Cities {
		assert.True(t, IsValidCity(city), city)
	}
	assert.False(t, IsValidCity("Lisbon"))
	assert.False(t, IsValidCity("porto"))
	assert.False(t, IsValidCity(""))
}

func TestIsWeekday(t *testing.T) {
	for _, day := range Weekdays {
		assert.True(t, IsWeekday(day), day)
	}
	assert.False(t, IsWeekday("Funday"))
	assert.False(t, IsWeekday("monday"))
}
