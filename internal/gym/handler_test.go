package gym

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockService is a mock implementation of Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Create(ctx context.Context, ownerID int, req ListingRequest) (*Listing, error) {
	args := m.Called(ctx, ownerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Listing), args.Error(1)
}

func (m *MockService) ListByOwner(ctx context.Context, ownerID int) ([]Listing, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Listing), args.Error(1)
}

func (m *MockService) Update(ctx context.Context, ownerID, listingID int, req ListingRequest) (*Listing, error) {
	args := m.Called(ctx, ownerID, listingID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Listing), args.Error(1)
}

func (m *MockService) SearchByCity(ctx context.Context, city string) ([]Listing, error) {
	args := m.Called(ctx, city)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Listing), args.Error(1)
}

func asOwner(ownerID int, handlerFunc gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", ownerID)
		handlerFunc(c)
	}
}

func jsonRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		data, _ := json.Marshal(body)
		buf.Write(data)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func validListingRequest() ListingRequest {
	return ListingRequest{
		GymName:     "Fit7",
		City:        "Porto",
		MapLocation: "https://maps.google.com/abc",
		OpenHours:   "6am-10pm",
		PerDayCost:  "100",
		Holidays:    []string{"Sunday"},
	}
}

func TestHandler_CreateListing(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Created", func(t *testing.T) {
		mockService := new(MockService)
		mockService.On("Create", mock.Anything, 42, mock.Anything).Return(&Listing{
			ID:       1,
			OwnerID:  42,
			GymName:  "Fit7",
			City:     "Porto",
			Holidays: HolidayList{"Sunday"},
		}, nil)
		handler := NewHandler(mockService)

		router := gin.New()
		router.POST("/owner/gyms", asOwner(42, handler.CreateListing))

		w := jsonRequest(router, "POST", "/owner/gyms", validListingRequest())

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"gym_name":"Fit7"`)
		mockService.AssertExpectations(t)
	})

	t.Run("Validation failure surfaces the message", func(t *testing.T) {
		mockService := new(MockService)
		mockService.On("Create", mock.Anything, 42, mock.Anything).Return(nil, ErrInvalidGymName)
		handler := NewHandler(mockService)

		router := gin.New()
		router.POST("/owner/gyms", asOwner(42, handler.CreateListing))

		req := validListingRequest()
		req.GymName = "7Fit"
		w := jsonRequest(router, "POST", "/owner/gyms", req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "gym name must start with a letter")
	})

	t.Run("No session", func(t *testing.T) {
		mockService := new(MockService)
		handler := NewHandler(mockService)

		router := gin.New()
		router.POST("/owner/gyms", handler.CreateListing)

		w := jsonRequest(router, "POST", "/owner/gyms", validListingRequest())

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		mockService.AssertNotCalled(t, "Create")
	})
}

func TestHandler_ListMyListings(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockService := new(MockService)
	mockService.On("ListByOwner", mock.Anything, 42).Return([]Listing{
		{ID: 1, OwnerID: 42, GymName: "Fit7", City: "Porto", Holidays: HolidayList{}},
		{ID: 2, OwnerID: 42, GymName: "Iron Hub", City: "Mumbai", Holidays: HolidayList{"Friday"}},
	}, nil)
	handler := NewHandler(mockService)

	router := gin.New()
	router.GET("/owner/gyms", asOwner(42, handler.ListMyListings))

	req := httptest.NewRequest("GET", "/owner/gyms", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var listings []Listing
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &listings))
	assert.Len(t, listings, 2)
	assert.Equal(t, HolidayList{"Friday"}, listings[1].Holidays)
}

func TestHandler_UpdateListing(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Updated", func(t *testing.T) {
		mockService := new(MockService)
		mockService.On("Update", mock.Anything, 42, 1, mock.Anything).Return(&Listing{
			ID: 1, OwnerID: 42, GymName: "Fit7", City: "Porto", PerDayCost: 120, Holidays: HolidayList{},
		}, nil)
		handler := NewHandler(mockService)

		router := gin.New()
		router.PUT("/owner/gyms/:gymID", asOwner(42, handler.UpdateListing))

		w := jsonRequest(router, "PUT", "/owner/gyms/1", validListingRequest())

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"per_day_cost":120`)
	})

	t.Run("Not found", func(t *testing.T) {
		mockService := new(MockService)
		mockService.On("Update", mock.Anything, 42, 99, mock.Anything).Return(nil, ErrListingNotFound)
		handler := NewHandler(mockService)

		router := gin.New()
		router.PUT("/owner/gyms/:gymID", asOwner(42, handler.UpdateListing))

		w := jsonRequest(router, "PUT", "/owner/gyms/99", validListingRequest())

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Someone else's listing", func(t *testing.T) {
		mockService := new(MockService)
		mockService.On("Update", mock.Anything, 42, 1, mock.Anything).Return(nil, ErrNotOwner)
		handler := NewHandler(mockService)

		router := gin.New()
		router.PUT("/owner/gyms/:gymID", asOwner(42, handler.UpdateListing))

		w := jsonRequest(router, "PUT", "/owner/gyms/1", validListingRequest())

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "You do not own this gym")
	})

	t.Run("Bad listing ID", func(t *testing.T) {
		mockService := new(MockService)
		handler := NewHandler(mockService)

		router := gin.New()
		router.PUT("/owner/gyms/:gymID", asOwner(42, handler.UpdateListing))

		w := jsonRequest(router, "PUT", "/owner/gyms/abc", validListingRequest())

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "Update")
	})
}

func TestHandler_SearchByCity(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Results for a supported city", func(t *testing.T) {
		mockService := new(MockService)
		mockService.On("SearchByCity", mock.Anything, "Porto").Return([]Listing{
			{ID: 1, GymName: "Fit7", City: "Porto", Holidays: HolidayList{}},
		}, nil)
		handler := NewHandler(mockService)

		router := gin.New()
		router.GET("/gyms/search", handler.SearchByCity)

		req := httptest.NewRequest("GET", "/gyms/search?city=Porto", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"city":"Porto"`)
	})

	t.Run("Unknown city", func(t *testing.T) {
		mockService := new(MockService)
		mockService.On("SearchByCity", mock.Anything, "Atlantis").Return(nil, ErrInvalidCity)
		handler := NewHandler(mockService)

		router := gin.New()
		router.GET("/gyms/search", handler.SearchByCity)

		req := httptest.NewRequest("GET", "/gyms/search?city=Atlantis", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Please select a valid city")
	})

	t.Run("Missing city parameter", func(t *testing.T) {
		mockService := new(MockService)
		handler := NewHandler(mockService)

		router := gin.New()
		router.GET("/gyms/search", handler.SearchByCity)

		req := httptest.NewRequest("GET", "/gyms/search", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "SearchByCity")
	})
}
