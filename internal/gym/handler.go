package gym

import (
	"net/http"
	"strconv"

	"gymperday/internal/api"
	"gymperday/internal/auth"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// @Summary      Register a gym listing
// @Description  Owner-only: create a new gym listing owned by the signed-in account
// @Tags         owner,gyms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body gym.ListingRequest true "Listing payload"
// @Success      201 {object} gym.Listing
// @Failure      400 {object} api.ErrorResponse
// @Failure      401 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /owner/gyms [post]
func (h *Handler) CreateListing(c *gin.Context) {
	ownerID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Not authenticated"})
		return
	}

	var req ListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	listing, err := h.service.Create(c.Request.Context(), ownerID, req)
	if err != nil {
		if IsValidationErr(err) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to save gym"})
		return
	}

	c.JSON(http.StatusCreated, listing)
}

// @Summary      List my gym listings
// @Description  Owner-only: all listings owned by the signed-in account
// @Tags         owner,gyms
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} gym.Listing
// @Failure      401 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /owner/gyms [get]
func (h *Handler) ListMyListings(c *gin.Context) {
	ownerID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Not authenticated"})
		return
	}

	listings, err := h.service.ListByOwner(c.Request.Context(), ownerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch gyms"})
		return
	}

	c.JSON(http.StatusOK, listings)
}

// @Summary      Update a gym listing
// @Description  Owner-only: full-field update of an owned listing
// @Tags         owner,gyms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        gymID path int true "Listing ID"
// @Param        request body gym.ListingRequest true "Listing payload"
// @Success      200 {object} gym.Listing
// @Failure      400 {object} api.ErrorResponse
// @Failure      401 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /owner/gyms/{gymID} [put]
func (h *Handler) UpdateListing(c *gin.Context) {
	ownerID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Not authenticated"})
		return
	}

	listingID, err := strconv.Atoi(c.Param("gymID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid gym ID"})
		return
	}

	var req ListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	listing, err := h.service.Update(c.Request.Context(), ownerID, listingID, req)
	if err != nil {
		switch {
		case IsValidationErr(err):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		case err == ErrListingNotFound:
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Gym not found"})
		case err == ErrNotOwner:
			c.JSON(http.StatusForbidden, api.ErrorResponse{Error: "You do not own this gym"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to update gym"})
		}
		return
	}

	c.JSON(http.StatusOK, listing)
}

// @Summary      Search gyms by city
// @Description  All listings in one of the supported cities
// @Tags         gyms
// @Produce      json
// @Security     BearerAuth
// @Param        city query string true "City name"
// @Success      200 {array} gym.Listing
// @Failure      400 {object} api.ErrorResponse
// @Failure      401 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /gyms/search [get]
func (h *Handler) SearchByCity(c *gin.Context) {
	city := c.Query("city")
	if city == "" {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "city parameter required"})
		return
	}

	listings, err := h.service.SearchByCity(c.Request.Context(), city)
	if err != nil {
		switch {
		case err == ErrInvalidCity:
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Please select a valid city"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch gyms"})
		}
		return
	}

	c.JSON(http.StatusOK, listings)
}
