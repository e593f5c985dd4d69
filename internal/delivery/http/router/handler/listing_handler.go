package handler

import (
	"log/slog"
	"net/http"
	"time"

	deliverycontext "github.com/kendymann/leftover-love/internal/delivery/context"
	"github.com/kendymann/leftover-love/internal/delivery/http/response"
	"github.com/kendymann/leftover-love/internal/domain/entity"
	"github.com/kendymann/leftover-love/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ListingHandler holds dependencies for food listing and pickup handlers.
type ListingHandler struct {
	listingUc usecase.ListingUsecase
	pickupUc  usecase.PickupUsecase
	logger    *slog.Logger
}

// NewListingHandler is the constructor for ListingHandler, injected by Fx.
func NewListingHandler(listingUc usecase.ListingUsecase, pickupUc usecase.PickupUsecase, logger *slog.Logger) *ListingHandler {
	return &ListingHandler{
		listingUc: listingUc,
		pickupUc:  pickupUc,
		logger:    logger,
	}
}

type createListingRequest struct {
	Name        string    `json:"name" validate:"required,max=150"`
	Quantity    float64   `json:"quantity" validate:"required,gt=0"`
	Unit        string    `json:"unit" validate:"required,max=30"`
	ExpiryDate  time.Time `json:"expiry_date" validate:"required"`
	Description string    `json:"description"`
}

type updateListingRequest struct {
	Name        *string    `json:"name" validate:"omitempty,max=150"`
	Quantity    *float64   `json:"quantity" validate:"omitempty,gt=0"`
	Unit        *string    `json:"unit" validate:"omitempty,max=30"`
	ExpiryDate  *time.Time `json:"expiry_date"`
	Description *string    `json:"description"`
}

type schedulePickupRequest struct {
	PickupTime time.Time `json:"pickup_time" validate:"required"`
}

type updatePickupRequest struct {
	Status *string              `json:"status" validate:"omitempty,oneof=scheduled completed cancelled"`
	Rating *float64             `json:"rating" validate:"omitempty,gte=1,lte=5"`
	Impact *pickupImpactRequest `json:"impact"`
}

type pickupImpactRequest struct {
	PeopleHelped int     `json:"people_helped" validate:"gte=0"`
	FoodSavedKg  float64 `json:"food_saved_kg" validate:"gte=0"`
}

// ListAvailable returns all available listings. Public, no auth required.
func (h *ListingHandler) ListAvailable(c echo.Context) error {
	items, err := h.listingUc.ListAvailable(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toListingResponseList(items), "Listings retrieved successfully")
}

// Create publishes a new listing for the caller's restaurant profile.
func (h *ListingHandler) Create(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Missing authenticated user")
	}

	var req createListingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid listing input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	item, err := h.listingUc.Create(c.Request().Context(), userID, &usecase.CreateListingInput{
		Name:        req.Name,
		Quantity:    req.Quantity,
		Unit:        req.Unit,
		ExpiryDate:  req.ExpiryDate,
		Description: req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toListingResponse(item), "Listing created successfully")
}

// Update applies a partial patch to a listing the caller owns.
func (h *ListingHandler) Update(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Missing authenticated user")
	}

	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid listing id")
	}

	var req updateListingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid listing input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	item, err := h.listingUc.Update(c.Request().Context(), userID, listingID, &usecase.UpdateListingInput{
		Name:        req.Name,
		Quantity:    req.Quantity,
		Unit:        req.Unit,
		ExpiryDate:  req.ExpiryDate,
		Description: req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toListingResponse(item), "Listing updated successfully")
}

// Delete removes a listing the caller owns.
func (h *ListingHandler) Delete(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Missing authenticated user")
	}

	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid listing id")
	}

	if err := h.listingUc.Delete(c.Request().Context(), userID, listingID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Listing deleted successfully")
}

// SchedulePickup reserves a listing for the caller's charity.
func (h *ListingHandler) SchedulePickup(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Missing authenticated user")
	}

	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid listing id")
	}

	var req schedulePickupRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid pickup input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	pickup, err := h.pickupUc.Schedule(c.Request().Context(), userID, listingID, &usecase.SchedulePickupInput{
		PickupTime: req.PickupTime,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toPickupResponse(pickup), "Pickup scheduled successfully")
}

// UpdatePickup advances a pickup's status and/or records its outcome.
func (h *ListingHandler) UpdatePickup(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Missing authenticated user")
	}

	pickupID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid pickup id")
	}

	var req updatePickupRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid pickup input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	input := &usecase.UpdatePickupInput{
		Rating: req.Rating,
	}
	if req.Status != nil {
		status := entity.PickupStatus(*req.Status)
		input.Status = &status
	}
	if req.Impact != nil {
		input.Impact = &entity.PickupImpact{
			PeopleHelped: req.Impact.PeopleHelped,
			FoodSavedKg:  req.Impact.FoodSavedKg,
		}
	}

	pickup, err := h.pickupUc.Update(c.Request().Context(), userID, pickupID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPickupResponse(pickup), "Pickup updated successfully")
}
