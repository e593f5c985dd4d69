package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "github.com/kendymann/leftover-love/internal/delivery/context"
	"github.com/kendymann/leftover-love/internal/delivery/http/response"
	"github.com/kendymann/leftover-love/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RestaurantHandler holds dependencies for restaurant-facing handlers.
type RestaurantHandler struct {
	profileUc usecase.ProfileUsecase
	listingUc usecase.ListingUsecase
	pickupUc  usecase.PickupUsecase
	statsUc   usecase.StatsUsecase
	logger    *slog.Logger
}

// NewRestaurantHandler is the constructor for RestaurantHandler, injected by Fx.
func NewRestaurantHandler(
	profileUc usecase.ProfileUsecase,
	listingUc usecase.ListingUsecase,
	pickupUc usecase.PickupUsecase,
	statsUc usecase.StatsUsecase,
	logger *slog.Logger,
) *RestaurantHandler {
	return &RestaurantHandler{
		profileUc: profileUc,
		listingUc: listingUc,
		pickupUc:  pickupUc,
		statsUc:   statsUc,
		logger:    logger,
	}
}

type createProfileRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Address     string `json:"address" validate:"max=255"`
	Phone       string `json:"phone" validate:"max=30"`
	Email       string `json:"email" validate:"omitempty,email"`
	Description string `json:"description"`
}

type updateProfileRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=100"`
	Address     *string `json:"address" validate:"omitempty,max=255"`
	Phone       *string `json:"phone" validate:"omitempty,max=30"`
	Email       *string `json:"email" validate:"omitempty,email"`
	Description *string `json:"description"`
}

// CreateProfile publishes the caller's restaurant profile.
func (h *RestaurantHandler) CreateProfile(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Missing authenticated user")
	}

	var req createProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	profile, err := h.profileUc.CreateRestaurantProfile(c.Request().Context(), userID, &usecase.CreateProfileInput{
		Name:        req.Name,
		Address:     req.Address,
		Phone:       req.Phone,
		Email:       req.Email,
		Description: req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toProfileResponse(profile), "Profile created successfully")
}

// GetProfile returns the caller's restaurant profile.
func (h *RestaurantHandler) GetProfile(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Missing authenticated user")
	}

	profile, err := h.profileUc.GetRestaurantProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProfileResponse(profile), "Profile retrieved successfully")
}

// UpdateProfile applies a partial patch to the caller's restaurant profile.
func (h *RestaurantHandler) UpdateProfile(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Missing authenticated user")
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	profile, err := h.profileUc.UpdateRestaurantProfile(c.Request().Context(), userID, &usecase.UpdateProfileInput{
		Name:        req.Name,
		Address:     req.Address,
		Phone:       req.Phone,
		Email:       req.Email,
		Description: req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProfileResponse(profile), "Profile updated successfully")
}

// GetStats returns the caller's contribution statistics.
func (h *RestaurantHandler) GetStats(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Missing authenticated user")
	}

	stats, err := h.statsUc.ForRestaurant(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats, "Statistics retrieved successfully")
}

// GetListings returns the caller's own food listings.
func (h *RestaurantHandler) GetListings(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Missing authenticated user")
	}

	items, err := h.listingUc.ListMine(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toListingResponseList(items), "Listings retrieved successfully")
}

// GetPickups returns pickups against the caller's listings.
func (h *RestaurantHandler) GetPickups(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Missing authenticated user")
	}

	pickups, err := h.pickupUc.ListForRestaurant(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPickupResponseList(pickups), "Pickups retrieved successfully")
}
