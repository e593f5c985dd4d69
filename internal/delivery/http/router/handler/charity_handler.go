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

// CharityHandler holds dependencies for charity-facing handlers.
type CharityHandler struct {
	profileUc usecase.ProfileUsecase
	pickupUc  usecase.PickupUsecase
	statsUc   usecase.StatsUsecase
	logger    *slog.Logger
}

// NewCharityHandler is the constructor for CharityHandler, injected by Fx.
func NewCharityHandler(
	profileUc usecase.ProfileUsecase,
	pickupUc usecase.PickupUsecase,
	statsUc usecase.StatsUsecase,
	logger *slog.Logger,
) *CharityHandler {
	return &CharityHandler{
		profileUc: profileUc,
		pickupUc:  pickupUc,
		statsUc:   statsUc,
		logger:    logger,
	}
}

// CreateProfile publishes the caller's charity profile.
func (h *CharityHandler) CreateProfile(c echo.Context) error {
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

	profile, err := h.profileUc.CreateCharityProfile(c.Request().Context(), userID, &usecase.CreateProfileInput{
		Name:        req.Name,
		Address:     req.Address,
		Phone:       req.Phone,
		Email:       req.Email,
		Description: req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toCharityProfileResponse(profile), "Profile created successfully")
}

// GetProfile returns the caller's charity profile.
func (h *CharityHandler) GetProfile(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Missing authenticated user")
	}

	profile, err := h.profileUc.GetCharityProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCharityProfileResponse(profile), "Profile retrieved successfully")
}

// UpdateProfile applies a partial patch to the caller's charity profile.
func (h *CharityHandler) UpdateProfile(c echo.Context) error {
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

	profile, err := h.profileUc.UpdateCharityProfile(c.Request().Context(), userID, &usecase.UpdateProfileInput{
		Name:        req.Name,
		Address:     req.Address,
		Phone:       req.Phone,
		Email:       req.Email,
		Description: req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCharityProfileResponse(profile), "Profile updated successfully")
}

// GetStats returns the caller's received-impact statistics.
func (h *CharityHandler) GetStats(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Missing authenticated user")
	}

	stats, err := h.statsUc.ForCharity(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats, "Statistics retrieved successfully")
}

// GetPickups returns pickups requested by the caller's charity.
func (h *CharityHandler) GetPickups(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Missing authenticated user")
	}

	pickups, err := h.pickupUc.ListForCharity(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPickupResponseList(pickups), "Pickups retrieved successfully")
}
