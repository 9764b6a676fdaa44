package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"vradmin/internal/delivery/api/response"
	"vradmin/internal/domain/entity"
	domainerrors "vradmin/internal/domain/errors"
	"vradmin/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PurchaseHandlerParams holds dependencies for PurchaseHandler, injected by Fx.
type PurchaseHandlerParams struct {
	fx.In

	PurchaseUC usecase.PurchaseUsecase
	Logger     *slog.Logger
}

// PurchaseHandler serves the purchase table and purchase statuses
type PurchaseHandler struct {
	purchaseUC usecase.PurchaseUsecase
	logger     *slog.Logger
}

// NewPurchaseHandler is the constructor for PurchaseHandler
func NewPurchaseHandler(params PurchaseHandlerParams) *PurchaseHandler {
	return &PurchaseHandler{
		purchaseUC: params.PurchaseUC,
		logger:     params.Logger,
	}
}

// ListPurchases handles GET /purchases
func (h *PurchaseHandler) ListPurchases(c echo.Context) error {
	page, err := queryInt(c, "page", 0)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	limit, err := queryInt(c, "limit", 0)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	missingShipping, err := queryBool(c, "missingShipping")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	rawIDs := queryList(c, "purchaseIds")
	purchaseIDs := make([]int64, 0, len(rawIDs))
	for _, raw := range rawIDs {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("purchaseIds must be integers"))
		}
		purchaseIDs = append(purchaseIDs, id)
	}

	result, err := h.purchaseUC.ListPurchases(c.Request().Context(), entity.PurchaseListFilter{
		Page:            page,
		Limit:           limit,
		MissingShipping: missingShipping,
		PurchaseIDs:     purchaseIDs,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// GetPurchaseStatus handles GET /purchases/:id/status
func (h *PurchaseHandler) GetPurchaseStatus(c echo.Context) error {
	purchaseID, err := purchaseIDParam(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	refresh, err := queryBool(c, "refresh")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	view, err := h.purchaseUC.GetPurchaseStatus(c.Request().Context(), purchaseID, refresh)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// GetStatusesByDateRange handles GET /purchases/all-info-by-date-range.
// The result is keyed by purchase id like the backend's bulk response.
func (h *PurchaseHandler) GetStatusesByDateRange(c echo.Context) error {
	start, end, err := dateRange(c, "startDate", "endDate")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	snapshots, err := h.purchaseUC.GetStatusesByDateRange(c.Request().Context(), start, end)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	byID := make(map[string]entity.ClassifiedSnapshot, len(snapshots))
	for _, snapshot := range snapshots {
		byID[strconv.FormatInt(snapshot.PurchaseID, 10)] = snapshot
	}

	return response.Success(c, http.StatusOK, byID)
}

// GetActivationQR handles GET /purchases/:id/activation-qr
func (h *PurchaseHandler) GetActivationQR(c echo.Context) error {
	purchaseID, err := purchaseIDParam(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.purchaseUC.GetActivationQR(c.Request().Context(), purchaseID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set("Cache-Control", "no-store")

	return c.Blob(http.StatusOK, "image/png", png)
}

// AddAdditionalInfo handles POST /purchases/additional-info/:id
func (h *PurchaseHandler) AddAdditionalInfo(c echo.Context) error {
	purchaseID, err := purchaseIDParam(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req usecase.AddAdditionalInfoInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid additional info input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.purchaseUC.AddAdditionalInfo(c.Request().Context(), purchaseID, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusCreated)
}

// UpdatePurchase handles PATCH /purchases/:id
func (h *PurchaseHandler) UpdatePurchase(c echo.Context) error {
	purchaseID, err := purchaseIDParam(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req usecase.UpdatePurchaseInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid purchase input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	purchase, err := h.purchaseUC.UpdatePurchase(c.Request().Context(), purchaseID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, purchase)
}
