package handler

import (
	"log/slog"
	"net/http"

	"tattooer/internal/delivery/http/response"
	"tattooer/internal/domain/entity"
	"tattooer/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AccountHandler exposes the local multi-account credential cache. Write
// operations on the cache never fail outward: storage trouble degrades to a
// no-op, so every mutation below simply reports success.
type AccountHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		uc:     uc,
		logger: logger,
	}
}

// saveAccountRequest is the JSON payload for caching an account.
type saveAccountRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required"`
	AccountType string `json:"accountType"`
	FullName    string `json:"fullName"`
	Photo       string `json:"photo"`
}

// ListAccounts handles GET /accounts.
func (h *AccountHandler) ListAccounts(c echo.Context) error {
	accounts := h.uc.GetAllAccounts(c.Request().Context())

	return response.Success(c, http.StatusOK, accounts, "Accounts retrieved successfully")
}

// SaveAccount handles POST /accounts.
func (h *AccountHandler) SaveAccount(c echo.Context) error {
	var input *saveAccountRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid account input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	accountType := entity.AccountType(input.AccountType)
	if accountType != entity.AccountTypeClient {
		accountType = entity.AccountTypeArtist
	}

	h.uc.SaveAccount(c.Request().Context(), &usecase.SaveAccountInput{
		Email:       input.Email,
		Password:    input.Password,
		AccountType: accountType,
		FullName:    input.FullName,
		Photo:       input.Photo,
	})

	return response.Success(c, http.StatusOK, map[string]string{
		"id": entity.AccountID(input.Email),
	}, "Account saved successfully")
}

// GetAccount handles GET /accounts/:email.
func (h *AccountHandler) GetAccount(c echo.Context) error {
	account := h.uc.GetAccount(c.Request().Context(), c.Param("email"))
	if account == nil {
		return response.NotFound(c, "ACCOUNT_NOT_FOUND", "No cached account for this email")
	}

	return response.Success(c, http.StatusOK, account, "Account retrieved successfully")
}

// TouchAccount handles PUT /accounts/:email/touch.
func (h *AccountHandler) TouchAccount(c echo.Context) error {
	h.uc.UpdateAccountLastUsed(c.Request().Context(), c.Param("email"))

	return response.Success(c, http.StatusOK, nil, "Account recency updated")
}

// RemoveAccount handles DELETE /accounts/:email.
func (h *AccountHandler) RemoveAccount(c echo.Context) error {
	h.uc.RemoveAccount(c.Request().Context(), c.Param("email"))

	return response.Success(c, http.StatusOK, nil, "Account removed")
}

// ClearAccounts handles DELETE /accounts.
func (h *AccountHandler) ClearAccounts(c echo.Context) error {
	h.uc.ClearAllAccounts(c.Request().Context())

	return response.Success(c, http.StatusOK, nil, "Accounts cleared")
}

// CurrentAccount handles GET /accounts/current.
func (h *AccountHandler) CurrentAccount(c echo.Context) error {
	id := h.uc.CurrentAccountID(c.Request().Context())

	return response.Success(c, http.StatusOK, map[string]string{"id": id}, "Current account retrieved")
}
