package http

import (
	"net/http"

	"sacco-admin/internal/usecase/member"

	"github.com/labstack/echo/v4"
)

type MemberHandler struct{ uc *member.Usecase }

func NewMemberHandler(uc *member.Usecase) *MemberHandler { return &MemberHandler{uc: uc} }

type createMemberReq struct {
	Name     string `json:"name" validate:"notblank"`
	IDNumber string `json:"id_number" validate:"notblank"`
	Phone    string `json:"phone" validate:"notblank"`
	Email    string `json:"email"`
}

func (h *MemberHandler) CreateMember(c echo.Context) error {
	var req createMemberReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: member.MsgMissingFields, Details: ToFieldErrors(err)})
	}
	dto, err := h.uc.Register(c.Request().Context(), member.RegisterInput(req))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *MemberHandler) ListMembers(c echo.Context) error {
	rows, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}
