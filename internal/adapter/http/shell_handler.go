package http

import (
	"errors"
	"log/slog"
	"net/http"

	"sacco-admin/internal/shell"
	"sacco-admin/internal/usecase/loan"
	"sacco-admin/internal/usecase/member"

	"github.com/labstack/echo/v4"
)

// page is what the layout template renders.
type page struct {
	Sections []shell.Section
	Current  shell.Section
	View     shell.View
	NotFound string
}

type ShellHandler struct {
	sh  *shell.Shell
	log *slog.Logger
}

func NewShellHandler(sh *shell.Shell, log *slog.Logger) *ShellHandler {
	if log == nil {
		log = slog.Default()
	}
	return &ShellHandler{sh: sh, log: log}
}

func (h *ShellHandler) Index(c echo.Context) error {
	return c.Redirect(http.StatusFound, "/sections/"+string(shell.Dashboard))
}

func (h *ShellHandler) Section(c echo.Context) error {
	name := c.Param("name")
	v, err := h.sh.Select(c.Request().Context(), name, shell.Options{
		Tab:     c.QueryParam("tab"),
		Refresh: c.QueryParam("refresh") == "1",
	})
	if errors.Is(err, shell.ErrUnknownSection) {
		return h.render(c, http.StatusNotFound, page{
			Sections: shell.Sections,
			Current:  h.sh.Current(),
			NotFound: "Unknown section: " + name,
		})
	}
	return h.renderView(c, v, err)
}

func (h *ShellHandler) SubmitMember(c echo.Context) error {
	var in member.RegisterInput
	if err := c.Bind(&in); err != nil {
		return c.String(http.StatusBadRequest, "invalid form")
	}
	v, err := h.sh.SubmitMember(c.Request().Context(), in)
	return h.renderView(c, v, err)
}

func (h *ShellHandler) SubmitLoan(c echo.Context) error {
	var in loan.ApplyInput
	if err := c.Bind(&in); err != nil {
		return c.String(http.StatusBadRequest, "invalid form")
	}
	v, err := h.sh.SubmitLoan(c.Request().Context(), in)
	return h.renderView(c, v, err)
}

// renderView writes the view; a failed operation still renders the page
// with its flash, only the status code changes.
func (h *ShellHandler) renderView(c echo.Context, v shell.View, err error) error {
	if err != nil && statusFor(err) >= http.StatusInternalServerError {
		h.log.Error("shell operation failed", "section", v.Section, "error", err)
	}
	return h.render(c, statusFor(err), page{Sections: shell.Sections, Current: v.Section, View: v})
}

func (h *ShellHandler) render(c echo.Context, code int, p page) error {
	return c.Render(code, pageTemplate, p)
}
