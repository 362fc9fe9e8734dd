package handler

import (
	"net/http"

	"invoice-dashboard-backend/internal/services/dashboard"
	"invoice-dashboard-backend/internal/services/invoices"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type InvoiceHandler struct {
	actions *invoices.Actions
	views   *dashboard.Service
}

func NewInvoiceHandler(a *invoices.Actions, views *dashboard.Service) *InvoiceHandler {
	return &InvoiceHandler{actions: a, views: views}
}

// ginPresenter is the production Presenter: invalidation hits the dashboard
// listing cache, navigation becomes a 303 redirect.
type ginPresenter struct {
	c     *gin.Context
	views *dashboard.Service
}

func (p *ginPresenter) Invalidate(viewKey string) {
	p.views.Invalidate(viewKey)
}

func (p *ginPresenter) Navigate(path string) {
	p.c.Redirect(http.StatusSeeOther, path)
}

func (h *InvoiceHandler) Create(c *gin.Context) {
	res := h.actions.Create(
		c.PostForm("customerId"),
		c.PostForm("amount"),
		c.PostForm("status"),
		&ginPresenter{c: c, views: h.views},
	)
	h.respond(c, res)
}

func (h *InvoiceHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid invoice ID"})
		return
	}

	res := h.actions.Update(
		id,
		c.PostForm("customerId"),
		c.PostForm("amount"),
		c.PostForm("status"),
		&ginPresenter{c: c, views: h.views},
	)
	h.respond(c, res)
}

func (h *InvoiceHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid invoice ID"})
		return
	}

	res := h.actions.Delete(id, &ginPresenter{c: c, views: h.views})
	if res.OK {
		c.JSON(http.StatusOK, gin.H{"message": "invoice deleted"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"message": res.Message})
}

// respond handles the non-redirect outcomes of create/update. On success the
// presenter has already written the redirect.
func (h *InvoiceHandler) respond(c *gin.Context, res invoices.ActionResult) {
	if res.OK {
		return
	}
	if len(res.Errors) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": res.Errors, "message": res.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"message": res.Message})
}
