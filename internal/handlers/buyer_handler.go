package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/buyer-leads/internal/domain/buyer"
	"github.com/BruksfildServices01/buyer-leads/internal/dto"
	"github.com/BruksfildServices01/buyer-leads/internal/httperr"
	"github.com/BruksfildServices01/buyer-leads/internal/httpresp"
	"github.com/BruksfildServices01/buyer-leads/internal/middleware"
	ucBuyer "github.com/BruksfildServices01/buyer-leads/internal/usecase/buyer"
)

// ======================================================
// HANDLER
// ======================================================

type BuyerHandler struct {
	create *ucBuyer.CreateBuyer
	get    *ucBuyer.GetBuyer
	list   *ucBuyer.ListBuyers
	update *ucBuyer.UpdateBuyer
	remove *ucBuyer.DeleteBuyer
}

func NewBuyerHandler(
	create *ucBuyer.CreateBuyer,
	get *ucBuyer.GetBuyer,
	list *ucBuyer.ListBuyers,
	update *ucBuyer.UpdateBuyer,
	remove *ucBuyer.DeleteBuyer,
) *BuyerHandler {
	return &BuyerHandler{
		create: create,
		get:    get,
		list:   list,
		update: update,
		remove: remove,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type UpdateStatusRequest struct {
	Status domain.Status `json:"status" binding:"required"`
}

func parseBuyerID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid buyer id.")
		return uuid.Nil, false
	}
	return id, true
}

// ======================================================
// CREATE
// ======================================================

func (h *BuyerHandler) Create(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var form domain.Form
	if err := c.ShouldBindJSON(&form); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	b, err := h.create.Execute(c.Request.Context(), ucBuyer.CreateBuyerInput{
		OwnerID: userID,
		Form:    form,
	})
	if err != nil {
		writeError(c, err, "failed_to_create_buyer")
		return
	}

	httpresp.Created(c, dto.NewBuyerDTO(b))
}

// ======================================================
// LIST
// ======================================================

func (h *BuyerHandler) List(c *gin.Context) {
	filters := domain.ParseFilters(c.Request.URL.Query())

	out, err := h.list.Execute(c.Request.Context(), filters)
	if err != nil {
		writeError(c, err, "failed_to_list_buyers")
		return
	}

	httpresp.Page(c, dto.NewBuyerDTOs(out.Buyers), out.Total, out.PageCount, out.CurrentPage)
}

// ======================================================
// GET
// ======================================================

func (h *BuyerHandler) Get(c *gin.Context) {
	id, ok := parseBuyerID(c)
	if !ok {
		return
	}

	b, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		writeError(c, err, "failed_to_load_buyer")
		return
	}

	detail, bad := dto.NewBuyerDetailDTO(b)
	if bad > 0 {
		middleware.Logger(c).Warn("undecodable history entries",
			zap.String("buyer_id", id.String()),
			zap.Int("count", bad),
		)
	}

	httpresp.OK(c, detail)
}

// ======================================================
// UPDATE
// ======================================================

func (h *BuyerHandler) Update(c *gin.Context) {
	id, ok := parseBuyerID(c)
	if !ok {
		return
	}

	var patch domain.Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	h.applyPatch(c, id, patch)
}

// UpdateStatus is the status quick action.
func (h *BuyerHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseBuyerID(c)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Status is required.")
		return
	}

	h.applyPatch(c, id, domain.Patch{Status: &req.Status})
}

func (h *BuyerHandler) applyPatch(c *gin.Context, id uuid.UUID, patch domain.Patch) {
	b, err := h.update.Execute(c.Request.Context(), ucBuyer.UpdateBuyerInput{
		ID:           id,
		ActingUserID: middleware.GetUserID(c),
		Patch:        patch,
	})
	if err != nil {
		writeError(c, err, "failed_to_update_buyer")
		return
	}

	httpresp.OK(c, dto.NewBuyerDTO(b))
}

// ======================================================
// DELETE
// ======================================================

func (h *BuyerHandler) Delete(c *gin.Context) {
	id, ok := parseBuyerID(c)
	if !ok {
		return
	}

	if err := h.remove.Execute(c.Request.Context(), id, middleware.GetUserID(c)); err != nil {
		writeError(c, err, "failed_to_delete_buyer")
		return
	}

	httpresp.OK(c, gin.H{"success": true})
}
