// Package v1 exposes the roulette orchestrator over REST and a WebSocket
// event stream for the view layer.
package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/genroll/roulette-api/internal/entities/catalog"
	"github.com/genroll/roulette-api/internal/entities/session"
	"github.com/genroll/roulette-api/internal/errors"
	"github.com/genroll/roulette-api/internal/orchestrators/gacha"
)

// Config holds the handler dependencies
type Config struct {
	Service gacha.Service
	Hub     *Hub
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Service == nil {
		vb.RequiredField("Service")
	}
	if c.Hub == nil {
		vb.RequiredField("Hub")
	}

	return vb.Build()
}

// Handler serves the view-facing API
type Handler struct {
	service gacha.Service
	hub     *Hub
}

// NewHandler creates a new API handler
func NewHandler(cfg *Config) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Handler{
		service: cfg.Service,
		hub:     cfg.Hub,
	}, nil
}

// RegisterRoutes mounts every endpoint under the given group
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/catalog", h.getCatalog)
	rg.POST("/catalog/refresh", h.refreshCatalog)

	rg.GET("/ws/roulette/:stage", h.streamRoll)

	p := rg.Group("/profiles/:profileId")
	p.GET("/state", h.getState)
	p.PUT("/settings", h.updateSettings)
	p.PUT("/ui", h.updateUI)
	p.PUT("/filters/characters", h.updateCharacterFilters)
	p.POST("/filters/characters/reset", h.resetCharacterFilters)
	p.PUT("/filters/bosses", h.updateBossFilters)
	p.POST("/filters/bosses/reset", h.resetBossFilters)
	p.PUT("/filters/history", h.updateHistoryFilters)
	p.GET("/pool/:stage", h.getPool)
	p.POST("/pool/:stage/toggle", h.toggleSelection)
	p.POST("/pool/:stage/bulk", h.bulkSelect)
	p.GET("/roll/:stage", h.getRollState)
	p.POST("/roll/:stage/spin", h.spin)
	p.POST("/roll/:stage/clear", h.clearRoll)
	p.GET("/history", h.listHistory)
	p.DELETE("/history", h.deleteHistory)
	p.DELETE("/history/:entryId", h.deleteHistoryEntry)
}

func (h *Handler) getCatalog(c *gin.Context) {
	out, err := h.service.GetCatalog(c.Request.Context(), &gacha.GetCatalogInput{})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  out.Status,
		"error":   out.Error,
		"catalog": out.Catalog,
	})
}

func (h *Handler) refreshCatalog(c *gin.Context) {
	out, err := h.service.RefreshCatalog(c.Request.Context(), &gacha.RefreshCatalogInput{})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": out.Status,
		"error":  out.Error,
	})
}

func (h *Handler) getState(c *gin.Context) {
	out, err := h.service.GetState(c.Request.Context(), &gacha.GetStateInput{
		ProfileID: c.Param("profileId"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"state":         out.State,
		"catalogStatus": out.CatalogStatus,
	})
}

func (h *Handler) updateSettings(c *gin.Context) {
	var settings session.Settings
	if err := c.ShouldBindJSON(&settings); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	out, err := h.service.UpdateSettings(c.Request.Context(), &gacha.UpdateSettingsInput{
		ProfileID: c.Param("profileId"),
		Settings:  settings,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, out.Settings)
}

func (h *Handler) updateUI(c *gin.Context) {
	var ui session.UIState
	if err := c.ShouldBindJSON(&ui); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	out, err := h.service.UpdateUI(c.Request.Context(), &gacha.UpdateUIInput{
		ProfileID: c.Param("profileId"),
		UI:        ui,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, out.UI)
}

func (h *Handler) updateCharacterFilters(c *gin.Context) {
	var filters session.CharacterFilters
	if err := c.ShouldBindJSON(&filters); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	out, err := h.service.UpdateCharacterFilters(c.Request.Context(), &gacha.UpdateCharacterFiltersInput{
		ProfileID: c.Param("profileId"),
		Filters:   filters,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, out.Filters)
}

func (h *Handler) updateBossFilters(c *gin.Context) {
	var filters session.BossFilters
	if err := c.ShouldBindJSON(&filters); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	out, err := h.service.UpdateBossFilters(c.Request.Context(), &gacha.UpdateBossFiltersInput{
		ProfileID: c.Param("profileId"),
		Filters:   filters,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, out.Filters)
}

func (h *Handler) resetCharacterFilters(c *gin.Context) {
	out, err := h.service.ResetCharacterFilters(c.Request.Context(), &gacha.ResetCharacterFiltersInput{
		ProfileID: c.Param("profileId"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, out.Filters)
}

func (h *Handler) resetBossFilters(c *gin.Context) {
	out, err := h.service.ResetBossFilters(c.Request.Context(), &gacha.ResetBossFiltersInput{
		ProfileID: c.Param("profileId"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, out.Filters)
}

func (h *Handler) updateHistoryFilters(c *gin.Context) {
	var filters session.HistoryFilters
	if err := c.ShouldBindJSON(&filters); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	out, err := h.service.UpdateHistoryFilters(c.Request.Context(), &gacha.UpdateHistoryFiltersInput{
		ProfileID: c.Param("profileId"),
		Filters:   filters,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, out.Filters)
}

func (h *Handler) getPool(c *gin.Context) {
	out, err := h.service.GetPool(c.Request.Context(), &gacha.GetPoolInput{
		ProfileID: c.Param("profileId"),
		Stage:     catalog.Stage(c.Param("stage")),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"visible":        out.Visible,
		"selectedIds":    out.SelectedIDs,
		"effectiveCount": out.EffectiveCount,
		"selectedCount":  out.SelectedCount,
		"totalCount":     out.TotalCount,
	})
}

type toggleRequest struct {
	ItemID string `json:"itemId"`
}

func (h *Handler) toggleSelection(c *gin.Context) {
	var req toggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	out, err := h.service.ToggleSelection(c.Request.Context(), &gacha.ToggleSelectionInput{
		ProfileID: c.Param("profileId"),
		Stage:     catalog.Stage(c.Param("stage")),
		ItemID:    req.ItemID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"selected":       out.Selected,
		"effectiveCount": out.EffectiveCount,
	})
}

type bulkRequest struct {
	Action string `json:"action"`
}

func (h *Handler) bulkSelect(c *gin.Context) {
	var req bulkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	out, err := h.service.BulkSelect(c.Request.Context(), &gacha.BulkSelectInput{
		ProfileID: c.Param("profileId"),
		Stage:     catalog.Stage(c.Param("stage")),
		Action:    req.Action,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"selectedCount":  out.SelectedCount,
		"effectiveCount": out.EffectiveCount,
	})
}

func (h *Handler) getRollState(c *gin.Context) {
	out, err := h.service.GetRollState(c.Request.Context(), &gacha.GetRollStateInput{
		ProfileID: c.Param("profileId"),
		Stage:     catalog.Stage(c.Param("stage")),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"state":    out.State,
		"offset":   out.Offset,
		"display":  out.Display,
		"selected": out.Selected,
		"splash":   out.Splash,
	})
}

func (h *Handler) spin(c *gin.Context) {
	out, err := h.service.Spin(c.Request.Context(), &gacha.SpinInput{
		ProfileID: c.Param("profileId"),
		Stage:     catalog.Stage(c.Param("stage")),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"started":    out.Started,
		"durationMs": out.Duration.Milliseconds(),
		"display":    out.Display,
	})
}

func (h *Handler) clearRoll(c *gin.Context) {
	_, err := h.service.ClearRoll(c.Request.Context(), &gacha.ClearRollInput{
		ProfileID: c.Param("profileId"),
		Stage:     catalog.Stage(c.Param("stage")),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) listHistory(c *gin.Context) {
	out, err := h.service.ListHistory(c.Request.Context(), &gacha.ListHistoryInput{
		ProfileID: c.Param("profileId"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"entries":       out.Entries,
		"filteredTotal": out.FilteredTotal,
		"total":         out.Total,
	})
}

// deleteHistory clears the ledger; scope=filtered removes only what the
// profile's history filters match.
func (h *Handler) deleteHistory(c *gin.Context) {
	profileID := c.Param("profileId")

	switch c.Query("scope") {
	case "filtered":
		out, err := h.service.DeleteFilteredHistory(c.Request.Context(), &gacha.DeleteFilteredHistoryInput{
			ProfileID: profileID,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"removed": out.Removed, "total": out.Total})
	case "", "all":
		if _, err := h.service.ClearHistory(c.Request.Context(), &gacha.ClearHistoryInput{
			ProfileID: profileID,
		}); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "scope must be filtered or all"})
	}
}

func (h *Handler) deleteHistoryEntry(c *gin.Context) {
	out, err := h.service.DeleteHistoryEntry(c.Request.Context(), &gacha.DeleteHistoryEntryInput{
		ProfileID: c.Param("profileId"),
		EntryID:   c.Param("entryId"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"total": out.Total})
}

func respondError(c *gin.Context, err error) {
	c.JSON(errors.GetCode(err).HTTPStatus(), gin.H{"error": errors.GetMessage(err)})
}
