package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/indiabills/console/internal/localstore"
	"github.com/indiabills/console/internal/utils"
)

// PrefsHandler reads and writes the persisted UI preference keys the
// browser client kept in localStorage.
type PrefsHandler struct {
	local *localstore.Store
}

func NewPrefsHandler(local *localstore.Store) *PrefsHandler {
	return &PrefsHandler{local: local}
}

// allowed guards the key space so the endpoint cannot touch the
// session or saga records.
var allowed = map[string]bool{
	localstore.KeyTitle:             true,
	localstore.KeyAddressTypes:      true,
	localstore.KeyAnimationsEnabled: true,
	localstore.KeyInvoiceCount:      true,
}

// Get returns one preference value.
func (h *PrefsHandler) Get(c *gin.Context) {
	key := c.Param("key")
	if !allowed[key] {
		utils.Error(c, 404, "NOT_FOUND", "Unknown preference key")
		return
	}

	value, ok, err := h.local.Get(key)
	if err != nil {
		utils.Error(c, 500, "STORE_ERROR", "Failed to read preference")
		return
	}
	if !ok {
		utils.Error(c, 404, "NOT_FOUND", "Preference not set")
		return
	}
	utils.Success(c, 200, "OK", gin.H{"key": key, "value": value})
}

// Put sets one preference value.
func (h *PrefsHandler) Put(c *gin.Context) {
	key := c.Param("key")
	if !allowed[key] {
		utils.Error(c, 404, "NOT_FOUND", "Unknown preference key")
		return
	}

	var req struct {
		Value string `json:"value" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	if err := h.local.Set(key, req.Value); err != nil {
		utils.Error(c, 500, "STORE_ERROR", "Failed to write preference")
		return
	}
	utils.Success(c, 200, "Preference saved", nil)
}
