package public

import (
	"strconv"
	"strings"

	"github.com/foodie-app/internal/http/response"
	"github.com/foodie-app/internal/repository"

	"github.com/gin-gonic/gin"
)

// GetMenu 获取菜单，支持 category / featured / available 过滤
func (h *Handler) GetMenu(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	filter := repository.MenuFilter{
		Category: strings.TrimSpace(c.Query("category")),
	}
	if v, ok := parseBoolQuery(c.Query("featured")); ok {
		filter.Featured = &v
	}
	if v, ok := parseBoolQuery(c.Query("available")); ok {
		filter.Available = &v
	}

	items, err := h.MenuService.ListItems(c.Request.Context(), filter)
	if err != nil {
		respondServiceError(c, err, "failed to fetch menu items")
		return
	}

	response.Success(c, gin.H{
		"items":   items,
		"total":   len(items),
		"user_id": uid,
	})
}

// GetMenuItem 获取单个菜单项详情
func (h *Handler) GetMenuItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	rawID := c.Param("item_id")
	itemID, err := strconv.ParseUint(rawID, 10, 64)
	if err != nil || itemID == 0 {
		response.BadRequest(c, response.KindBadRequest, "item_id must be a positive integer")
		return
	}

	item, err := h.MenuService.GetItem(uint(itemID))
	if err != nil {
		respondServiceError(c, err, "failed to fetch menu item")
		return
	}

	response.Success(c, gin.H{
		"item":    item,
		"user_id": uid,
	})
}

func parseBoolQuery(raw string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "1":
		return true, true
	case "false", "0":
		return false, true
	default:
		return false, false
	}
}
