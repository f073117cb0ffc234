package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"blogmetrics/services"

	"github.com/gin-gonic/gin"
)

type LikeController struct {
	likes    *services.LikeService
	visitors *services.VisitorIdentifier
}

func NewLikeController(likes *services.LikeService, visitors *services.VisitorIdentifier) *LikeController {
	return &LikeController{likes: likes, visitors: visitors}
}

// GetLikes: 返回文章点赞合计和当前访客的点赞数。未知 slug 也返回 200 全 0
func (c *LikeController) GetLikes(ctx *gin.Context) {
	slug := ctx.Param("slug")

	userID, err := c.visitors.FromHeaders(ctx.Request.Header)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	stats, err := c.likes.Get(slug, userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, stats)
}

// PostLikes: 把当前访客对文章的点赞数覆盖写成 ?count=，返回写后的统计。
// count 缺失、非数字或越界一律 400
func (c *LikeController) PostLikes(ctx *gin.Context) {
	slug := ctx.Param("slug")

	count, err := strconv.Atoi(ctx.Query("count"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid count"})
		return
	}

	userID, err := c.visitors.FromHeaders(ctx.Request.Header)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	stats, err := c.likes.Upsert(slug, userID, count)
	if errors.Is(err, services.ErrCountOutOfRange) {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid count"})
		return
	}
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, stats)
}
