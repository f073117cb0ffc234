package controllers

import (
	"net/http"
	"strconv"

	"blogmetrics/services"

	"github.com/gin-gonic/gin"
)

type RankController struct {
	rank *services.RankService
}

func NewRankController(rank *services.RankService) *RankController {
	return &RankController{rank: rank}
}

// TopArticles: 返回最受欢迎文章排行，?by=likes|views，?top=N 默认 10
func (c *RankController) TopArticles(ctx *gin.Context) {
	if c.rank == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": "ranking unavailable"})
		return
	}

	by := ctx.DefaultQuery("by", "likes")
	if by != "likes" && by != "views" {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid rank type"})
		return
	}

	top, err := strconv.Atoi(ctx.DefaultQuery("top", "10"))
	if err != nil || top <= 0 {
		top = 10
	}

	entries, err := c.rank.Top(by, top)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"list": entries})
}
