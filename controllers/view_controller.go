package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"blogmetrics/repository"
	"blogmetrics/services"

	"github.com/gin-gonic/gin"
)

type ViewController struct {
	views *services.ViewService
}

func NewViewController(views *services.ViewService) *ViewController {
	return &ViewController{views: views}
}

// GetViews: 返回文章浏览数，没见过的 slug 返回 404
func (c *ViewController) GetViews(ctx *gin.Context) {
	slug := ctx.Param("slug")

	count, err := c.views.Get(slug)
	if errors.Is(err, repository.ErrArticleNotFound) {
		ctx.JSON(http.StatusNotFound, gin.H{
			"message": fmt.Sprintf("Article with slug '%s' not found", slug),
		})
		return
	}
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"viewCount": count})
}

// PostViews: 浏览数 +1，新 slug 以 1 起建，返回自增后的值
func (c *ViewController) PostViews(ctx *gin.Context) {
	slug := ctx.Param("slug")

	count, err := c.views.Increment(slug)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"viewCount": count})
}
