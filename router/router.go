package router

import (
	"net/http"

	"blogmetrics/controllers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter(
	likeCtrl *controllers.LikeController,
	viewCtrl *controllers.ViewController,
	rankCtrl *controllers.RankController,
	allowOrigins []string,
) *gin.Engine {
	r := gin.Default()

	// 博客前端跨域调用这些接口
	corsConfig := cors.DefaultConfig()
	if len(allowOrigins) > 0 {
		corsConfig.AllowOrigins = allowOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type"}
	r.Use(cors.New(corsConfig))

	// 两条计数路由只认 GET/POST，其余方法明确回 405 而不是静默吞掉
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(ctx *gin.Context) {
		ctx.JSON(http.StatusMethodNotAllowed, gin.H{"message": "Method Not Allowed"})
	})

	api := r.Group("/api")
	{
		api.GET("/likes/:slug", likeCtrl.GetLikes)
		api.POST("/likes/:slug", likeCtrl.PostLikes)

		api.GET("/views/:slug", viewCtrl.GetViews)
		api.POST("/views/:slug", viewCtrl.PostViews)

		api.GET("/rank/articles", rankCtrl.TopArticles)
	}

	return r
}
