package main

import (
	"log"

	"blogmetrics/config"
	"blogmetrics/controllers"
	"blogmetrics/global"
	"blogmetrics/repository"
	"blogmetrics/router"
	"blogmetrics/services"
)

func main() {
	config.InitConfig()

	store := repository.NewGormStore(global.Db)
	rank := services.NewRankService(global.RedisDB)
	events := services.NewEventPublisher(global.RabbitChannel, config.AppConfig.RabbitMQ.Queue)

	visitors, err := services.NewVisitorIdentifier(config.AppConfig.Likes.IPSalt)
	if err != nil {
		log.Fatalf("Failed to init visitor identifier: %v", err)
	}

	likeCtrl := controllers.NewLikeController(services.NewLikeService(store, rank, events), visitors)
	viewCtrl := controllers.NewViewController(services.NewViewService(store, rank, events))
	rankCtrl := controllers.NewRankController(rank)

	r := router.SetupRouter(likeCtrl, viewCtrl, rankCtrl, config.AppConfig.App.AllowOrigins)

	port := config.AppConfig.App.Port
	if port == "" {
		port = ":8080"
	}
	if err := r.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
