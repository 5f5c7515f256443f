package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/foodgram-ru/foodgram-backend/server"
	"github.com/foodgram-ru/foodgram-backend/server/middlewares"
	"github.com/foodgram-ru/foodgram-backend/utils"
	"github.com/foodgram-ru/foodgram-backend/utils/dotenv"
	. "github.com/foodgram-ru/foodgram-backend/utils/flag"
	. "github.com/foodgram-ru/foodgram-backend/utils/log"
)

func cleanup() {
	LogV2.Info("api server shutdown")
}

func main() {
	ParseFlags()
	defer cleanup()

	if err := dotenv.LoadDotEnvs(); err != nil {
		panic(err)
	}

	middlewares.Setup()

	// Default with the Logger and Recovery middleware already attached
	router := gin.Default()
	router.Use(cors.Default())

	db, err := utils.GetDBConnection()
	if err != nil {
		panic("failed to connect to database")
	}
	if err := utils.DBSetupAndMigration(db); err != nil {
		panic(err)
	}

	server.RegisterRoutes(router, db)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{"message": "Foodgram server - API not found"})
	})

	LogV2.Info("api server starts up")
	router.Run(":8080")
}
