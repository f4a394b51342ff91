package main

import (
	"backend/config"
	"backend/routes"
	"backend/utils"
)

func main() {
	config.InitDB()
	config.SeedDemoData()
	utils.InitS3()
	r := routes.SetupRouter()
	r.Run(":8080")
}
