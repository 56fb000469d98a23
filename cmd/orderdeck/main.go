package main

import (
	"github.com/orderdeck/go-order-dashboard/internal/app/config"
	server "github.com/orderdeck/go-order-dashboard/internal/app/controller/http/server"
	"github.com/orderdeck/go-order-dashboard/internal/app/logger"
)

func main() {
	config := config.InitConfig()

	err := logger.Initialize(config)
	if err != nil {
		panic(err)
	}

	httpServer := server.New(config)
	httpServer.StartHTTPServer()
}
