package main

import (
	"github.com/wharris/fleetgen/internal/config"
	"github.com/wharris/fleetgen/internal/logger"
	"github.com/wharris/fleetgen/internal/service"
	"github.com/wharris/fleetgen/internal/sink"
	"github.com/wharris/fleetgen/internal/transport"
	"go.uber.org/fx"
)

var Everything = fx.Options(
	config.Module,
	logger.Module,
	sink.Module,
	service.Module,
	transport.Module,
)

func main() {
	app := fx.New(Everything)
	app.Run()
}
