//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yanqian/trip-planner/internal/bootstrap"
	"github.com/yanqian/trip-planner/internal/domain/navigation"
	"github.com/yanqian/trip-planner/internal/infra/config"
	httpiface "github.com/yanqian/trip-planner/internal/interface/http"
	"github.com/yanqian/trip-planner/pkg/logger"
)

func initializeApp() (*bootstrap.App, func(), error) {
	wire.Build(
		config.Load,
		logger.New,
		provideCompleter,
		provideWeatherClient,
		provideCalendarClient,
		provideLocatorService,
		provideTripPlannerService,
		provideWeatherService,
		provideDiningService,
		provideNavigationConfig,
		navigation.NewControllers,
		navigation.NewRegistry,
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil, nil
}
