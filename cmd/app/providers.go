package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/yanqian/trip-planner/internal/domain/completion"
	"github.com/yanqian/trip-planner/internal/domain/dining"
	"github.com/yanqian/trip-planner/internal/domain/locator"
	"github.com/yanqian/trip-planner/internal/domain/navigation"
	"github.com/yanqian/trip-planner/internal/domain/tripplanner"
	"github.com/yanqian/trip-planner/internal/domain/weather"
	"github.com/yanqian/trip-planner/internal/infra/calendar/gcal"
	"github.com/yanqian/trip-planner/internal/infra/config"
	"github.com/yanqian/trip-planner/internal/infra/llm/chatgpt"
	"github.com/yanqian/trip-planner/internal/infra/llm/gemini"
	"github.com/yanqian/trip-planner/internal/infra/weather/openweather"
)

func provideCompleter(cfg *config.Config, logger *slog.Logger) (completion.Provider, func(), error) {
	var (
		provider completion.Provider
		err      error
	)
	switch cfg.LLM.Provider {
	case config.ProviderOpenAI:
		var client *chatgpt.Client
		client, err = chatgpt.NewClient(cfg.LLM.APIKey, cfg.LLM.BaseURL, cfg.LLM.Timeout)
		if err == nil {
			provider = chatgpt.NewCompleter(client, cfg.LLM.TextModel, cfg.LLM.VisionModel, cfg.LLM.Temperature)
		}
	case config.ProviderGemini:
		provider, err = gemini.NewClient(context.Background(), cfg.LLM.APIKey, cfg.LLM.TextModel, cfg.LLM.VisionModel, cfg.LLM.Temperature, cfg.LLM.Timeout)
	default:
		err = fmt.Errorf("unsupported llm provider %q", cfg.LLM.Provider)
	}
	if err != nil {
		return nil, nil, err
	}

	logger.Info("completion provider ready", "provider", cfg.LLM.Provider, "text_model", cfg.LLM.TextModel, "vision_model", cfg.LLM.VisionModel)
	cleanup := func() {
		if err := provider.Close(); err != nil {
			logger.Warn("close completion provider", "error", err)
		}
	}
	return provider, cleanup, nil
}

func provideWeatherClient(cfg *config.Config, logger *slog.Logger) weather.Client {
	if cfg.Weather.APIKey == "" {
		logger.Warn("openweather api key not set, forecasts will be rejected upstream")
	}
	return openweather.NewClient(cfg.Weather.APIBaseURL, cfg.Weather.APIKey, cfg.Weather.Timeout)
}

func provideCalendarClient(cfg *config.Config, logger *slog.Logger) tripplanner.CalendarClient {
	return gcal.NewClient(context.Background(), gcal.Config{
		CredentialsFile: cfg.Calendar.CredentialsFile,
		CalendarID:      cfg.Calendar.CalendarID,
	}, logger)
}

func provideLocatorService(cfg *config.Config, provider completion.Provider, logger *slog.Logger) locator.Service {
	return locator.NewService(locator.Config{Prompt: cfg.Prompts.LocationFinder}, provider, logger)
}

func provideTripPlannerService(cfg *config.Config, provider completion.Provider, calendar tripplanner.CalendarClient, logger *slog.Logger) tripplanner.Service {
	return tripplanner.NewService(tripplanner.Config{
		Prompt:   cfg.Prompts.TripPlanner,
		TimeZone: cfg.Calendar.TimeZone,
	}, provider, calendar, logger)
}

func provideWeatherService(client weather.Client, logger *slog.Logger) weather.Service {
	return weather.NewService(client, logger)
}

func provideDiningService(cfg *config.Config, provider completion.Provider, logger *slog.Logger) dining.Service {
	return dining.NewService(dining.Config{Prompt: cfg.Prompts.RestaurantHotel}, provider, logger)
}

func provideNavigationConfig(cfg *config.Config) navigation.Config {
	return navigation.Config{IdleTTL: cfg.Session.IdleTTL}
}
