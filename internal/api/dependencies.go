package api

import (
	"fmt"
	"os"

	"atn-virtual/crewcenter/internal/common"
	"atn-virtual/crewcenter/internal/config"
	"atn-virtual/crewcenter/internal/db/repositories"
	"atn-virtual/crewcenter/internal/logging"
	"atn-virtual/crewcenter/internal/metrics"
	"atn-virtual/crewcenter/internal/providers"
	"atn-virtual/crewcenter/internal/roster"
	"atn-virtual/crewcenter/internal/services"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Repositories struct {
	Events *repositories.EventParticipationRepository
}

type Services struct {
	Store     common.CacheInterface
	Cache     *common.FreshnessCache
	MailQueue common.MailQueue
	Signer    *common.TokenSigner
	Weather   *services.WeatherService
	Roster    *services.RosterService
	Flights   *services.FlightsService
	Stats     *services.StatsService
	Briefing  *services.BriefingService
	Dashboard *services.DashboardService
	Mail      *services.MailService
	Events    *services.EventService
	Auth      *services.AuthService
}

type Dependencies struct {
	Repo     *Repositories
	Services *Services
	Metrics  *metrics.MetricsRegistry
	DB       *gorm.DB
}

// InitDependencies wires providers, caches and services from cfg
func InitDependencies(cfg *config.Config, gormDB *gorm.DB, crew *roster.Roster, metricsReg *metrics.MetricsRegistry) (*Dependencies, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var redisClient *redis.Client
	if cfg.CacheBackend == config.BackendRedis || cfg.MailQueue == config.BackendRedis {
		redisClient = common.NewRedisClient(common.RedisOptions{
			Host:     cfg.RedisHost,
			Port:     cfg.RedisPort,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
	}

	store, err := newCacheStore(cfg, redisClient)
	if err != nil {
		return nil, err
	}
	queue, err := newMailQueue(cfg, redisClient)
	if err != nil {
		return nil, err
	}

	repos := &Repositories{
		Events: repositories.NewEventParticipationRepository(gormDB),
	}

	cache := common.NewFreshnessCache(store, cfg.CacheShortTTL, cfg.CacheLongTTL, metricsReg)
	weatherProvider := providers.NewWeatherProvider(cfg.WeatherBaseURL, cfg.WeatherTimeout, metricsReg)
	fshub := providers.NewFsHubProvider(cfg.FsHubBaseURL, cfg.FsHubAirline, cfg.FsHubTimeout, metricsReg)
	signer := common.NewTokenSigner([]byte(cfg.JWTSecret), 0)

	weatherSvc := services.NewWeatherService(weatherProvider, cache, metricsReg)
	rosterSvc := services.NewRosterService(crew, fshub, cache, metricsReg)
	flightsSvc := services.NewFlightsService(fshub, cache, metricsReg)
	statsSvc := services.NewStatsService(fshub, rosterSvc, cache, metricsReg)

	svcs := &Services{
		Store:     store,
		Cache:     cache,
		MailQueue: queue,
		Signer:    signer,
		Weather:   weatherSvc,
		Roster:    rosterSvc,
		Flights:   flightsSvc,
		Stats:     statsSvc,
		Briefing:  services.NewBriefingService(weatherSvc),
		Dashboard: services.NewDashboardService(weatherSvc, statsSvc, rosterSvc, flightsSvc),
		Mail:      services.NewMailService(queue, cfg.MailTo, metricsReg),
		Events:    services.NewEventService(repos.Events),
		Auth:      services.NewAuthService(services.ParseCredentials(cfg.CrewUsers), crew, signer),
	}

	return &Dependencies{
		Repo:     repos,
		Services: svcs,
		Metrics:  metricsReg,
		DB:       gormDB,
	}, nil
}

func newCacheStore(cfg *config.Config, client *redis.Client) (common.CacheInterface, error) {
	switch cfg.CacheBackend {
	case config.BackendRedis:
		return common.NewRedisCacheService(client, "crewcenter:"), nil
	case config.BackendMemory, "":
		return common.NewCacheService(cfg.CacheShortTTL, cfg.CacheShortTTL*2), nil
	}
	return nil, fmt.Errorf("unknown cache backend %q", cfg.CacheBackend)
}

func newMailQueue(cfg *config.Config, client *redis.Client) (common.MailQueue, error) {
	switch cfg.MailQueue {
	case config.BackendRedis:
		host, _ := os.Hostname()
		return common.NewRedisMailQueue(client, "crewcenter-"+host), nil
	case config.BackendMemory, "":
		logging.Info("Using in-process mail queue; queued mail is lost on restart")
		return common.NewChannelMailQueue(100), nil
	}
	return nil, fmt.Errorf("unknown mail queue %q", cfg.MailQueue)
}
