package server

import (
	"context"
	"fmt"

	v1 "github.com/emrgen/pagebuilder/apis/v1"
	"github.com/emrgen/pagebuilder/internal/cache"
	"github.com/emrgen/pagebuilder/internal/compositor"
	"github.com/emrgen/pagebuilder/internal/compress"
	"github.com/emrgen/pagebuilder/internal/config"
	"github.com/emrgen/pagebuilder/internal/jobs"
	"github.com/emrgen/pagebuilder/internal/queue"
	"github.com/emrgen/pagebuilder/internal/registry"
	"github.com/emrgen/pagebuilder/internal/render"
	"github.com/emrgen/pagebuilder/internal/resolver"
	"github.com/emrgen/pagebuilder/internal/service"
	"github.com/emrgen/pagebuilder/internal/store"
	redis "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"gorm.io/gorm"
)

// Services holds the wired page builder components of one server.
type Services struct {
	Store      store.Store
	Pages      *service.PageService
	Components *service.ComponentService
	Sites      *service.SiteService
	Site       *SiteHandler
	Tasks      *jobs.TaskExecutor

	publisher queue.PagePublisher
	redis     *redis.Client
}

// NewServices wires the registry, renderers, store, cache and event
// publisher. Redis and Kafka are only used when configured.
func NewServices(cfg *config.Config, db *gorm.DB) (*Services, error) {
	reg := registry.Default()

	templates, err := render.LoadTemplates()
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}
	res := resolver.New(reg)
	if err := render.RegisterDefaults(res, reg, templates); err != nil {
		return nil, err
	}

	pageStore := store.NewGormStore(db)
	if err := pageStore.Migrate(); err != nil {
		return nil, err
	}

	s := &Services{Store: pageStore}

	var renderCache cache.RenderCache = cache.NopRenderCache{}
	if cfg.Redis.Addr != "" {
		encoder, err := compress.New(cfg.Cache.Compression)
		if err != nil {
			return nil, err
		}
		s.redis = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := s.redis.Ping(context.Background()).Err(); err != nil {
			return nil, fmt.Errorf("connect redis %s: %w", cfg.Redis.Addr, err)
		}
		renderCache = cache.NewRedisRenderCache(s.redis, encoder, cfg.Cache.TTL, reg.Fingerprint())
		logrus.Infof("render cache enabled on %s with %s compression", cfg.Redis.Addr, cfg.Cache.Compression)
	}

	s.publisher = queue.NopPublisher{}
	if len(cfg.Kafka.Brokers) > 0 {
		publisher, err := queue.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		if err != nil {
			return nil, fmt.Errorf("create kafka producer: %w", err)
		}
		s.publisher = publisher
		logrus.Infof("publishing page events to %s", cfg.Kafka.Topic)
	}

	s.Pages = service.NewPageService(pageStore, reg, compositor.New(res), renderCache, s.publisher)
	s.Components = service.NewComponentService(reg)
	s.Sites = service.NewSiteService(pageStore)
	s.Site = NewSiteHandler(s.Pages, templates, res)
	s.Tasks = jobs.NewTaskExecutor(nil, []jobs.CronJob{
		jobs.NewRevisionPruner(pageStore, cfg.Revision.Keep, cfg.Revision.PruneSchedule),
	})

	return s, nil
}

// Register adds the grpc services to server.
func (s *Services) Register(server grpc.ServiceRegistrar) {
	v1.RegisterPageServiceServer(server, s.Pages)
	v1.RegisterComponentServiceServer(server, s.Components)
	v1.RegisterSiteServiceServer(server, s.Sites)
}

// Close flushes the event publisher and closes the redis client.
func (s *Services) Close() {
	s.publisher.Close()
	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			logrus.Errorf("error closing redis client: %v", err)
		}
	}
}
