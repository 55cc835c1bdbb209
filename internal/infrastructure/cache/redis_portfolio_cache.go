package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"catering_ledger/internal/config"
	"catering_ledger/internal/domain/entities"
	"catering_ledger/internal/domain/ledger"
	"catering_ledger/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const (
	portfolioKey  = "ledger:portfolio"
	generationKey = "ledger:portfolio:generation"
)

// NewRedisClient connects to Redis and pings it. It returns nil when Redis
// is not configured or cannot be reached; callers then run without a cache.
func NewRedisClient(cfg config.Config) *redis.Client {
	if cfg.RedisAddr == "" {
		log.Printf("[cache][redis] REDIS_ADDR not set; portfolio cache disabled")
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("[cache][redis] ping failed addr=%s err=%v; portfolio cache disabled", cfg.RedisAddr, err)
		_ = client.Close()
		return nil
	}
	log.Printf("[cache][redis] connected addr=%s db=%d", cfg.RedisAddr, cfg.RedisDB)
	return client
}

// RedisPortfolioCache keeps the last computed portfolio view under a single
// key next to a generation counter. Every booking write bumps the counter and
// deletes the view; Set is a WATCH transaction on the counter.
type RedisPortfolioCache struct {
	client *redis.Client
	ttl    time.Duration
}

var _ interfaces.IPortfolioCache = (*RedisPortfolioCache)(nil)

func NewRedisPortfolioCache(client *redis.Client, ttl time.Duration) *RedisPortfolioCache {
	return &RedisPortfolioCache{client: client, ttl: ttl}
}

func (c *RedisPortfolioCache) Get(ctx context.Context) (ledger.PortfolioView, int64, bool, error) {
	vals, err := c.client.MGet(ctx, portfolioKey, generationKey).Result()
	if err != nil {
		return ledger.PortfolioView{}, 0, false, err
	}
	gen, err := parseGeneration(vals[1])
	if err != nil {
		return ledger.PortfolioView{}, 0, false, err
	}
	raw, ok := vals[0].(string)
	if !ok {
		return ledger.PortfolioView{}, gen, false, nil
	}
	view, err := decodeView([]byte(raw))
	if err != nil {
		return ledger.PortfolioView{}, gen, false, err
	}
	return view, gen, true, nil
}

// Set stores view unless an Invalidate happened after the Get that reported
// generation. A lost race is not an error; the view is simply dropped.
func (c *RedisPortfolioCache) Set(ctx context.Context, view ledger.PortfolioView, generation int64) error {
	b, err := json.Marshal(view)
	if err != nil {
		return err
	}
	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		cur, err := tx.Get(ctx, generationKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if cur != generation {
			log.Printf("[cache][redis] portfolio view outdated seen=%d current=%d; not caching", generation, cur)
			return nil
		}
		_, err = tx.TxPipelined(ctx, func(p redis.Pipeliner) error {
			p.Set(ctx, portfolioKey, b, c.ttl)
			return nil
		})
		return err
	}, generationKey)
	if errors.Is(err, redis.TxFailedErr) {
		log.Printf("[cache][redis] portfolio invalidated during set; not caching")
		return nil
	}
	return err
}

func (c *RedisPortfolioCache) Invalidate(ctx context.Context) error {
	_, err := c.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Incr(ctx, generationKey)
		p.Del(ctx, portfolioKey)
		return nil
	})
	return err
}

func parseGeneration(v any) (int64, error) {
	if v == nil {
		return 0, nil
	}
	s, ok := v.(string)
	if !ok {
		return 0, fmt.Errorf("unexpected generation value %T", v)
	}
	return strconv.ParseInt(s, 10, 64)
}

func decodeView(b []byte) (ledger.PortfolioView, error) {
	var view ledger.PortfolioView
	if err := json.Unmarshal(b, &view); err != nil {
		return ledger.PortfolioView{}, err
	}
	if view.MonthlyForecast == nil {
		view.MonthlyForecast = []ledger.MonthlyForecast{}
	}
	if view.CategoryBreakdown == nil {
		view.CategoryBreakdown = map[entities.EventType]ledger.CategoryTotals{}
	}
	return view, nil
}
