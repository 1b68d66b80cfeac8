package cache

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/valkey-io/valkey-go"
	"pizzaops.io/admin-dashboard/app/utils/logger"
	"pizzaops.io/admin-dashboard/config/environment_variables"
)

// ValkeyCacheService persists query results in Valkey
type ValkeyCacheService struct {
	client valkey.Client
}

// parseValkeyURL returns address, password and database. database is -1 when the URL names none.
func parseValkeyURL(valkeyURL string) (address, password string, database int, err error) {
	database = -1

	if !strings.Contains(valkeyURL, "://") {
		return valkeyURL, "", -1, nil
	}

	u, err := url.Parse(valkeyURL)
	if err != nil {
		return "", "", -1, fmt.Errorf("invalid URL format: %w", err)
	}
	address = u.Host
	if address == "" {
		return "", "", -1, fmt.Errorf("no host specified in URL")
	}
	if u.User != nil {
		password, _ = u.User.Password()
	}
	if dbStr := strings.TrimPrefix(u.Path, "/"); dbStr != "" {
		if db, parseErr := strconv.Atoi(dbStr); parseErr == nil {
			database = db
		}
	}
	return address, password, database, nil
}

// NewValkeyCacheService degrades to NoOpCacheService when valkey is unreachable
func NewValkeyCacheService() CacheService {
	valkeyURL := environment_variables.EnvironmentVariables.CACHE_URL
	if valkeyURL == "" {
		valkeyURL = "valkey://localhost:6379"
	}

	address, password, db, err := parseValkeyURL(valkeyURL)
	if err != nil {
		logger.GetLogger().Errorf("cache: invalid valkey url, persistence disabled: %v", err)
		return &NoOpCacheService{}
	}

	opts := valkey.ClientOption{
		InitAddress: []string{address},
		Password:    password,
	}
	if db != -1 {
		opts.SelectDB = db
	}
	if override := environment_variables.EnvironmentVariables.CACHE_PASSWORD; override != "" {
		opts.Password = override
	}
	if raw := environment_variables.EnvironmentVariables.CACHE_DB; raw != "" {
		if db, err := strconv.Atoi(raw); err == nil {
			opts.SelectDB = db
		}
	}

	client, err := valkey.NewClient(opts)
	if err != nil {
		logger.GetLogger().Errorf("cache: failed to connect to valkey, persistence disabled: %v", err)
		return &NoOpCacheService{}
	}
	logger.GetLogger().Info("cache: connected to valkey")
	return &ValkeyCacheService{client: client}
}

func (v *ValkeyCacheService) Set(ctx context.Context, key string, value any, expiration time.Duration) error {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}
	set := v.client.B().Set().Key(key).Value(valkey.BinaryString(jsonValue))
	if seconds := int64(expiration.Seconds()); seconds > 0 {
		return v.client.Do(ctx, set.ExSeconds(seconds).Build()).Error()
	}
	return v.client.Do(ctx, set.Build()).Error()
}

func (v *ValkeyCacheService) Get(ctx context.Context, key string, dest any) error {
	val, err := v.client.Do(ctx, v.client.B().Get().Key(key).Build()).AsBytes()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return ErrCacheMiss
		}
		return fmt.Errorf("failed to get value: %w", err)
	}
	return json.Unmarshal(val, dest)
}

func (v *ValkeyCacheService) Delete(ctx context.Context, key string) error {
	return v.client.Do(ctx, v.client.B().Unlink().Key(key).Build()).Error()
}

func (v *ValkeyCacheService) DeletePattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		entry, err := v.client.Do(ctx, v.client.B().Scan().Cursor(cursor).Match(pattern).Count(1000).Build()).AsScanEntry()
		if err != nil {
			return fmt.Errorf("failed to scan keys: %w", err)
		}
		if len(entry.Elements) > 0 {
			if err := v.client.Do(ctx, v.client.B().Unlink().Key(entry.Elements...).Build()).Error(); err != nil {
				return fmt.Errorf("failed to unlink keys: %w", err)
			}
		}
		if entry.Cursor == 0 {
			return nil
		}
		cursor = entry.Cursor
	}
}

func (v *ValkeyCacheService) Exists(ctx context.Context, key string) (bool, error) {
	count, err := v.client.Do(ctx, v.client.B().Exists().Key(key).Build()).AsInt64()
	if err != nil {
		return false, fmt.Errorf("failed to check key existence: %w", err)
	}
	return count > 0, nil
}

func (v *ValkeyCacheService) Close() error {
	v.client.Close()
	return nil
}

func (v *ValkeyCacheService) HealthCheck(ctx context.Context) error {
	return v.client.Do(ctx, v.client.B().Ping().Build()).Error()
}
