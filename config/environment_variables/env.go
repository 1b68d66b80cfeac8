package environment_variables

import (
	"fmt"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/spf13/cast"
)

type EnvironmentVariable struct {
	API_BASE_URL string
	WS_BASE_URL  string
	HTTP_TIMEOUT time.Duration
	HTTP_PORT    int

	ALLOWED_CORS_HOSTS []string

	LOG_LEVEL  string
	LOG_FORMAT string

	CACHE_TYPE        string
	CACHE_URL         string
	CACHE_PASSWORD    string
	CACHE_DB          string
	CACHE_PERSIST_TTL time.Duration

	RECONNECT_POLICY      string
	RECONNECT_DELAY       time.Duration
	RECONNECT_MAX_DELAY   time.Duration
	RECONNECT_MAX_RETRIES int

	SESSION_REFRESH_SCHEDULE string
	UPLOAD_FAILURE_POLICY    string
}

func (ev *EnvironmentVariable) LoadFromEnv() {
	v := reflect.ValueOf(ev).Elem()
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)
		envKey := field.Name
		envValue := os.Getenv(envKey)
		if envValue == "" {
			continue
		}
		if err := setField(v.Field(i), envValue); err != nil {
			fmt.Printf("Invalid SYSENV %s: %v\n", envKey, err)
		}
	}
	ev.applyDefaults()
}

func setField(field reflect.Value, raw string) error {
	// time.Duration is an int64 kind, check it first
	if field.Type() == reflect.TypeOf(time.Duration(0)) {
		d, err := cast.ToDurationE(raw)
		if err != nil {
			return err
		}
		field.SetInt(int64(d))
		return nil
	}
	switch field.Kind() {
	case reflect.String:
		field.SetString(raw)
	case reflect.Int:
		n, err := cast.ToIntE(raw)
		if err != nil {
			return err
		}
		field.SetInt(int64(n))
	case reflect.Bool:
		b, err := cast.ToBoolE(raw)
		if err != nil {
			return err
		}
		field.SetBool(b)
	case reflect.Slice:
		parts := strings.Split(raw, ",")
		values := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				values = append(values, p)
			}
		}
		field.Set(reflect.ValueOf(values))
	default:
		return fmt.Errorf("unsupported kind %s", field.Kind())
	}
	return nil
}

func (ev *EnvironmentVariable) applyDefaults() {
	if ev.API_BASE_URL == "" {
		ev.API_BASE_URL = "http://localhost:8000/api/v1"
	}
	if ev.WS_BASE_URL == "" {
		ev.WS_BASE_URL = "ws://localhost:8000/api/v1"
	}
	if ev.HTTP_TIMEOUT == 0 {
		ev.HTTP_TIMEOUT = 30 * time.Second
	}
	if ev.HTTP_PORT == 0 {
		ev.HTTP_PORT = 8080
	}
	if ev.LOG_LEVEL == "" {
		ev.LOG_LEVEL = "info"
	}
	if ev.CACHE_TYPE == "" {
		ev.CACHE_TYPE = "none"
	}
	if ev.CACHE_PERSIST_TTL == 0 {
		ev.CACHE_PERSIST_TTL = 24 * time.Hour
	}
	if ev.RECONNECT_POLICY == "" {
		ev.RECONNECT_POLICY = "fixed"
	}
	if ev.RECONNECT_DELAY == 0 {
		ev.RECONNECT_DELAY = 3 * time.Second
	}
	if ev.RECONNECT_MAX_DELAY == 0 {
		ev.RECONNECT_MAX_DELAY = time.Minute
	}
	if ev.SESSION_REFRESH_SCHEDULE == "" {
		ev.SESSION_REFRESH_SCHEDULE = "*/10 * * * *"
	}
	if ev.UPLOAD_FAILURE_POLICY == "" {
		ev.UPLOAD_FAILURE_POLICY = "pizza=abort,topping=abort,user=abort"
	}
}

// ParseKeyValues splits "a=x,b=y" into a map. Malformed pairs are skipped.
func ParseKeyValues(raw string) map[string]string {
	result := make(map[string]string)
	for _, pair := range strings.Split(raw, ",") {
		key, value, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok || key == "" {
			continue
		}
		result[strings.ToLower(strings.TrimSpace(key))] = strings.ToLower(strings.TrimSpace(value))
	}
	return result
}

// Singleton
var EnvironmentVariables = EnvironmentVariable{}
