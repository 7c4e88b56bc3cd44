package configs

import (
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/Radithya02/Catering-Food/internal/entity"
)

type Config struct {
	App struct {
		Name     string `koanf:"name"`
		HTTPAddr string `koanf:"http_addr"`
		LogLevel string `koanf:"log_level"`
		LogFile  string `koanf:"log_file"`
	} `koanf:"app"`

	MySQL struct {
		DSN             string        `koanf:"dsn"`
		MaxOpenConns    int           `koanf:"max_open_conns"`
		MaxIdleConns    int           `koanf:"max_idle_conns"`
		ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
	} `koanf:"mysql"`

	Redis struct {
		Addr     string `koanf:"addr"`
		Password string `koanf:"password"`
	} `koanf:"redis"`

	Idempotency struct {
		TTL time.Duration `koanf:"ttl"`
	} `koanf:"idempotency"`

	Cache struct {
		TTL time.Duration `koanf:"ttl"`
	} `koanf:"cache"`

	Rabbit struct {
		URL string `koanf:"url"`
	} `koanf:"rabbitmq"`

	Kafka struct {
		Brokers     []string `koanf:"brokers"`
		TopicPrices string   `koanf:"topic_prices"`
		GroupID     string   `koanf:"group_id"`
	} `koanf:"kafka"`

	Security struct {
		JWTSecret string        `koanf:"jwt_secret"`
		Issuer    string        `koanf:"issuer"`
		Audience  string        `koanf:"audience"`
		TTL       time.Duration `koanf:"ttl"`
	} `koanf:"security"`

	Menu []MenuItem `koanf:"menu"`
}

// MenuItem is the yaml shape of a catalog entry; prices stay strings until
// they pass Money validation in MenuFoods.
type MenuItem struct {
	ID          string `koanf:"id"`
	Name        string `koanf:"name"`
	Description string `koanf:"description"`
	Price       string `koanf:"price"`
}

func Load(pathDir, envName string) (Config, error) {
	k := koanf.New(".")
	// 1) base
	if err := k.Load(file.Provider(fmt.Sprintf("%s/base.yaml", pathDir)), yaml.Parser()); err != nil {
		return Config{}, fmt.Errorf("load base: %w", err)
	}

	// 2) env overlay (dev/staging/prod). Optional: allow missing for local runs.
	_ = k.Load(file.Provider(fmt.Sprintf("%s/%s.yaml", pathDir, envName)), yaml.Parser())

	// 3) environment variables override (prefix CATERING_, nested with __)
	// e.g. CATERING_MYSQL__DSN, CATERING_SECURITY__JWT_SECRET
	if err := k.Load(env.Provider("CATERING_", ".", func(s string) string {
		s = strings.TrimPrefix(s, "CATERING_")
		s = strings.ReplaceAll(s, "__", ".")
		return strings.ToLower(s)
	}), nil); err != nil {
		return Config{}, fmt.Errorf("env overlay: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.App.HTTPAddr == "" {
		return fmt.Errorf("app.http_addr required")
	}
	if c.Security.JWTSecret == "" {
		return fmt.Errorf("security.jwt_secret required")
	}
	if len(c.Menu) == 0 {
		return fmt.Errorf("menu requires at least one item")
	}
	for _, item := range c.Menu {
		if item.ID == "" || item.Name == "" {
			return fmt.Errorf("menu item needs id and name")
		}
		if _, err := entity.NewMoneyFromString(item.Price); err != nil {
			return fmt.Errorf("menu item %s: bad price %q", item.ID, item.Price)
		}
	}
	return nil
}

// MenuFoods converts the configured menu into catalog records. Call after
// Validate; bad prices cannot survive it.
func (c Config) MenuFoods() []entity.Food {
	foods := make([]entity.Food, 0, len(c.Menu))
	for _, item := range c.Menu {
		price, err := entity.NewMoneyFromString(item.Price)
		if err != nil {
			continue
		}
		foods = append(foods, entity.Food{
			ID:          item.ID,
			Name:        item.Name,
			Description: item.Description,
			Price:       price,
		})
	}
	return foods
}
