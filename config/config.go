package config

import (
	"context"
	"database/sql"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

// Settings is the union of knobs read by the services. Each service only
// looks at the fields it needs.
type Settings struct {
	HTTPAddr  string
	LogLevel  string
	LogFormat string

	StoreBackend string

	RedisEnabled bool
	CacheTTL     time.Duration

	KafkaEnabled bool
	ReviewTopic  string
	OrderTopic   string

	JWTSecret  string
	TokenTTL   time.Duration
	BcryptCost int

	LoginRate      float64
	LoginBurst     int
	TrustedProxies []string

	PublicBaseURL string
	CatalogSvcURL string
	AggSvcURL     string

	APIToken         string
	ProgressInterval time.Duration
}

// Load reads an optional .env file and then the process environment.
func Load(defaultAddr string) Settings {
	_ = godotenv.Load()

	return Settings{
		HTTPAddr:      envStr("HTTP_ADDR", defaultAddr),
		LogLevel:      envStr("LOG_LEVEL", "info"),
		LogFormat:     envStr("LOG_FORMAT", "text"),
		StoreBackend:  envStr("STORE_BACKEND", "memory"),
		RedisEnabled:  envBool("REDIS_ENABLED", false),
		CacheTTL:      envDur("CACHE_TTL", 5*time.Minute),
		KafkaEnabled:  envBool("KAFKA_ENABLED", false),
		ReviewTopic:   envStr("KAFKA_REVIEW_TOPIC", "reviews"),
		OrderTopic:    envStr("KAFKA_ORDER_TOPIC", "orders"),
		JWTSecret:     envStr("JWT_SECRET", "crawingo-dev-secret"),
		TokenTTL:      envDur("TOKEN_TTL", 24*time.Hour),
		BcryptCost:    envInt("BCRYPT_COST", 10),
		LoginRate:     envFloat("LOGIN_RATE", 1),
		LoginBurst:    envInt("LOGIN_BURST", 5),
		PublicBaseURL: envStr("PUBLIC_BASE_URL", "http://localhost:8080"),
		CatalogSvcURL: envStr("CATALOG_SVC_URL", "http://localhost:8081"),
		AggSvcURL:     envStr("AGG_SVC_URL", "http://localhost:8083"),

		// Peers allowed to set X-Forwarded-For; the gateway in local setups.
		TrustedProxies: envList("TRUSTED_PROXIES", "127.0.0.1,::1"),

		APIToken:         os.Getenv("CRAWINGO_TOKEN"),
		ProgressInterval: envDur("PROGRESS_INTERVAL", 2*time.Second),
	}
}

func MustInitPostgres(log logrus.FieldLogger) *sql.DB {
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbName := os.Getenv("DB_NAME")
	dbUser := os.Getenv("DB_USER")
	dbPassword := os.Getenv("DB_PASSWORD")

	connStr := "host=" + dbHost + " port=" + dbPort + " user=" + dbUser +
		" password=" + dbPassword + " dbname=" + dbName + " sslmode=disable"

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}

	if err = db.Ping(); err != nil {
		log.WithError(err).Fatal("failed to ping database")
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis(log logrus.FieldLogger) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     envStr("REDIS_HOST", "localhost") + ":" + envStr("REDIS_PORT", "6379"),
		Password: os.Getenv("REDIS_PASSWORD"),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.WithError(err).Fatal("failed to connect to redis")
	}

	return client
}

func NewKafkaReader(topic, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{envStr("KAFKA_BROKER", "localhost:9092")},
		Topic:   topic,
		GroupID: groupID,
	})
}

func NewKafkaWriter(topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(envStr("KAFKA_BROKER", "localhost:9092")),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}
}

func envStr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func envList(k, d string) []string {
	var out []string
	for _, item := range strings.Split(envStr(k, d), ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func envBool(k string, d bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return d
	}
	return b
}

func envInt(k string, d int) int {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	return d
}

func envFloat(k string, d float64) float64 {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return f
	}
	return d
}

func envDur(k string, d time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if dur, err := time.ParseDuration(v); err == nil {
		return dur
	}
	return d
}
