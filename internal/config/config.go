package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	AppPort string
	AppEnv  string

	AWSRegion      string
	AWSEndpointURL string // empty in prod, set to LocalStack URL in dev
	AWSAccessKeyID string
	AWSSecretKey   string

	DynamoTables DynamoTables
	S3BucketName string

	// Shared secret with the external identity platform; this service only
	// verifies tokens, it never mints them.
	AuthJWTSecret string

	MailHost       string
	MailPort       int
	MailFrom       string
	MailFromName   string
	MailUsername   string
	MailPassword   string
	MailEncryption string // "starttls" | "ssl" | "none"

	OTPTTL            time.Duration
	OTPResendInterval time.Duration

	SNSTopicARN string // optional announcement broadcast topic

	AllowedOrigins []string // CORS allowed origins
}

// DynamoTables holds the DynamoDB table name for each entity.
type DynamoTables struct {
	VerificationCodes string
	Videos            string
	Simulations       string
	Files             string
	Notifications     string
	NotificationVotes string
	StudentProgress   string
}

// Load reads all configuration from environment variables.
func Load() *Config {
	return &Config{
		AppPort: getEnv("APP_PORT", "3000"),
		AppEnv:  getEnv("APP_ENV", "development"),

		AWSRegion:      getEnv("AWS_REGION", "us-east-1"),
		AWSEndpointURL: getEnv("AWS_ENDPOINT_URL", ""),
		AWSAccessKeyID: getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretKey:   getEnv("AWS_SECRET_ACCESS_KEY", ""),

		DynamoTables: DynamoTables{
			VerificationCodes: getEnv("DYNAMO_TABLE_VERIFICATION_CODES", "verification_codes"),
			Videos:            getEnv("DYNAMO_TABLE_VIDEOS", "videos"),
			Simulations:       getEnv("DYNAMO_TABLE_SIMULATIONS", "simulations"),
			Files:             getEnv("DYNAMO_TABLE_FILES", "files"),
			Notifications:     getEnv("DYNAMO_TABLE_NOTIFICATIONS", "notifications"),
			NotificationVotes: getEnv("DYNAMO_TABLE_NOTIFICATION_VOTES", "notification_votes"),
			StudentProgress:   getEnv("DYNAMO_TABLE_STUDENT_PROGRESS", "student_progress"),
		},
		S3BucketName: getEnv("S3_BUCKET_NAME", "wonder-science-assets"),

		AuthJWTSecret: getEnv("AUTH_JWT_SECRET", ""),

		MailHost:       getEnv("MAIL_HOST", "localhost"),
		MailPort:       getEnvInt("MAIL_PORT", 1025),
		MailFrom:       getEnv("MAIL_FROM", "noreply@example.com"),
		MailFromName:   getEnv("MAIL_FROM_NAME", "Wonder Science Hub"),
		MailUsername:   getEnv("MAIL_USERNAME", ""),
		MailPassword:   getEnv("MAIL_PASSWORD", ""),
		MailEncryption: getEnv("MAIL_ENCRYPTION", "none"),

		OTPTTL:            getEnvDuration("OTP_TTL", 10*time.Minute),
		OTPResendInterval: getEnvDuration("OTP_RESEND_INTERVAL", 60*time.Second),

		SNSTopicARN: getEnv("SNS_TOPIC_ARN", ""),

		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
