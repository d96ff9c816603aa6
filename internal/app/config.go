package app

import "os"

type Config struct {
	Port string

	MySQLUser     string
	MySQLPassword string
	MySQLHost     string
	MySQLPort     string
	MySQLDatabase string

	RedisHost string

	RabbitMQURL string
	Exchange    string

	NotificationServiceURL string
}

func LoadConfig() Config {
	return Config{
		Port:                   getenv("PORT", "8080"),
		MySQLUser:              os.Getenv("MYSQL_USER"),
		MySQLPassword:          os.Getenv("MYSQL_PASSWORD"),
		MySQLHost:              os.Getenv("MYSQL_HOST"),
		MySQLPort:              getenv("MYSQL_PORT", "3306"),
		MySQLDatabase:          os.Getenv("MYSQL_DATABASE"),
		RedisHost:              os.Getenv("REDIS_HOST"),
		RabbitMQURL:            os.Getenv("RABBITMQ_URL"),
		Exchange:               getenv("RABBITMQ_EXCHANGE", "order.exchange"),
		NotificationServiceURL: os.Getenv("NOTIFICATION_SERVICE_URL"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
