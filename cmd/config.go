package cmd

// Config carries every runtime setting the application reads from the
// environment.
type Config struct {
	HTTPPort              string
	DBHost                string
	DBPort                string
	DBUser                string
	DBPassword            string
	DBName                string
	DBSslMode             string
	PushGatewayURL        string
	PushGatewayAPIKey     string
	NotificationQueueSize int
}
