package cmd

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	UserServiceURL         string
	RestaurantServiceURL   string
	NotificationServiceURL string

	DirectoryTimeoutSeconds int
	RejectUnavailableItems  bool
}
