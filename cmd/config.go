package cmd

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	LogLevel   string

	// VendorStatusProgression is "lenient" (default) or "forward".
	VendorStatusProgression string
	// OverdueCheckSchedule is a six field cron expression.
	OverdueCheckSchedule string
}
