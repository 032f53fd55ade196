package cmd

type Config struct {
	HTTPPort             string
	DBHost               string
	DBPort               string
	DBUser               string
	DBPassword           string
	DBName               string
	DBSslMode            string
	StateMachinePath     string
	InternalSharedSecret string
	SapGatewayURL        string
	SapGatewayAPIKey     string
	SapSyncSchedule      string
}
