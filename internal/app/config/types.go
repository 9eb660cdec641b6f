package config

type DriverConfig struct {
	MongoDB MongoDB
	Logger  Logger
}

type MongoDB struct {
	URI      string
	Host     string
	Port     string
	DbName   string
	Username string
	Password string
}

type Logger struct {
	Level               string
	OutputFileName      string
	OutputErrorFileName string
}

type InternalConfig struct {
	App App
	JWT JWT
}

type App struct {
	Env                        string
	Port                       string
	AllowedOrigins             []string
	ShutdownTimeout            int
	MaxRequests                int
	RequestBodyLimitInMegabyte int
	BcryptCost                 int
}

type JWT struct {
	Secret        string
	ExpTimeInHour int
}
