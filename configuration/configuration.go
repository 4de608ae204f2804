package configuration

type Configuration struct {
	Prompt     string `usage:"interactive prompt"`
	Samples    bool   `usage:"load the sample books at startup"`
	EchoPrefix string `usage:"parameter prefix that switches the echo tool into parameter mode"`
	LogLevel   string `usage:"log level: debug | info | warn | error"`
	LogFile    string `usage:"write logs to this file instead of stderr"`
	Version    bool   `usage:"show version and exit"`
	ShowConfig bool   `usage:"print config"`
}
