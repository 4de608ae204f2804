package configuration

func Default() *Configuration {
	return &Configuration{
		Prompt:     "> ",
		Samples:    true,
		EchoPrefix: "input",
		LogLevel:   "warn",
	}
}
