package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

type Config struct {
	AppEnv   string
	LogLevel slog.Level

	// Namespace is the CloudWatch namespace custom metrics are published
	// under.
	Namespace string

	// NetatmoBaseURL overrides the Netatmo API host. Empty selects the
	// production API; local runs point it at a stub.
	NetatmoBaseURL string

	// SSM parameter names holding the Netatmo credentials.
	ClientIDParam     string
	ClientSecretParam string
	UsernameParam     string
	PasswordParam     string
}

// SecretNames returns the SSM parameter names the run must resolve, in a
// fixed order.
func (c Config) SecretNames() []string {
	return []string{
		c.ClientIDParam,
		c.ClientSecretParam,
		c.UsernameParam,
		c.PasswordParam,
	}
}

func LoadFromEnv() (Config, error) {
	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "prod"
	}
	switch appEnv {
	case "dev", "prod":
	default:
		return Config{}, fmt.Errorf("invalid APP_ENV %q (allowed: dev, prod)", appEnv)
	}

	logLevelStr := strings.TrimSpace(os.Getenv("LOG_LEVEL"))
	if logLevelStr == "" {
		logLevelStr = "info"
	}
	level, err := parseLogLevel(logLevelStr)
	if err != nil {
		return Config{}, err
	}

	namespace := strings.TrimSpace(os.Getenv("CW_NAMESPACE"))
	if namespace == "" {
		namespace = "Deansystems/Netatmo"
	}

	netatmoBaseURL := strings.TrimSpace(os.Getenv("NETATMO_BASE_URL"))

	clientIDParam := strings.TrimSpace(os.Getenv("NETATMO_CLIENT_ID_PARAM"))
	if clientIDParam == "" {
		clientIDParam = "Netatmo_Client_Id"
	}
	clientSecretParam := strings.TrimSpace(os.Getenv("NETATMO_CLIENT_SECRET_PARAM"))
	if clientSecretParam == "" {
		clientSecretParam = "Netatmo_Client_Secret"
	}
	usernameParam := strings.TrimSpace(os.Getenv("NETATMO_USERNAME_PARAM"))
	if usernameParam == "" {
		usernameParam = "Netatmo_Username"
	}
	passwordParam := strings.TrimSpace(os.Getenv("NETATMO_PASSWORD_PARAM"))
	if passwordParam == "" {
		passwordParam = "Netatmo_Password"
	}

	return Config{
		AppEnv:            appEnv,
		LogLevel:          level,
		Namespace:         namespace,
		NetatmoBaseURL:    netatmoBaseURL,
		ClientIDParam:     clientIDParam,
		ClientSecretParam: clientSecretParam,
		UsernameParam:     usernameParam,
		PasswordParam:     passwordParam,
	}, nil
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid LOG_LEVEL %q (allowed: debug, info, warn, error)", s)
	}
}
