package domain

// Required configuration keys.
const (
	KeyDatabase    = "database"
	KeyUser        = "user"
	KeyPassword    = "password"
	KeyHostAddress = "host_address"
	KeyPort        = "port"
)

// RequiredKeys returns the required keys in rendering order.
func RequiredKeys() []string {
	return []string{KeyDatabase, KeyUser, KeyPassword, KeyHostAddress, KeyPort}
}

// DBConfig is a parsed database configuration. A nil value is an explicit JSON null.
type DBConfig map[string]*string

// ConfigFromStrings builds a DBConfig with every value set.
func ConfigFromStrings(values map[string]string) DBConfig {
	cfg := make(DBConfig, len(values))
	for k, v := range values {
		cfg[k] = &v
	}
	return cfg
}
