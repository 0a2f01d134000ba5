package config

import (
	"strings"
	"testing"
)

func setenv(t *testing.T, kv map[string]string) {
	t.Helper()
	for k, v := range kv {
		t.Setenv(k, v)
	}
}

func TestLoad_Defaults(t *testing.T) {
	setenv(t, map[string]string{
		"APP_PORT": "", "DB_DRIVER": "", "DATABASE_URL": "", "REDIS_ADDR": "",
		"REDIS_DB": "", "IDEMPOTENCY_TTL_SECONDS": "", "DB_AUTO_MIGRATE": "",
		"DEFAULT_BUSINESS_ID": "",
	})
	c := Load()

	if c.AppPort != "8080" {
		t.Fatalf("AppPort = %q, want 8080", c.AppPort)
	}
	if c.DBDriver != "postgres" {
		t.Fatalf("DBDriver = %q, want postgres", c.DBDriver)
	}
	if c.IdempTTLSecs != 300 {
		t.Fatalf("IdempTTLSecs = %d, want 300", c.IdempTTLSecs)
	}
	if c.RedisAddr != "" || c.DBAutoMigrate || c.DefaultBusinessID != "" {
		t.Fatalf("unexpected optional settings: %+v", c)
	}
}

func TestLoad_Overrides(t *testing.T) {
	setenv(t, map[string]string{
		"APP_PORT":                "9090",
		"DB_DRIVER":               "sqlite",
		"SQLITE_PATH":             "/tmp/x.db",
		"DB_AUTO_MIGRATE":         "true",
		"DEFAULT_BUSINESS_ID":     "biz-1",
		"REDIS_ADDR":              "localhost:6379",
		"REDIS_DB":                "3",
		"IDEMPOTENCY_TTL_SECONDS": "60",
	})
	c := Load()

	if c.AppPort != "9090" || c.DBDriver != "sqlite" || c.DSN() != "/tmp/x.db" {
		t.Fatalf("unexpected config: %+v", c)
	}
	if !c.DBAutoMigrate {
		t.Fatal("DBAutoMigrate = false, want true")
	}
	if c.DefaultBusinessID != "biz-1" {
		t.Fatalf("DefaultBusinessID = %q", c.DefaultBusinessID)
	}
	if c.RedisDB != 3 || c.IdempTTLSecs != 60 {
		t.Fatalf("RedisDB=%d IdempTTLSecs=%d", c.RedisDB, c.IdempTTLSecs)
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{AppPort: "8080", DBDriver: "postgres", DatabaseURL: "postgres://u:p@h/db", IdempTTLSecs: 300}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"ok postgres", func(c *Config) {}, ""},
		{"missing port", func(c *Config) { c.AppPort = "" }, "APP_PORT"},
		{"missing database url", func(c *Config) { c.DatabaseURL = "" }, "DATABASE_URL"},
		{"unknown driver", func(c *Config) { c.DBDriver = "oracle" }, "unsupported DB_DRIVER"},
		{"mysql ok", func(c *Config) {
			c.DBDriver, c.MySQLHost, c.MySQLPort, c.MySQLDB, c.MySQLUser = "mysql", "h", "3306", "d", "u"
		}, ""},
		{"mysql missing host", func(c *Config) {
			c.DBDriver, c.MySQLPort, c.MySQLDB, c.MySQLUser = "mysql", "3306", "d", "u"
		}, "missing MySQL config"},
		{"mysql bad port", func(c *Config) {
			c.DBDriver, c.MySQLHost, c.MySQLPort, c.MySQLDB, c.MySQLUser = "mysql", "h", "not-a-port", "d", "u"
		}, "invalid MYSQL_PORT"},
		{"sqlite missing path", func(c *Config) { c.DBDriver = "sqlite" }, "SQLITE_PATH"},
		{"bad ttl", func(c *Config) { c.IdempTTLSecs = 0 }, "IDEMPOTENCY_TTL_SECONDS"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base()
			tt.mutate(c)
			err := c.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected err: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("err = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestMySQLDSN(t *testing.T) {
	c := &Config{DBDriver: "mysql", MySQLHost: "db", MySQLPort: "3307", MySQLDB: "shop", MySQLUser: "u", MySQLPass: "p"}
	got := c.DSN()
	if !strings.HasPrefix(got, "u:p@tcp(db:3307)/shop?") {
		t.Fatalf("DSN = %q", got)
	}
	if !strings.Contains(got, "parseTime=true") {
		t.Fatalf("DSN missing parseTime: %q", got)
	}
}
