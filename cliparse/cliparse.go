package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            int
	DatabaseURL     string
	DatabaseType    string
	AdminIdentity   string
	IdentitySalt    string
	GenesisProposal bool

	// Sign, when set, asks main to print the signature for this identity and exit.
	Sign string
}

// ParseFlags validates flags and sets port number
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var envFile string

	fs := flag.NewFlagSet("quickly-vote", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Session
	fs.StringVar(&cfg.AdminIdentity, "admin", "", "Administrator identity")
	fs.BoolVar(&cfg.GenesisProposal, "genesis", false, "Seed a placeholder proposal at index 0")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.IdentitySalt, "identity-salt", "", "Identity signature salt (prefer env)")

	fs.StringVar(&envFile, "env", ".env", "Optional dotenv file")
	fs.StringVar(&cfg.Sign, "sign", "", "Print the signature for an identity and exit")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Existing environment variables win over the file
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	if cfg.IdentitySalt == "" {
		cfg.IdentitySalt = os.Getenv("IDENTITY_SALT")
	}
	if cfg.IdentitySalt == "" {
		return Config{}, errors.New("IDENTITY_SALT required")
	}
	if cfg.Sign != "" {
		return cfg, nil
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3318 // default
		}
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, fmt.Errorf("unsupported DATABASE_TYPE %q (sqlite or postgres)", cfg.DatabaseType)
	}

	if cfg.AdminIdentity == "" {
		cfg.AdminIdentity = os.Getenv("ADMIN_IDENTITY")
	}
	if cfg.AdminIdentity == "" {
		return Config{}, errors.New("ADMIN_IDENTITY required")
	}

	if !flagSet(fs, "genesis") {
		if s := os.Getenv("GENESIS_PROPOSAL"); s != "" {
			v, err := strconv.ParseBool(s)
			if err != nil {
				return Config{}, errors.New("invalid GENESIS_PROPOSAL env variable")
			}
			cfg.GenesisProposal = v
		}
	}

	return cfg, nil
}

func flagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}
