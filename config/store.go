package config

//go:generate go run github.com/abice/go-enum -f=$GOFILE --marshal --names

import (
	"github.com/sirupsen/logrus"
)

// StoreType analysis store backend ENUM(
// sqlite // file based SQL database
// mysql // external MySQL database
// postgresql // external PostgreSQL database
// redis // Redis key value store
// )
type StoreType int

// StoreConfig configures the analysis store holding the persisted records
type StoreConfig struct {
	Type StoreType `yaml:"type" default:"sqlite"`

	// Target is backend specific: a file path for sqlite, a DSN for
	// mysql/postgresql, host:port for redis
	Target string `yaml:"target" default:"dnsvet.db"`

	Password           string   `yaml:"password"`
	Database           int      `yaml:"database" default:"0"`
	ConnectionAttempts int      `yaml:"connectionAttempts" default:"3"`
	ConnectionCooldown Duration `yaml:"connectionCooldown" default:"2s"`
}

// LogValues logs the effective store configuration
func (c *StoreConfig) LogValues(logger *logrus.Entry) {
	logger.Infof("type: %q", c.Type)
	logger.Infof("target: %q", c.Target)
	logger.Debugf("connectionAttempts: %d", c.ConnectionAttempts)
	logger.Debugf("connectionCooldown: %s", c.ConnectionCooldown)
}

// UnmarshalYAML implements the yaml unmarshaller for the backend type
func (x *StoreType) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var name string
	if err := unmarshal(&name); err != nil {
		return err
	}

	storeType, err := ParseStoreType(name)
	if err != nil {
		return err
	}

	*x = storeType

	return nil
}
