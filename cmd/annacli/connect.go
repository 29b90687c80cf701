package main

import (
	"strconv"

	"github.com/sqldef/annadriver/config"
	"github.com/sqldef/annadriver/driver"
	"github.com/sqldef/annadriver/transport"
	"github.com/sqldef/annadriver/tyson"
)

func connect() (*driver.Conn, error) {
	cfg, err := config.Load(options.Config)
	if err != nil {
		return nil, err
	}

	t, err := transport.DialNATS(cfg.URL, cfg.Subject)
	if err != nil {
		return nil, err
	}

	logger := driver.Logger(driver.NullLogger{})
	if options.Debug {
		logger = driver.StdoutLogger{}
	}
	return driver.NewConn(t, logger), nil
}

// parseCLIValue turns a bare command-line argument into a scalar
// tyson.Value: numeric-looking text becomes a Number, everything else a
// String.
func parseCLIValue(s string) tyson.Value {
	if _, err := strconv.ParseFloat(s, 64); err == nil {
		return tyson.Number(s)
	}
	return tyson.String(s)
}
