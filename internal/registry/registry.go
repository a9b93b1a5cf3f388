// Package registry resolves exchange drivers by name.
package registry

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/navid-fn/exchange/configs"
	"github.com/navid-fn/exchange/internal/drivers/base"
	"github.com/navid-fn/exchange/internal/drivers/bitpin"
	"github.com/navid-fn/exchange/internal/drivers/nobitex"
	"github.com/navid-fn/exchange/internal/drivers/wallex"
	"github.com/navid-fn/exchange/internal/exchange"
	"github.com/navid-fn/exchange/internal/logger"
)

// Constructor builds a driver from its options.
type Constructor func(base.Options) exchange.Driver

// Constructors maps every supported exchange to its driver.
var Constructors = map[exchange.Name]Constructor{
	exchange.Nobitex: func(o base.Options) exchange.Driver { return nobitex.New(o) },
	exchange.Wallex:  func(o base.Options) exchange.Driver { return wallex.New(o) },
	exchange.Bitpin:  func(o base.Options) exchange.Driver { return bitpin.New(o) },
}

// Registry holds one driver per exchange. Drivers are built once and are
// safe for concurrent use.
type Registry struct {
	drivers     map[exchange.Name]exchange.Driver
	defaultName exchange.Name
}

// New builds every driver from cfg.
func New(cfg *configs.AppConfig, log logrus.FieldLogger) (*Registry, error) {
	if log == nil {
		log = logger.Discard()
	}

	drivers := make([]exchange.Driver, 0, len(Constructors))
	for _, name := range exchange.Names {
		ec := cfg.Exchanges[string(name)]
		drivers = append(drivers, Constructors[name](base.Options{
			BaseURL:   ec.BaseURL,
			APIKey:    ec.APIKey,
			SecretKey: ec.SecretKey,
			AppName:   cfg.AppName,
			Precision: cfg.Precision,
			Timeout:   cfg.HTTP.Timeout,
			RateLimit: cfg.HTTP.RateLimit,
			Logger:    log,
		}))
		log.WithFields(logrus.Fields{
			"exchange":      name,
			"authenticated": ec.APIKey != "",
		}).Debug("Driver registered")
	}

	return FromDrivers(exchange.Name(cfg.DefaultExchange), drivers...)
}

// FromDrivers builds a registry over already constructed drivers.
func FromDrivers(defaultName exchange.Name, drivers ...exchange.Driver) (*Registry, error) {
	r := &Registry{drivers: make(map[exchange.Name]exchange.Driver, len(drivers))}
	for _, d := range drivers {
		r.drivers[d.Name()] = d
	}

	if _, ok := r.drivers[defaultName]; !ok {
		return nil, exchange.Misconfigured("default exchange %q is not supported", defaultName)
	}
	r.defaultName = defaultName
	return r, nil
}

// Resolve returns the named driver, or the default one when name is empty.
func (r *Registry) Resolve(name string) (exchange.Driver, error) {
	if name == "" {
		return r.drivers[r.defaultName], nil
	}
	d, ok := r.drivers[exchange.Name(strings.ToLower(name))]
	if !ok {
		return nil, fmt.Errorf("%w %q", exchange.ErrUnknownExchange, name)
	}
	return d, nil
}

func (r *Registry) Default() exchange.Name { return r.defaultName }

// Names lists the registered exchanges in a stable order.
func (r *Registry) Names() []exchange.Name {
	names := make([]exchange.Name, 0, len(r.drivers))
	for _, name := range exchange.Names {
		if _, ok := r.drivers[name]; ok {
			names = append(names, name)
		}
	}
	return names
}
