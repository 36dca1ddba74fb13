package main

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"jelly/internal/config"
	"jelly/internal/logging"
	"jelly/internal/session"
	"jelly/jellyfin"
)

type commandContext struct {
	configFlag *string
	serverFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	log        *slog.Logger
}

func newCommandContext(configFlag, serverFlag *string) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		serverFlag: serverFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// logger builds the CLI logger from the logging config section. Construction
// problems degrade to a no-op logger; commands still report their own errors.
func (c *commandContext) logger() *slog.Logger {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.log = logging.NewNop()
			return
		}
		log, err := logging.New(os.Stderr, logging.Options{
			Level:  cfg.Logging.Level,
			Format: cfg.Logging.Format,
		})
		if err != nil {
			c.log = logging.NewNop()
			return
		}
		c.log = log
	})
	return c.log
}

// serverURL resolves the server address from the --server flag, the config
// file, or the persisted session, in that order.
func (c *commandContext) serverURL(state session.State) (string, error) {
	if c.serverFlag != nil && strings.TrimSpace(*c.serverFlag) != "" {
		return strings.TrimRight(strings.TrimSpace(*c.serverFlag), "/"), nil
	}
	cfg, err := c.ensureConfig()
	if err != nil {
		return "", err
	}
	if cfg.Server.URL != "" {
		return cfg.Server.URL, nil
	}
	if state.ServerURL != "" {
		return state.ServerURL, nil
	}
	return "", errors.New("no server configured; pass --server or set server.url in the config file")
}

func (c *commandContext) sessionStore() (*session.FileStore, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return session.NewFileStore(cfg.Session.StatePath), nil
}

// device builds the device identity from config plus the persisted device id.
func (c *commandContext) device(state session.State) (jellyfin.DeviceProfile, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return jellyfin.DeviceProfile{}, err
	}
	return jellyfin.DeviceProfile{
		Client:   cfg.Device.Client,
		Device:   cfg.Device.Name,
		DeviceID: state.DeviceID,
		Version:  cfg.Device.Version,
	}, nil
}

func (c *commandContext) httpClient() (*http.Client, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return &http.Client{Timeout: time.Duration(cfg.Server.TimeoutSeconds) * time.Second}, nil
}

// anonymousClient builds an unauthenticated client for the resolved server.
func (c *commandContext) anonymousClient(state session.State) (*jellyfin.Client, error) {
	return c.buildClient(state, "")
}

// sessionClient builds a client resuming the persisted session token. It
// fails when no session is stored; callers direct the user to login.
func (c *commandContext) sessionClient() (*jellyfin.Client, session.State, error) {
	store, err := c.sessionStore()
	if err != nil {
		return nil, session.State{}, err
	}
	state, err := store.Load()
	if err != nil {
		return nil, session.State{}, err
	}
	if !state.Authenticated() {
		return nil, state, errors.New("not logged in; run `jellyctl login` first")
	}
	client, err := c.buildClient(state, state.AccessToken)
	if err != nil {
		return nil, state, err
	}
	return client, state, nil
}

func (c *commandContext) buildClient(state session.State, token string) (*jellyfin.Client, error) {
	rawURL, err := c.serverURL(state)
	if err != nil {
		return nil, err
	}
	doer, err := c.httpClient()
	if err != nil {
		return nil, err
	}
	device, err := c.device(state)
	if err != nil {
		return nil, err
	}

	opts := []jellyfin.Option{
		jellyfin.WithHTTPClient(doer),
		jellyfin.WithDevice(device),
	}
	if token != "" {
		opts = append(opts, jellyfin.WithToken(token))
	}
	client, err := jellyfin.Connect(rawURL, opts...)
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", rawURL, err)
	}
	return client, nil
}
