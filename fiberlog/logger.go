package fiberlog

import (
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

const logMessage = "запрос api"

func fields(ftm map[string]FuncTag, c *fiber.Ctx, d *data) log.Fields {
	f := make(log.Fields, len(ftm))
	for k, ft := range ftm {
		value := ft(c, d)
		if s, ok := value.(string); ok && s == "" {
			continue
		}
		f[k] = value
	}
	return f
}

// New creates a new middleware handler
func New(config ...Config) fiber.Handler {
	cfg := ConfigDefault
	if len(config) > 0 {
		cfg = config[0]
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.StandardLogger()
	}
	pid := os.Getpid()
	ftm := getFuncTagMap(cfg)
	return func(c *fiber.Ctx) error {
		d := &data{pid: pid, start: time.Now(), skipBody: skipBody(cfg.SkipBody, c.Path())}
		err := c.Next()
		d.end = time.Now()
		if c.Method() == fiber.MethodOptions {
			return err
		}

		entry := logger.WithFields(fields(ftm, c, d))
		status := c.Response().StatusCode()
		if err != nil {
			entry = entry.WithError(err)
		}
		switch {
		case status >= fiber.StatusInternalServerError:
			entry.Error(logMessage)
		case status >= fiber.StatusMultipleChoices:
			entry.Warn(logMessage)
		default:
			entry.Info(logMessage)
		}
		return err
	}
}

func skipBody(paths []string, path string) bool {
	for _, p := range paths {
		if strings.HasSuffix(path, p) {
			return true
		}
	}
	return false
}
