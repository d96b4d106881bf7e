package fiberlog

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	TagPid      = "pid"
	TagLatency  = "latency"
	TagStatus   = "status"
	TagMethod   = "method"
	TagPath     = "path"
	TagURL      = "url"
	TagIP       = "ip"
	TagUA       = "ua"
	TagBody     = "body"
	TagResBody  = "resBody"
	TagUserID   = "userID"
	RequestID   = "requestID"
	maxBodySize = 4096
)

// data значения одного запроса
type data struct {
	pid      int
	start    time.Time
	end      time.Time
	skipBody bool
}

// FuncTag значение поля лога для запроса
type FuncTag func(c *fiber.Ctx, d *data) interface{}

func getFuncTagMap(cfg Config) map[string]FuncTag {
	all := map[string]FuncTag{
		TagPid:     func(c *fiber.Ctx, d *data) interface{} { return d.pid },
		TagLatency: func(c *fiber.Ctx, d *data) interface{} { return d.end.Sub(d.start).String() },
		TagStatus:  func(c *fiber.Ctx, d *data) interface{} { return c.Response().StatusCode() },
		TagMethod:  func(c *fiber.Ctx, d *data) interface{} { return c.Method() },
		TagPath:    func(c *fiber.Ctx, d *data) interface{} { return c.Path() },
		TagURL:     func(c *fiber.Ctx, d *data) interface{} { return c.OriginalURL() },
		TagIP:      func(c *fiber.Ctx, d *data) interface{} { return c.IP() },
		TagUA:      func(c *fiber.Ctx, d *data) interface{} { return c.Get(fiber.HeaderUserAgent) },
		TagBody: func(c *fiber.Ctx, d *data) interface{} {
			// файлы не логируем
			if d.skipBody || c.Is("multipart") || len(c.Body()) > maxBodySize {
				return ""
			}
			return string(c.Body())
		},
		TagResBody: func(c *fiber.Ctx, d *data) interface{} {
			body := c.Response().Body()
			if len(body) > maxBodySize {
				return ""
			}
			return string(body)
		},
		TagUserID: func(c *fiber.Ctx, d *data) interface{} {
			if userID, ok := c.Locals(TagUserID).(string); ok {
				return userID
			}
			return ""
		},
		RequestID: func(c *fiber.Ctx, d *data) interface{} {
			return c.GetRespHeader(fiber.HeaderXRequestID)
		},
	}
	result := make(map[string]FuncTag, len(cfg.Tags))
	for _, tag := range cfg.Tags {
		if ft, ok := all[tag]; ok {
			result[tag] = ft
		}
	}
	return result
}
