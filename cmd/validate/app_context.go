package validate

import (
	"github.com/rs/zerolog"

	"github.com/dadrus/gjallar/internal/config"
	"github.com/dadrus/gjallar/internal/validation"
	"github.com/dadrus/gjallar/internal/watcher"
)

type appContext struct {
	w watcher.Watcher
	v validation.Validator
	l zerolog.Logger
	c *config.Configuration
}

func (c *appContext) Watcher() watcher.Watcher        { return c.w }
func (c *appContext) Validator() validation.Validator { return c.v }
func (c *appContext) Logger() zerolog.Logger          { return c.l }
func (c *appContext) Config() *config.Configuration   { return c.c }
