package internal

import (
	"go.uber.org/fx"

	"github.com/dadrus/gjallar/internal/app"
	cachemodule "github.com/dadrus/gjallar/internal/cache/module"
	"github.com/dadrus/gjallar/internal/config"
	"github.com/dadrus/gjallar/internal/handler/management"
	"github.com/dadrus/gjallar/internal/handler/metrics"
	"github.com/dadrus/gjallar/internal/prometheus"
	"github.com/dadrus/gjallar/internal/responder"
	"github.com/dadrus/gjallar/internal/templates"
	"github.com/dadrus/gjallar/internal/watcher"
)

// nolint
var Module = fx.Options(
	config.Module,
	watcher.Module,
	app.Module,
	templates.Module,
	cachemodule.Module,
	responder.Module,
	prometheus.Module,
	management.Module,
	metrics.Module,
)
