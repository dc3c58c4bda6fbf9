// Copyright 2023 Dimitrij Drus <dadrus@gmx.de>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package serve

import (
	"strings"

	"github.com/rs/zerolog"
	"go.uber.org/fx/fxevent"
)

// eventLogger makes fx emit its events via zerolog.
type eventLogger struct {
	l zerolog.Logger
}

//nolint:funlen,gocognit,cyclop
func (m *eventLogger) LogEvent(event fxevent.Event) {
	switch evt := event.(type) {
	case *fxevent.OnStartExecuting:
		m.l.Trace().
			Str("_functionName", evt.FunctionName).
			Str("_caller", evt.CallerName).
			Msg("OnStart hook executing")
	case *fxevent.OnStartExecuted:
		if evt.Err != nil {
			m.l.Error().
				Str("_functionName", evt.FunctionName).
				Str("_caller", evt.CallerName).
				Err(evt.Err).
				Msg("OnStart hook failed")
		} else {
			m.l.Trace().
				Str("_functionName", evt.FunctionName).
				Str("_caller", evt.CallerName).
				Str("_runtime", evt.Runtime.String()).
				Msg("OnStart hook executed")
		}
	case *fxevent.OnStopExecuting:
		m.l.Trace().
			Str("_functionName", evt.FunctionName).
			Str("_caller", evt.CallerName).
			Msg("OnStop hook executing")
	case *fxevent.OnStopExecuted:
		if evt.Err != nil {
			m.l.Error().
				Str("_functionName", evt.FunctionName).
				Str("_caller", evt.CallerName).
				Err(evt.Err).
				Msg("OnStop hook failed")
		} else {
			m.l.Trace().
				Str("_functionName", evt.FunctionName).
				Str("_caller", evt.CallerName).
				Str("_runtime", evt.Runtime.String()).
				Msg("OnStop hook executed")
		}
	case *fxevent.Supplied:
		if evt.Err != nil {
			m.l.Error().
				Str("_type", evt.TypeName).
				Str("_module", evt.ModuleName).
				Strs("_moduleTrace", evt.ModuleTrace).
				Strs("_stacktrace", evt.StackTrace).
				Err(evt.Err).
				Msg("Error encountered while supplying module")
		} else {
			m.l.Trace().
				Str("_type", evt.TypeName).
				Str("_module", evt.ModuleName).
				Strs("_moduleTrace", evt.ModuleTrace).
				Msg("Module supplied")
		}
	case *fxevent.Provided:
		if evt.Err != nil {
			m.l.Error().
				Str("_module", evt.ModuleName).
				Strs("_moduleTrace", evt.ModuleTrace).
				Strs("_stacktrace", evt.StackTrace).
				Err(evt.Err).
				Msg("Error encountered while providing module")
		} else {
			for _, rtype := range evt.OutputTypeNames {
				m.l.Trace().
					Str("_constructor", evt.ConstructorName).
					Str("_module", evt.ModuleName).
					Strs("_moduleTrace", evt.ModuleTrace).
					Strs("_stacktrace", evt.StackTrace).
					Bool("_private", evt.Private).
					Str("_type", rtype).
					Msg("Module provided")
			}
		}
	case *fxevent.Replaced:
		if evt.Err != nil {
			m.l.Error().
				Str("_module", evt.ModuleName).
				Strs("_moduleTrace", evt.ModuleTrace).
				Strs("_stacktrace", evt.StackTrace).
				Err(evt.Err).
				Msg("Error encountered while replacing module")
		} else {
			for _, rtype := range evt.OutputTypeNames {
				m.l.Trace().
					Str("_module", evt.ModuleName).
					Strs("_moduleTrace", evt.ModuleTrace).
					Strs("_stacktrace", evt.StackTrace).
					Str("_type", rtype).
					Msg("Module replaced")
			}
		}
	case *fxevent.Decorated:
		if evt.Err != nil {
			m.l.Error().
				Str("_module", evt.ModuleName).
				Strs("_moduleTrace", evt.ModuleTrace).
				Strs("_stacktrace", evt.StackTrace).
				Err(evt.Err).
				Msg("Error encountered while decorating module")
		} else {
			for _, rtype := range evt.OutputTypeNames {
				m.l.Trace().
					Str("_decorator", evt.DecoratorName).
					Str("_module", evt.ModuleName).
					Strs("_moduleTrace", evt.ModuleTrace).
					Strs("_stacktrace", evt.StackTrace).
					Str("_type", rtype).
					Msg("Module decorated")
			}
		}
	case *fxevent.Run:
		if evt.Err != nil {
			m.l.Error().
				Str("_name", evt.Name).
				Str("_kind", evt.Kind).
				Str("_module", evt.ModuleName).
				Err(evt.Err).
				Msg("Error returned")
		} else {
			m.l.Trace().
				Str("_name", evt.Name).
				Str("_kind", evt.Kind).
				Str("_module", evt.ModuleName).
				Str("_runtime", evt.Runtime.String()).
				Msg("Starting")
		}
	case *fxevent.Invoking:
		m.l.Trace().
			Str("_function", evt.FunctionName).
			Str("_module", evt.ModuleName).
			Msg("Invoking module")
	case *fxevent.Invoked:
		if evt.Err != nil {
			m.l.Error().
				Str("_function", evt.FunctionName).
				Str("_module", evt.ModuleName).
				Str("_stack", evt.Trace).
				Err(evt.Err).
				Msg("Invoke failed")
		} else {
			m.l.Trace().
				Str("_function", evt.FunctionName).
				Str("_module", evt.ModuleName).
				Str("_stack", evt.Trace).
				Msg("Invoked module")
		}
	case *fxevent.Stopping:
		m.l.Trace().
			Str("_signal", strings.ToUpper(evt.Signal.String())).
			Msg("Received signal")
	case *fxevent.Stopped:
		if evt.Err != nil {
			m.l.Error().Err(evt.Err).Msg("Stop failed")
		} else {
			m.l.Trace().Msg("Stopped")
		}
	case *fxevent.RollingBack:
		m.l.Error().Err(evt.StartErr).Msg("Start failed, rolling back")
	case *fxevent.RolledBack:
		if evt.Err != nil {
			m.l.Error().Err(evt.Err).Msg("Rollback failed")
		} else {
			m.l.Trace().Msg("Rollback succeeded")
		}
	case *fxevent.Started:
		if evt.Err != nil {
			m.l.Error().Err(evt.Err).Msg("Start failed")
		} else {
			m.l.Trace().Msg("Started")
		}
	case *fxevent.LoggerInitialized:
		if evt.Err != nil {
			m.l.Error().Err(evt.Err).Msg("Custom logger initialization failed")
		} else {
			m.l.Trace().
				Str("_constructor", evt.ConstructorName).
				Msg("Custom logger initialized")
		}
	}
}
