package config

import (
	"crypto/tls"
	"reflect"

	"github.com/rs/zerolog"

	"github.com/dadrus/gjallar/internal/gjallar"
	"github.com/dadrus/gjallar/internal/x"
	"github.com/dadrus/gjallar/internal/x/errorchain"
)

// Decode zeroLog LogLevels from strings.
// nolint: cyclop
func logLevelDecodeHookFunc(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String {
		return data, nil
	}

	if to != reflect.TypeOf(zerolog.Level(0)) {
		return data, nil
	}

	switch data {
	case "panic":
		return zerolog.PanicLevel, nil
	case "fatal":
		return zerolog.FatalLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	case "warn":
		return zerolog.WarnLevel, nil
	case "debug":
		return zerolog.DebugLevel, nil
	case "trace":
		return zerolog.TraceLevel, nil
	case "no":
		return zerolog.NoLevel, nil
	case "disabled":
		return zerolog.Disabled, nil
	case "info":
		return zerolog.InfoLevel, nil
	default:
		return zerolog.InfoLevel, nil
	}
}

func logFormatDecodeHookFunc(from reflect.Type, to reflect.Type, val any) (any, error) {
	if from.Kind() == reflect.String && to.Name() == "LogFormat" {
		return x.IfThenElse(val == "gelf", LogGelfFormat, LogTextFormat), nil
	}

	return val, nil
}

func DecodeTLSMinVersionHookFunc(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to != reflect.TypeOf(TLSMinVersion(0)) {
		return data, nil
	}

	switch data {
	case "TLS1.2":
		return TLSMinVersion(tls.VersionTLS12), nil
	case "TLS1.3":
		return TLSMinVersion(tls.VersionTLS13), nil
	default:
		return nil, errorchain.NewWithMessagef(gjallar.ErrConfiguration,
			"unsupported TLS version '%s'", data)
	}
}

func DecodeTLSCipherSuiteHookFunc(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.Slice || to != reflect.TypeOf(TLSCipherSuites{}) {
		return data, nil
	}

	values, ok := data.([]any)
	if !ok {
		return data, nil
	}

	suites := make(TLSCipherSuites, len(values))

	for idx, value := range values {
		name, ok := value.(string)
		if !ok {
			return data, nil
		}

		id, known := cipherSuiteID(name)
		if !known {
			return nil, errorchain.NewWithMessagef(gjallar.ErrConfiguration,
				"unsupported cipher suite '%s'", name)
		}

		suites[idx] = id
	}

	return suites, nil
}

func cipherSuiteID(name string) (uint16, bool) {
	for _, suite := range tls.CipherSuites() {
		if suite.Name == name {
			return suite.ID, true
		}
	}

	return 0, false
}
