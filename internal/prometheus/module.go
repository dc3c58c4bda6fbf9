package prometheus

import (
	"crypto/x509"
	"encoding/pem"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"

	"github.com/dadrus/gjallar/internal/config"
)

var Module = fx.Options( //nolint:gochecknoglobals
	fx.Provide(initPrometheusRegistry),
)

func initPrometheusRegistry(conf *config.Configuration) (prometheus.Registerer, prometheus.Gatherer) {
	reg := prometheus.NewRegistry()

	reg.MustRegister(collectors.NewBuildInfoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	reg.MustRegister(collectors.NewGoCollector(collectors.WithGoCollectorRuntimeMetrics(collectors.MetricsAll)))

	registerCertificateExpiryCollector(conf, reg)

	return reg, reg
}

func registerCertificateExpiryCollector(conf *config.Configuration, reg prometheus.Registerer) {
	for service, tlsConf := range map[string]*config.TLS{
		"fallback":   conf.Serve.TLS,
		"management": conf.Management.TLS,
	} {
		if tlsConf == nil {
			continue
		}

		// broken tls configuration is reported by the affected service on start
		certs, err := loadCertificates(tlsConf.CertFile)
		if err != nil || len(certs) == 0 {
			continue
		}

		reg.MustRegister(NewCertificateExpirationCollector(service, certs...))
	}
}

func loadCertificates(path string) ([]*x509.Certificate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var certs []*x509.Certificate

	for len(data) != 0 {
		var block *pem.Block

		block, data = pem.Decode(data)
		if block == nil {
			break
		}

		if block.Type != "CERTIFICATE" {
			continue
		}

		cert, err := x509.ParseCertificate(block.Bytes)
		if err != nil {
			return nil, err
		}

		certs = append(certs, cert)
	}

	return certs, nil
}
