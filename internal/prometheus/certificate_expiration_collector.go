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

package prometheus

import (
	"crypto/x509"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type certificateExpirationCollector struct {
	certificates []*x509.Certificate
	desc         *prometheus.Desc
}

// NewCertificateExpirationCollector creates a prometheus.Collector, which exposes the
// time left until expiration for each of the given certificates. The service name is
// attached as a constant label, allowing registration of multiple collectors with the
// same registry.
func NewCertificateExpirationCollector(service string, certificates ...*x509.Certificate) prometheus.Collector {
	return &certificateExpirationCollector{
		certificates: certificates,
		desc: prometheus.NewDesc(
			"certificate_expiry_seconds",
			"Number of seconds until certificate expires",
			[]string{"dns_names", "issuer", "serial_nr", "subject"},
			prometheus.Labels{"service": service},
		),
	}
}

func (c *certificateExpirationCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.desc
}

func (c *certificateExpirationCollector) Collect(ch chan<- prometheus.Metric) {
	for _, cert := range c.certificates {
		ch <- prometheus.MustNewConstMetric(
			c.desc,
			prometheus.GaugeValue,
			time.Until(cert.NotAfter).Seconds(),
			strings.Join(cert.DNSNames, ","),
			cert.Issuer.String(),
			cert.SerialNumber.String(),
			cert.Subject.String(),
		)
	}
}
