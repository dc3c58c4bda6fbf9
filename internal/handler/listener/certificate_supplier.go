package listener

import (
	"crypto/tls"
	"sync"

	"github.com/rs/zerolog"

	"github.com/dadrus/gjallar/internal/config"
	"github.com/dadrus/gjallar/internal/gjallar"
	"github.com/dadrus/gjallar/internal/x/errorchain"
)

type certificateSupplier struct {
	name     string
	certFile string
	keyFile  string

	tlsCert *tls.Certificate
	mut     sync.Mutex
}

func newCertificateSupplier(name string, conf *config.TLS) (*certificateSupplier, error) {
	cs := &certificateSupplier{
		name:     name,
		certFile: conf.CertFile,
		keyFile:  conf.KeyFile,
	}

	if err := cs.load(); err != nil {
		return nil, err
	}

	return cs, nil
}

func (cs *certificateSupplier) load() error {
	if len(cs.certFile) == 0 || len(cs.keyFile) == 0 {
		return errorchain.NewWithMessage(gjallar.ErrConfiguration,
			"no certificate and key files specified for tls")
	}

	cert, err := tls.LoadX509KeyPair(cs.certFile, cs.keyFile)
	if err != nil {
		return errorchain.NewWithMessage(gjallar.ErrInternal, "failed loading tls certificate").
			CausedBy(err)
	}

	cs.mut.Lock()
	cs.tlsCert = &cert
	cs.mut.Unlock()

	return nil
}

func (cs *certificateSupplier) certificate(info *tls.ClientHelloInfo) (*tls.Certificate, error) {
	cs.mut.Lock()
	cert := cs.tlsCert
	cs.mut.Unlock()

	if err := info.SupportsCertificate(cert); err != nil {
		return nil, err
	}

	return cert, nil
}

func (cs *certificateSupplier) OnChanged(log zerolog.Logger) {
	if err := cs.load(); err != nil {
		log.Warn().Err(err).
			Str("_service", cs.name).
			Msg("TLS certificate reload failed")
	} else {
		log.Info().
			Str("_service", cs.name).
			Msg("TLS certificate reloaded")
	}
}
