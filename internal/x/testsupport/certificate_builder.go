package testsupport

import (
	"crypto/rand"
	"crypto/sha1"
	"crypto/x509"
	"crypto/x509/pkix"
	"math/big"
	"net"
	"time"

	"github.com/dadrus/gjallar/internal/gjallar"
	"github.com/dadrus/gjallar/internal/x"
	"github.com/dadrus/gjallar/internal/x/errorchain"
)

type CertificateBuilderOption func(*CertificateBuilder)

type CertificateBuilder struct {
	template   *x509.Certificate
	pubKey     any
	signerKey  any
	issuer     *x509.Certificate
	selfSigned bool
	deriveSKID bool
}

func NewCertificateBuilder(opts ...CertificateBuilderOption) *CertificateBuilder {
	builder := &CertificateBuilder{template: &x509.Certificate{}}

	for _, opt := range opts {
		opt(builder)
	}

	if builder.template.IsCA {
		builder.template.KeyUsage = x509.KeyUsageCertSign | x509.KeyUsageCRLSign
	}

	return builder
}

func (cb *CertificateBuilder) Build() (*x509.Certificate, error) {
	if cb.deriveSKID {
		skid, err := subjectKeyID(cb.pubKey)
		if err != nil {
			return nil, err
		}

		cb.template.SubjectKeyId = skid
	}

	raw, err := x509.CreateCertificate(
		rand.Reader,
		cb.template,
		x.IfThenElse(cb.selfSigned, cb.template, cb.issuer),
		cb.pubKey,
		cb.signerKey,
	)
	if err != nil {
		return nil, err
	}

	return x509.ParseCertificate(raw)
}

// see RFC 3280, section 4.2.1.2
func subjectKeyID(pubKey any) ([]byte, error) {
	marshaled, err := x509.MarshalPKIXPublicKey(pubKey)
	if err != nil {
		return nil, errorchain.NewWithMessage(gjallar.ErrInternal,
			"failed to calculated subject public key id").CausedBy(err)
	}

	sum := sha1.Sum(marshaled) // nolint: gosec

	return sum[:], nil
}

func WithValidity(notBefore time.Time, duration time.Duration) CertificateBuilderOption {
	return func(builder *CertificateBuilder) {
		builder.template.NotBefore = notBefore
		builder.template.NotAfter = notBefore.Add(duration)
	}
}

func WithSerialNumber(sn *big.Int) CertificateBuilderOption {
	return func(builder *CertificateBuilder) {
		builder.template.SerialNumber = sn
	}
}

func WithSubject(name pkix.Name) CertificateBuilderOption {
	return func(builder *CertificateBuilder) {
		builder.template.Subject = name
	}
}

func WithKeyUsage(keyUsage x509.KeyUsage) CertificateBuilderOption {
	return func(builder *CertificateBuilder) {
		builder.template.KeyUsage = keyUsage
	}
}

func WithExtendedKeyUsage(usage x509.ExtKeyUsage) CertificateBuilderOption {
	return func(builder *CertificateBuilder) {
		builder.template.ExtKeyUsage = append(builder.template.ExtKeyUsage, usage)
	}
}

func WithSubjectPubKey(key any, alg x509.SignatureAlgorithm) CertificateBuilderOption {
	return func(builder *CertificateBuilder) {
		builder.template.SignatureAlgorithm = alg
		builder.pubKey = key
	}
}

func WithSignaturePrivKey(key any) CertificateBuilderOption {
	return func(builder *CertificateBuilder) {
		builder.signerKey = key
	}
}

func WithSelfSigned() CertificateBuilderOption {
	return func(builder *CertificateBuilder) {
		builder.selfSigned = true
	}
}

func WithIsCA() CertificateBuilderOption {
	return func(builder *CertificateBuilder) {
		builder.template.IsCA = true
		builder.template.BasicConstraintsValid = true
	}
}

func WithIssuer(key any, cert *x509.Certificate) CertificateBuilderOption {
	return func(builder *CertificateBuilder) {
		builder.signerKey = key
		builder.issuer = cert
	}
}

func WithGeneratedSubjectKeyID() CertificateBuilderOption {
	return func(builder *CertificateBuilder) {
		builder.deriveSKID = true
	}
}

func WithIPAddresses(ips []net.IP) CertificateBuilderOption {
	return func(builder *CertificateBuilder) {
		builder.template.IPAddresses = ips
	}
}

func WithDNSNames(names []string) CertificateBuilderOption {
	return func(builder *CertificateBuilder) {
		builder.template.DNSNames = names
	}
}
