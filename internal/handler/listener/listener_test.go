package listener

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"errors"
	"fmt"
	"math/big"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dadrus/gjallar/internal/config"
	"github.com/dadrus/gjallar/internal/gjallar"
	"github.com/dadrus/gjallar/internal/watcher/mocks"
	"github.com/dadrus/gjallar/internal/x/pkix/pemx"
	"github.com/dadrus/gjallar/internal/x/testsupport"
)

func writeTLSFiles(t *testing.T, dir string) (string, string, *x509.Certificate) {
	t.Helper()

	privKey, err := ecdsa.GenerateKey(elliptic.P384(), rand.Reader)
	require.NoError(t, err)

	cert, err := testsupport.NewCertificateBuilder(testsupport.WithValidity(time.Now(), 10*time.Hour),
		testsupport.WithSerialNumber(big.NewInt(1)),
		testsupport.WithSubject(pkix.Name{
			CommonName:   "test cert",
			Organization: []string{"Test"},
			Country:      []string{"EU"},
		}),
		testsupport.WithSubjectPubKey(&privKey.PublicKey, x509.ECDSAWithSHA384),
		testsupport.WithSelfSigned(),
		testsupport.WithSignaturePrivKey(privKey)).
		Build()
	require.NoError(t, err)

	privKeyPEM, err := pemx.BuildPEM(pemx.WithECDSAPrivateKey(privKey))
	require.NoError(t, err)

	certPEM, err := pemx.BuildPEM(pemx.WithX509Certificate(cert))
	require.NoError(t, err)

	certFile := filepath.Join(dir, "cert.pem")
	keyFile := filepath.Join(dir, "key.pem")

	require.NoError(t, os.WriteFile(certFile, certPEM, 0o600))
	require.NoError(t, os.WriteFile(keyFile, privKeyPEM, 0o600))

	return certFile, keyFile, cert
}

func TestCreateNewListener(t *testing.T) {
	t.Parallel()

	certFile, keyFile, _ := writeTLSFiles(t, t.TempDir())

	for _, tc := range []struct {
		uc           string
		network      string
		host         string
		tlsConf      *config.TLS
		setupWatcher func(t *testing.T, cw *mocks.WatcherMock)
		assert       func(t *testing.T, err error, ln net.Listener, port string)
	}{
		{
			uc:      "creation fails",
			network: "foo",
			assert: func(t *testing.T, err error, _ net.Listener, _ string) {
				t.Helper()

				require.Error(t, err)
				assert.ErrorIs(t, err, gjallar.ErrInternal)
				assert.Contains(t, err.Error(), "failed creating listener")
			},
		},
		{
			uc:      "listener without TLS",
			network: "tcp",
			host:    "127.0.0.1",
			assert: func(t *testing.T, err error, ln net.Listener, port string) {
				t.Helper()

				require.NoError(t, err)
				require.NotNil(t, ln)

				assert.Equal(t, "tcp", ln.Addr().Network())
				assert.Equal(t, "127.0.0.1:"+port, ln.Addr().String())
			},
		},
		{
			uc:      "creation of listener with TLS fails",
			network: "tcp",
			host:    "127.0.0.1",
			tlsConf: &config.TLS{CertFile: "/no/such/cert", KeyFile: "/no/such/key"},
			assert: func(t *testing.T, err error, _ net.Listener, _ string) {
				t.Helper()

				require.Error(t, err)
				assert.ErrorIs(t, err, gjallar.ErrInternal)
				assert.Contains(t, err.Error(), "failed loading")
			},
		},
		{
			uc:      "registration for certificate updates fails",
			network: "tcp",
			host:    "127.0.0.1",
			tlsConf: &config.TLS{CertFile: certFile, KeyFile: keyFile},
			setupWatcher: func(t *testing.T, cw *mocks.WatcherMock) {
				t.Helper()

				cw.EXPECT().Add(certFile, mock.Anything).Return(errors.New("test error"))
			},
			assert: func(t *testing.T, err error, _ net.Listener, _ string) {
				t.Helper()

				require.Error(t, err)
				assert.ErrorIs(t, err, gjallar.ErrInternal)
				assert.Contains(t, err.Error(), "failed registering watcher")
			},
		},
		{
			uc:      "listener with TLS",
			network: "tcp",
			host:    "127.0.0.1",
			tlsConf: &config.TLS{CertFile: certFile, KeyFile: keyFile},
			setupWatcher: func(t *testing.T, cw *mocks.WatcherMock) {
				t.Helper()

				cw.EXPECT().Add(certFile, mock.Anything).Return(nil)
				cw.EXPECT().Add(keyFile, mock.Anything).Return(nil)
			},
			assert: func(t *testing.T, err error, ln net.Listener, port string) {
				t.Helper()

				require.NoError(t, err)
				require.NotNil(t, ln)

				assert.Equal(t, "tcp", ln.Addr().Network())
				assert.Contains(t, ln.Addr().String(), port)
			},
		},
	} {
		t.Run(tc.uc, func(t *testing.T) {
			// GIVEN
			port, err := testsupport.GetFreePort()
			require.NoError(t, err)

			cw := mocks.NewWatcherMock(t)
			if tc.setupWatcher != nil {
				tc.setupWatcher(t, cw)
			}

			// WHEN
			ln, err := New(tc.network, "test", fmt.Sprintf("%s:%d", tc.host, port), tc.tlsConf, cw)

			// THEN
			defer func() {
				if ln != nil {
					ln.Close()
				}
			}()

			tc.assert(t, err, ln, strconv.Itoa(port))
		})
	}
}

func TestCertificateSupplierReload(t *testing.T) {
	t.Parallel()

	testDir := t.TempDir()
	certFile, keyFile, cert := writeTLSFiles(t, testDir)

	supplier, err := newCertificateSupplier("test", &config.TLS{CertFile: certFile, KeyFile: keyFile})
	require.NoError(t, err)
	require.Equal(t, cert.Raw, supplier.tlsCert.Certificate[0])

	t.Run("reload with broken certificate keeps the loaded one", func(t *testing.T) {
		// WHEN
		require.NoError(t, os.WriteFile(certFile, []byte("broken"), 0o600))
		supplier.OnChanged(zerolog.Nop())

		// THEN
		assert.Equal(t, cert.Raw, supplier.tlsCert.Certificate[0])
	})

	t.Run("reload with updated certificate", func(t *testing.T) {
		// WHEN
		_, _, newCert := writeTLSFiles(t, testDir)
		supplier.OnChanged(zerolog.Nop())

		// THEN
		assert.Equal(t, newCert.Raw, supplier.tlsCert.Certificate[0])
	})
}
