package repository

import (
	"context"
	"errors"
	"testing"

	"cloudmart_service/internal/domain"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStore(t *testing.T) {
	remote := NewDocumentStore(newFakeCollection("p"), newFakeCollection("c"), newFakeCollection("o"), nil, newTestLogger())

	tests := []struct {
		name       string
		settings   RemoteSettings
		connectErr error
		wantMode   domain.Mode
		wantCalled bool
	}{
		{name: "no settings", settings: RemoteSettings{}, wantMode: domain.ModeLocal},
		{name: "endpoint only", settings: RemoteSettings{Endpoint: "https://acct.documents.azure.com:443/"}, wantMode: domain.ModeLocal},
		{name: "key only", settings: RemoteSettings{Key: "k"}, wantMode: domain.ModeLocal},
		{name: "connect fails", settings: RemoteSettings{Endpoint: "https://x", Key: "k"}, connectErr: errors.New("unauthorized"), wantMode: domain.ModeLocal, wantCalled: true},
		{name: "connect succeeds", settings: RemoteSettings{Endpoint: "https://x", Key: "k"}, wantMode: domain.ModeRemote, wantCalled: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			connect := func(ctx context.Context, s RemoteSettings, logger *logrus.Logger) (domain.Store, error) {
				called = true
				assert.Equal(t, tt.settings, s)
				if tt.connectErr != nil {
					return nil, tt.connectErr
				}
				return remote, nil
			}

			store := NewStore(context.Background(), tt.settings, connect, newTestLogger())
			assert.Equal(t, tt.wantMode, store.Mode())
			assert.Equal(t, tt.wantCalled, called)
		})
	}
}

func TestNewStore_FallbackIsSeeded(t *testing.T) {
	connect := func(ctx context.Context, s RemoteSettings, logger *logrus.Logger) (domain.Store, error) {
		return nil, errors.New("boom")
	}
	store := NewStore(context.Background(), RemoteSettings{Endpoint: "https://x", Key: "k"}, connect, newTestLogger())

	products, err := store.ListProducts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, SeedProducts(), products)
}

func TestConnectRemote_RejectsUnknownScheme(t *testing.T) {
	_, err := ConnectRemote(context.Background(), RemoteSettings{Endpoint: "mongodb://localhost", Key: "k"}, newTestLogger())
	assert.ErrorContains(t, err, `unsupported endpoint scheme "mongodb"`)
}

func TestConnectRemote_CosmosRejectsMalformedKey(t *testing.T) {
	_, err := ConnectRemote(context.Background(), RemoteSettings{
		Endpoint: "https://acct.documents.azure.com:443/",
		Key:      "%%% not base64 %%%",
	}, newTestLogger())
	assert.Error(t, err)
}
