// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-config-access/internal/adapter"
	"github.com/MKhiriev/go-config-access/internal/mock"
	"github.com/MKhiriev/go-config-access/models"
)

func newMockRemote(t *testing.T) (*Backend, *mock.MockServerAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	server := mock.NewMockServerAdapter(ctrl)
	return newRemoteBackend("http://conf.local", server, nil), server
}

func TestRemote_GetPut(t *testing.T) {
	ctx := context.Background()
	b, server := newMockRemote(t)
	require.NoError(t, b.SetPrefix(ctx, "svc"))

	gomock.InOrder(
		server.EXPECT().Put(ctx, "svc/db/host", "localhost").Return(nil),
		server.EXPECT().Get(ctx, "svc/db/host").Return("localhost", true, nil),
		server.EXPECT().Get(ctx, "svc/db/port").Return("", false, nil),
	)

	require.NoError(t, b.PutString(ctx, "db/host", "localhost"))

	value, ok, err := b.GetString(ctx, "db/host")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "localhost", value)

	_, ok, err = b.GetString(ctx, "db/port")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRemote_ExistsUsesHead(t *testing.T) {
	ctx := context.Background()
	b, server := newMockRemote(t)

	server.EXPECT().Exists(ctx, "a/b").Return(true, nil)

	ok, err := b.Exists(ctx, "a/b")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRemote_Errors(t *testing.T) {
	ctx := context.Background()
	b, server := newMockRemote(t)

	server.EXPECT().Put(ctx, "k", "v").Return(adapter.ErrUnauthorized)
	server.EXPECT().List(ctx, "").Return(nil, errors.New("connection reset"))

	err := b.PutString(ctx, "k", "v")
	assert.ErrorIs(t, err, models.ErrBackendFailure)
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)

	_, err = b.GetRecursive(ctx, "")
	assert.ErrorIs(t, err, models.ErrBackendFailure)
}

func TestRemote_Recursive(t *testing.T) {
	ctx := context.Background()
	b, server := newMockRemote(t)
	require.NoError(t, b.SetPrefix(ctx, "svc"))
	b.SetPathSeparator('.')

	server.EXPECT().List(ctx, "svc/db").Return(models.KeyValueMap{
		"svc/db/host": "h",
		"svc/db/port": "5432",
	}, nil)

	got, err := b.GetRecursiveMap(ctx, "db")
	require.NoError(t, err)
	assert.Equal(t, models.KeyValueMap{"db.host": "h", "db.port": "5432"}, got)
}
