package minio

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockAPI struct {
	mock.Mock
}

func (m *mockAPI) BucketExists(ctx context.Context, bucketName string) (bool, error) {
	args := m.Called(ctx, bucketName)
	return args.Bool(0), args.Error(1)
}

func (m *mockAPI) MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error {
	args := m.Called(ctx, bucketName, opts)
	return args.Error(0)
}

func (m *mockAPI) PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	args := m.Called(ctx, bucketName, objectName, reader, objectSize, opts)
	return args.Get(0).(minio.UploadInfo), args.Error(1)
}

func (m *mockAPI) RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error {
	args := m.Called(ctx, bucketName, objectName, opts)
	return args.Error(0)
}

func TestNewClientWithAPI(t *testing.T) {
	ctx := context.Background()

	t.Run("existing bucket", func(t *testing.T) {
		api := new(mockAPI)
		api.On("BucketExists", ctx, "covers").Return(true, nil)

		_, err := NewClientWithAPI(ctx, api, "covers")
		require.NoError(t, err)
		api.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("creates missing bucket", func(t *testing.T) {
		api := new(mockAPI)
		api.On("BucketExists", ctx, "covers").Return(false, nil)
		api.On("MakeBucket", ctx, "covers", mock.Anything).Return(nil)

		_, err := NewClientWithAPI(ctx, api, "covers")
		require.NoError(t, err)
		api.AssertExpectations(t)
	})

	t.Run("bucket check error", func(t *testing.T) {
		api := new(mockAPI)
		api.On("BucketExists", ctx, "covers").Return(false, errors.New("connection refused"))

		_, err := NewClientWithAPI(ctx, api, "covers")
		assert.Error(t, err)
	})
}

func TestClientStore(t *testing.T) {
	ctx := context.Background()

	newClient := func(t *testing.T) (*Client, *mockAPI) {
		t.Helper()
		api := new(mockAPI)
		api.On("BucketExists", ctx, "covers").Return(true, nil)
		c, err := NewClientWithAPI(ctx, api, "covers")
		require.NoError(t, err)
		return c, api
	}

	t.Run("uploads under covers prefix", func(t *testing.T) {
		c, api := newClient(t)
		body := strings.NewReader("png-bytes")
		api.On("PutObject", ctx, "covers", "covers/front.png", body, int64(-1), mock.Anything).
			Return(minio.UploadInfo{}, nil)

		key, err := c.Store(ctx, "front.png", body)
		require.NoError(t, err)
		assert.Equal(t, "covers/front.png", key)
	})

	t.Run("strips directory components", func(t *testing.T) {
		c, api := newClient(t)
		body := strings.NewReader("png-bytes")
		api.On("PutObject", ctx, "covers", "covers/front.png", body, int64(-1), mock.Anything).
			Return(minio.UploadInfo{}, nil)

		key, err := c.Store(ctx, "../secret/front.png", body)
		require.NoError(t, err)
		assert.Equal(t, "covers/front.png", key)
	})

	t.Run("upload error", func(t *testing.T) {
		c, api := newClient(t)
		api.On("PutObject", ctx, "covers", mock.Anything, mock.Anything, int64(-1), mock.Anything).
			Return(minio.UploadInfo{}, errors.New("bucket gone"))

		_, err := c.Store(ctx, "front.png", strings.NewReader("png-bytes"))
		assert.Error(t, err)
	})
}

func TestClientRemove(t *testing.T) {
	ctx := context.Background()

	api := new(mockAPI)
	api.On("BucketExists", ctx, "covers").Return(true, nil)
	c, err := NewClientWithAPI(ctx, api, "covers")
	require.NoError(t, err)

	api.On("RemoveObject", ctx, "covers", "covers/front.png", mock.Anything).Return(nil)
	require.NoError(t, c.Remove(ctx, "covers/front.png"))
	api.AssertExpectations(t)
}
