package minio

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	minioLib "github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeObjectAPI implements objectAPI without network.
type fakeObjectAPI struct {
	bucketExists    bool
	bucketExistsErr error
	makeBucketErr   error

	putKey string
	putErr error

	getRC  io.ReadCloser
	getErr error

	removeErr error

	statErr error
}

func (f *fakeObjectAPI) BucketExists(_ context.Context, _ string) (bool, error) {
	return f.bucketExists, f.bucketExistsErr
}
func (f *fakeObjectAPI) MakeBucket(_ context.Context, _ string, _ minioLib.MakeBucketOptions) error {
	return f.makeBucketErr
}
func (f *fakeObjectAPI) PutObject(_ context.Context, _ string, objectName string, _ io.Reader, _ int64, _ minioLib.PutObjectOptions) (minioLib.UploadInfo, error) {
	f.putKey = objectName
	return minioLib.UploadInfo{}, f.putErr
}
func (f *fakeObjectAPI) GetObject(_ context.Context, _ string, _ string, _ minioLib.GetObjectOptions) (io.ReadCloser, error) {
	return f.getRC, f.getErr
}
func (f *fakeObjectAPI) RemoveObject(_ context.Context, _ string, _ string, _ minioLib.RemoveObjectOptions) error {
	return f.removeErr
}
func (f *fakeObjectAPI) StatObject(_ context.Context, _ string, _ string, _ minioLib.StatObjectOptions) (minioLib.ObjectInfo, error) {
	return minioLib.ObjectInfo{}, f.statErr
}

func TestNewClientWithAPI(t *testing.T) {
	ctx := context.Background()

	t.Run("bucket exists", func(t *testing.T) {
		c, err := NewClientWithAPI(ctx, &fakeObjectAPI{bucketExists: true}, "books")
		require.NoError(t, err)
		assert.Equal(t, "books", c.bucket)
	})

	t.Run("bucket created", func(t *testing.T) {
		c, err := NewClientWithAPI(ctx, &fakeObjectAPI{bucketExists: false}, "books")
		require.NoError(t, err)
		assert.NotNil(t, c)
	})

	t.Run("bucket check error", func(t *testing.T) {
		c, err := NewClientWithAPI(ctx, &fakeObjectAPI{bucketExistsErr: errors.New("boom")}, "books")
		assert.Nil(t, c)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to ensure bucket exists")
	})

	t.Run("bucket create error", func(t *testing.T) {
		c, err := NewClientWithAPI(ctx, &fakeObjectAPI{makeBucketErr: errors.New("boom")}, "books")
		assert.Nil(t, c)
		require.Error(t, err)
	})
}

func TestClient_Upload(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		api := &fakeObjectAPI{}
		c := &Client{api: api, bucket: "books"}
		err := c.Upload(ctx, "books/1/key", bytes.NewReader([]byte("body")))
		require.NoError(t, err)
		assert.Equal(t, "books/1/key", api.putKey)
	})

	t.Run("error", func(t *testing.T) {
		api := &fakeObjectAPI{putErr: errors.New("put-fail")}
		c := &Client{api: api, bucket: "books"}
		err := c.Upload(ctx, "books/1/key", bytes.NewReader([]byte("body")))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to upload object")
	})
}

func TestClient_Download(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		api := &fakeObjectAPI{getRC: io.NopCloser(bytes.NewReader([]byte("body")))}
		c := &Client{api: api, bucket: "books"}
		rc, err := c.Download(ctx, "books/1/key")
		require.NoError(t, err)
		defer rc.Close()
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		assert.Equal(t, []byte("body"), data)
	})

	t.Run("error", func(t *testing.T) {
		api := &fakeObjectAPI{getErr: errors.New("get-fail")}
		c := &Client{api: api, bucket: "books"}
		rc, err := c.Download(ctx, "books/1/key")
		assert.Nil(t, rc)
		require.Error(t, err)
	})
}

func TestClient_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		c := &Client{api: &fakeObjectAPI{}, bucket: "books"}
		require.NoError(t, c.Delete(ctx, "books/1/key"))
	})

	t.Run("error", func(t *testing.T) {
		c := &Client{api: &fakeObjectAPI{removeErr: errors.New("remove-fail")}, bucket: "books"}
		require.Error(t, c.Delete(ctx, "books/1/key"))
	})
}

func TestClient_Exists(t *testing.T) {
	ctx := context.Background()

	t.Run("exists", func(t *testing.T) {
		c := &Client{api: &fakeObjectAPI{}, bucket: "books"}
		ok, err := c.Exists(ctx, "books/1/key")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("not found", func(t *testing.T) {
		c := &Client{api: &fakeObjectAPI{statErr: minioLib.ErrorResponse{Code: "NoSuchKey"}}, bucket: "books"}
		ok, err := c.Exists(ctx, "books/1/absent")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("other error", func(t *testing.T) {
		c := &Client{api: &fakeObjectAPI{statErr: errors.New("stat-fail")}, bucket: "books"}
		ok, err := c.Exists(ctx, "books/1/key")
		require.Error(t, err)
		assert.False(t, ok)
	})
}
