package storage

import (
	"context"
	"io"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-insights/internal/domain/services"
)

type fakeStore struct {
	exists  bool
	made    []string
	objects map[string][]byte
	types   map[string]string
}

func newFakeStore(exists bool) *fakeStore {
	return &fakeStore{exists: exists, objects: map[string][]byte{}, types: map[string]string{}}
}

func (f *fakeStore) BucketExists(context.Context, string) (bool, error) { return f.exists, nil }

func (f *fakeStore) MakeBucket(_ context.Context, bucket string, _ minio.MakeBucketOptions) error {
	f.made = append(f.made, bucket)
	return nil
}

func (f *fakeStore) PutObject(_ context.Context, _, object string, r io.Reader, size int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return minio.UploadInfo{}, err
	}
	f.objects[object] = data
	f.types[object] = opts.ContentType
	return minio.UploadInfo{Key: object, Size: size}, nil
}

func (f *fakeStore) RemoveObject(_ context.Context, _, object string, _ minio.RemoveObjectOptions) error {
	delete(f.objects, object)
	return nil
}

func TestEnsureBucket(t *testing.T) {
	store := newFakeStore(false)
	require.NoError(t, NewMinIOClientWithStore(store, "recordings").ensureBucket(context.Background()))
	assert.Equal(t, []string{"recordings"}, store.made)

	store = newFakeStore(true)
	require.NoError(t, NewMinIOClientWithStore(store, "recordings").ensureBucket(context.Background()))
	assert.Empty(t, store.made)
}

func TestArchiveAndRemoveAudio(t *testing.T) {
	store := newFakeStore(true)
	archive := NewMinIOClientWithStore(store, "recordings")
	ctx := context.Background()

	require.NoError(t, archive.ArchiveAudio(ctx, "abc", services.Audio{Data: []byte("ID3")}))
	assert.Equal(t, []byte("ID3"), store.objects["meetings/abc.mp3"])
	assert.Equal(t, "audio/mpeg", store.types["meetings/abc.mp3"])

	require.NoError(t, archive.RemoveAudio(ctx, "abc"))
	assert.Empty(t, store.objects)
}
