package upload

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/fitness-booking/internal/config"
	"github.com/BruksfildServices01/fitness-booking/internal/httperr"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestFile_Validate(t *testing.T) {
	valid := pngBytes(t)

	tests := []struct {
		name     string
		file     File
		maxBytes int64
		wantCode string
	}{
		{name: "png accepted", file: File{Name: "cover.png", ContentType: "image/png", Data: valid}},
		{name: "mime with params", file: File{Name: "cover.PNG", ContentType: "image/png; charset=binary", Data: valid}},
		{name: "bad extension", file: File{Name: "cover.bmp", ContentType: "image/png", Data: valid}, wantCode: "invalid_file_type"},
		{name: "bad mime", file: File{Name: "cover.png", ContentType: "application/pdf", Data: valid}, wantCode: "invalid_file_type"},
		{name: "not an image", file: File{Name: "cover.png", ContentType: "image/png", Data: []byte("plain text")}, wantCode: "invalid_file_type"},
		{name: "empty", file: File{Name: "cover.png", ContentType: "image/png"}, wantCode: "empty_file"},
		{name: "too large", file: File{Name: "cover.png", ContentType: "image/png", Data: valid}, maxBytes: 10, wantCode: "file_too_large"},
		{name: "two megabytes", file: File{Name: "cover.png", ContentType: "image/png", Data: make([]byte, 2_000_000)}, wantCode: "file_too_large"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.file.Validate(tt.maxBytes)
			if tt.wantCode == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, httperr.IsCode(err, tt.wantCode), "got %v", err)
			assert.True(t, httperr.IsKind(err, httperr.KindValidation))
		})
	}
}

type fakePutter struct {
	input *s3.PutObjectInput
	body  []byte
	err   error
}

func (f *fakePutter) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.input = params
	if params.Body != nil {
		f.body, _ = io.ReadAll(params.Body)
	}
	if f.err != nil {
		return nil, f.err
	}
	return &s3.PutObjectOutput{}, nil
}

func TestS3Store_Store(t *testing.T) {
	putter := &fakePutter{}
	store := newS3Store(putter, config.Storage{
		Bucket: "covers",
		Region: "ap-southeast-1",
		Prefix: "/uploads/",
	})
	store.now = func() time.Time { return time.UnixMilli(1700000000000) }

	url, err := store.Store(context.Background(), []byte("img"), "image/png", "my yoga cover.png")
	require.NoError(t, err)

	key := *putter.input.Key
	assert.True(t, strings.HasPrefix(key, "uploads/1700000000000-"), key)
	assert.True(t, strings.HasSuffix(key, "-my_yoga_cover.png"), key)
	assert.Equal(t, "https://covers.s3.ap-southeast-1.amazonaws.com/"+key, url)
	assert.Equal(t, "covers", *putter.input.Bucket)
	assert.Equal(t, "image/png", *putter.input.ContentType)
	assert.Equal(t, types.ObjectCannedACLPublicRead, putter.input.ACL)
	assert.Equal(t, []byte("img"), putter.body)
}

func TestS3Store_KeysDoNotCollide(t *testing.T) {
	store := newS3Store(&fakePutter{}, config.Storage{Bucket: "covers", Region: "us-east-1"})
	store.now = func() time.Time { return time.UnixMilli(1) }

	assert.NotEqual(t, store.objectKey("a.png"), store.objectKey("a.png"))
}

func TestS3Store_CustomEndpointURL(t *testing.T) {
	store := newS3Store(&fakePutter{}, config.Storage{
		Bucket:   "covers",
		Endpoint: "http://minio:9000/",
		Prefix:   "uploads",
	})

	url, err := store.Store(context.Background(), []byte("img"), "image/png", "../../etc/passwd.png")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "http://minio:9000/covers/uploads/"), url)
	assert.True(t, strings.HasSuffix(url, "-passwd.png"), url)
}

func TestS3Store_PutFailure(t *testing.T) {
	store := newS3Store(&fakePutter{err: errors.New("boom")}, config.Storage{Bucket: "covers", Region: "us-east-1"})

	_, err := store.Store(context.Background(), []byte("img"), "image/png", "a.png")
	assert.Error(t, err)
}
