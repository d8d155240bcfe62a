package fitnessclass

import (
	"context"
	"mime/multipart"

	"github.com/BruksfildServices01/fitness-booking/internal/httperr"
	"github.com/BruksfildServices01/fitness-booking/internal/upload"
)

// storeCover validates fh and hands it to the store, returning its URL.
func storeCover(ctx context.Context, store upload.Store, fh *multipart.FileHeader, maxBytes int64) (string, error) {
	file, err := upload.FromMultipart(fh, maxBytes)
	if err != nil {
		return "", err
	}
	if err := file.Validate(maxBytes); err != nil {
		return "", err
	}

	url, err := store.Store(ctx, file.Data, file.ContentType, file.Name)
	if err != nil {
		if _, ok := httperr.As(err); ok {
			return "", err
		}
		return "", httperr.ErrUpload(err)
	}
	return url, nil
}
