package service_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"kuchi/restaurant-svc/internal/domain"
	"kuchi/restaurant-svc/internal/mocks"
	"kuchi/restaurant-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAssets(t *testing.T) (*service.AssetManager, *mocks.ObjectStore, *mocks.URLCache) {
	store := mocks.NewObjectStore(t)
	cache := mocks.NewURLCache(t)
	log, _ := nullLog()
	return service.NewAssetManager(store, cache, time.Hour, log), store, cache
}

func TestImageKey(t *testing.T) {
	assets, _, _ := newAssets(t)
	assets.Now = func() time.Time { return time.UnixMilli(1700000000123) }

	key := assets.ImageKey(restaurantA)
	assert.Regexp(t, regexp.MustCompile(`^menu-items/`+restaurantA+`/1700000000123-[0-9a-f-]{36}\.png$`), key)
	assert.NotEqual(t, key, assets.ImageKey(restaurantA))
}

func TestResolveReadURL(t *testing.T) {
	t.Run("cache hit", func(t *testing.T) {
		assets, _, cache := newAssets(t)
		cache.On("GetURL", mock.Anything, "menu-items/a.png").Return("https://cached", true, nil).Once()

		url, err := assets.ResolveReadURL(context.Background(), "menu-items/a.png")
		require.NoError(t, err)
		assert.Equal(t, "https://cached", url)
	})

	t.Run("miss signs and caches short of the signature lifetime", func(t *testing.T) {
		assets, store, cache := newAssets(t)
		cache.On("GetURL", mock.Anything, "menu-items/a.png").Return("", false, nil).Once()
		store.On("PresignGet", mock.Anything, "menu-items/a.png", time.Hour).Return("https://signed", nil).Once()
		cache.On("SetURL", mock.Anything, "menu-items/a.png", "https://signed", 59*time.Minute).Return(nil).Once()

		url, err := assets.ResolveReadURL(context.Background(), "menu-items/a.png")
		require.NoError(t, err)
		assert.Equal(t, "https://signed", url)
	})

	t.Run("cache outage falls back to signing", func(t *testing.T) {
		assets, store, cache := newAssets(t)
		cache.On("GetURL", mock.Anything, "menu-items/a.png").Return("", false, errors.New("redis down")).Once()
		store.On("PresignGet", mock.Anything, "menu-items/a.png", time.Hour).Return("https://signed", nil).Once()
		cache.On("SetURL", mock.Anything, "menu-items/a.png", "https://signed", 59*time.Minute).Return(errors.New("redis down")).Once()

		url, err := assets.ResolveReadURL(context.Background(), "menu-items/a.png")
		require.NoError(t, err)
		assert.Equal(t, "https://signed", url)
	})

	t.Run("absolute and empty references pass through", func(t *testing.T) {
		assets, _, _ := newAssets(t)
		for _, ref := range []string{"", "http://legacy/img.png", "https://legacy/img.png"} {
			url, err := assets.ResolveReadURL(context.Background(), ref)
			require.NoError(t, err)
			assert.Equal(t, ref, url)
		}
	})
}

func TestUploadImageValidation(t *testing.T) {
	assets, _, _ := newAssets(t)

	_, err := assets.UploadImage(context.Background(), restaurantA, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = assets.UploadImage(context.Background(), restaurantA, []byte("plain text, not a picture"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = assets.UploadImage(context.Background(), restaurantA, make([]byte, 6<<20))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestReplaceImageRejectsBeforeDeleting(t *testing.T) {
	assets, store, _ := newAssets(t)

	_, err := assets.ReplaceImage(context.Background(), restaurantA, "menu-items/old.png", []byte("plain text, not a picture"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	store.AssertNotCalled(t, "DeleteObject", mock.Anything, mock.Anything)

	store.On("DeleteObject", mock.Anything, "menu-items/old.png").Return(nil).Once()
	store.On("PutObject", mock.Anything, mock.AnythingOfType("string"), pngHeader, "image/png").Return(nil).Once()
	key, err := assets.ReplaceImage(context.Background(), restaurantA, "menu-items/old.png", pngHeader)
	require.NoError(t, err)
	assert.NotEqual(t, "menu-items/old.png", key)
}

func TestDiscardSkipsLegacyURLs(t *testing.T) {
	assets, store, _ := newAssets(t)
	store.On("DeleteObject", mock.Anything, "menu-items/a.png").Return(nil).Once()

	assets.Discard(context.Background(), "")
	assets.Discard(context.Background(), "https://legacy/img.png")
	assets.Discard(context.Background(), "menu-items/a.png")
}

func TestDecodeImage(t *testing.T) {
	raw, err := service.DecodeImage(encodedImage)
	require.NoError(t, err)
	assert.Equal(t, pngHeader, raw)

	_, err = service.DecodeImage("%%%")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
