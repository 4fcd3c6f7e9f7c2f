package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"
	"time"

	"kuchi/restaurant-svc/internal/domain"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	DefaultSignedURLTTL = time.Hour
	maxImageBytes       = 5 << 20
	// cached URLs expire this much earlier than the signature itself
	signedURLCacheSlack = time.Minute
)

// AssetManager owns menu item images: storage keys, replacement and read URLs.
type AssetManager struct {
	Store ObjectStore
	Cache URLCache
	TTL   time.Duration
	Log   *logrus.Entry
	Now   func() time.Time
}

func NewAssetManager(store ObjectStore, cache URLCache, ttl time.Duration, log *logrus.Entry) *AssetManager {
	if ttl <= 0 {
		ttl = DefaultSignedURLTTL
	}
	return &AssetManager{Store: store, Cache: cache, TTL: ttl, Log: log, Now: time.Now}
}

// ImageKey builds menu-items/{restaurantId}/{unixMillis}-{uuid}.png.
func (a *AssetManager) ImageKey(restaurantID string) string {
	return fmt.Sprintf("menu-items/%s/%d-%s.png", restaurantID, a.Now().UnixMilli(), uuid.NewString())
}

// checkImage enforces the size limit and a sniffed image content type.
func checkImage(raw []byte) (string, error) {
	if len(raw) == 0 {
		return "", fmt.Errorf("%w: empty image", domain.ErrInvalidInput)
	}
	if len(raw) > maxImageBytes {
		return "", fmt.Errorf("%w: image exceeds %d bytes", domain.ErrInvalidInput, maxImageBytes)
	}
	contentType := http.DetectContentType(raw)
	if !strings.HasPrefix(contentType, "image/") {
		return "", fmt.Errorf("%w: unsupported image type %s", domain.ErrInvalidInput, contentType)
	}
	return contentType, nil
}

func (a *AssetManager) UploadImage(ctx context.Context, restaurantID string, raw []byte) (string, error) {
	contentType, err := checkImage(raw)
	if err != nil {
		return "", err
	}
	return a.put(ctx, restaurantID, raw, contentType)
}

func (a *AssetManager) put(ctx context.Context, restaurantID string, raw []byte, contentType string) (string, error) {
	key := a.ImageKey(restaurantID)
	if err := a.Store.PutObject(ctx, key, raw, contentType); err != nil {
		return "", err
	}
	return key, nil
}

// ReplaceImage stores raw under a fresh key after removing previousKey (best
// effort). A rejected image leaves previousKey in place.
func (a *AssetManager) ReplaceImage(ctx context.Context, restaurantID, previousKey string, raw []byte) (string, error) {
	contentType, err := checkImage(raw)
	if err != nil {
		return "", err
	}
	a.Discard(ctx, previousKey)
	return a.put(ctx, restaurantID, raw, contentType)
}

// Discard deletes a stored object, logging failures. Absolute URLs are legacy
// references that do not name an object in the bucket and are left alone.
func (a *AssetManager) Discard(ctx context.Context, key string) {
	if key == "" || isAbsoluteURL(key) {
		return
	}
	if err := a.Store.DeleteObject(ctx, key); err != nil {
		a.Log.WithError(err).WithField("key", key).Warn("failed to delete image")
	}
}

// ResolveReadURL returns absolute URLs unchanged and signs raw storage keys.
func (a *AssetManager) ResolveReadURL(ctx context.Context, keyOrURL string) (string, error) {
	if keyOrURL == "" || isAbsoluteURL(keyOrURL) {
		return keyOrURL, nil
	}

	if a.Cache != nil {
		url, ok, err := a.Cache.GetURL(ctx, keyOrURL)
		if err != nil {
			a.Log.WithError(err).Debug("signed url cache read failed")
		}
		if ok {
			return url, nil
		}
	}

	url, err := a.Store.PresignGet(ctx, keyOrURL, a.TTL)
	if err != nil {
		return "", err
	}

	if a.Cache != nil && a.TTL > signedURLCacheSlack {
		if err := a.Cache.SetURL(ctx, keyOrURL, url, a.TTL-signedURLCacheSlack); err != nil {
			a.Log.WithError(err).Debug("signed url cache write failed")
		}
	}
	return url, nil
}

func isAbsoluteURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// DecodeImage accepts raw base64 or a data URL.
func DecodeImage(encoded string) ([]byte, error) {
	if _, data, ok := strings.Cut(encoded, ";base64,"); ok && strings.HasPrefix(encoded, "data:") {
		encoded = data
	}
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(encoded))
	if err != nil {
		return nil, fmt.Errorf("%w: image is not valid base64", domain.ErrInvalidInput)
	}
	return raw, nil
}
