package middleware

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"regexp"
	"strings"
	"time"

	"credit-backoffice/pkg/id"

	"github.com/redis/go-redis/v9"
)

func bodyHash(b []byte) string { s := sha256.Sum256(b); return hex.EncodeToString(s[:]) }

func nowUTC() time.Time { return time.Now().UTC() }

// buildKey scopes a client key to the route and tenant, so two businesses
// can reuse the same key safely.
func buildKey(method, path, businessID, idempKey string) string {
	if businessID == "" {
		businessID = "-"
	}
	return "idemp:" + strings.ToLower(method) + ":" + path + ":" + businessID + ":" + idempKey
}

var reHex32 = regexp.MustCompile(`^[a-f0-9]{32}$`)

// validKey accepts a 36-char UUID or 32 lowercase hex chars.
func validKey(k string) bool {
	k = strings.ToLower(strings.TrimSpace(k))
	return (len(k) == 36 && id.Valid(k)) || reHex32.MatchString(k)
}

// ---- Redis helpers ----
func provisionalSet(ctx context.Context, rdb *redis.Client, key string, entry idempEntry) (bool, error) {
	payload, _ := json.Marshal(entry)
	return rdb.SetNX(ctx, key, payload, provisionalLockTTL).Result()
}

func loadEntry(ctx context.Context, rdb *redis.Client, key string) (idempEntry, error) {
	var e idempEntry
	v, err := rdb.Get(ctx, key).Bytes()
	if err != nil {
		return e, err
	}
	_ = json.Unmarshal(v, &e)
	return e, nil
}

func saveFinal(ctx context.Context, rdb *redis.Client, key string, entry idempEntry, ttl time.Duration) error {
	payload, _ := json.Marshal(entry)
	return rdb.Set(ctx, key, payload, ttl).Err()
}
