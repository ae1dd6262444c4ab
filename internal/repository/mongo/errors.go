package mongo

import (
	"strings"

	"gymapp/backend/internal/repository"

	"go.mongodb.org/mongo-driver/mongo"
)

// wrapDuplicateKey converts a mongo duplicate-key write error into a
// repository.DuplicateKeyError carrying the offending field name, extracted
// from the violated index name ("email_1" -> "email"). Other errors pass
// through unchanged.
func wrapDuplicateKey(err error) error {
	if err == nil || !mongo.IsDuplicateKeyError(err) {
		return err
	}
	return &repository.DuplicateKeyError{Field: duplicateKeyField(err)}
}

func duplicateKeyField(err error) string {
	msg := err.Error()
	// Server message shape: "... index: email_1 dup key: { email: ... }"
	const marker = "index: "
	i := strings.Index(msg, marker)
	if i < 0 {
		return ""
	}
	rest := msg[i+len(marker):]
	if j := strings.IndexAny(rest, " \t"); j >= 0 {
		rest = rest[:j]
	}
	// Strip the key-direction suffix from the index name.
	for _, suffix := range []string{"_1", "_-1"} {
		if strings.HasSuffix(rest, suffix) {
			return strings.TrimSuffix(rest, suffix)
		}
	}
	return rest
}
