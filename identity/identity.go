// Package identity derives stable paper identifiers from natural keys.
package identity

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
)

// Namespace seeds every link-derived identifier. Changing it re-keys every paper.
var Namespace = uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

// PaperID returns the name-based (version 5) UUID for a paper link.
func PaperID(link string) string {
	return uuid.NewSHA1(Namespace, []byte(link)).String()
}

// TopicPaperID returns the identifier of the index-th fixture paper in a topic.
// The md5 digest of "{topic}_{index}" is sliced into 8-4-4-4-12 hex groups.
func TopicPaperID(topic string, index int) string {
	sum := md5.Sum([]byte(fmt.Sprintf("%s_%d", topic, index)))
	return formatDigest(hex.EncodeToString(sum[:]))
}

func formatDigest(h string) string {
	return h[:8] + "-" + h[8:12] + "-" + h[12:16] + "-" + h[16:20] + "-" + h[20:32]
}

// Valid reports whether id is a UUID in canonical hyphenated form.
// uuid.Parse alone also accepts urn:uuid:, braced and unhyphenated forms.
func Valid(id string) bool {
	if len(id) != 36 {
		return false
	}
	_, err := uuid.Parse(id)
	return err == nil
}
