package search

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"

	"github.com/jonwraymond/paperarchive/corpus"
)

// Fingerprint generates a stable hash of the search document slice. The
// fingerprint changes when document content changes. It identifies the
// documents only, not a whole snapshot; callers needing snapshot identity
// must fold in the remaining snapshot fields themselves.
func Fingerprint(docs []corpus.SearchDocument) string {
	h := sha256.New()

	for _, doc := range docs {
		h.Write([]byte(doc.ID))
		h.Write([]byte{0}) // separator
		h.Write([]byte(doc.Date))
		h.Write([]byte{0})
		h.Write([]byte(doc.Title))
		h.Write([]byte{0})
		h.Write([]byte(doc.Authors))
		h.Write([]byte{0})
		h.Write([]byte(doc.Abstract))
		h.Write([]byte{0})
		h.Write([]byte(doc.SummaryEN))
		h.Write([]byte{0})
		h.Write([]byte(doc.SummaryZH))
		h.Write([]byte{0})
		h.Write([]byte(strconv.Itoa(doc.Upvotes)))
		h.Write([]byte{0})
	}

	return hex.EncodeToString(h.Sum(nil))
}
