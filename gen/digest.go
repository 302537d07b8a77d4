package gen

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/zeebo/blake3"
)

const (
	GeneratedLine = "// Code generated by valenum. DO NOT EDIT."
	digestPrefix  = "// valenum:digest "
)

var (
	ErrNoDigest = errors.New("no valenum digest header")
	ErrStale    = errors.New("generated file was modified or is out of date")
)

// Digest returns the hex blake3 hash of a generated body.
func Digest(body []byte) string {
	sum := blake3.Sum256(body)
	return hex.EncodeToString(sum[:])
}

// WithHeader prefixes body with the generated-code marker and its digest.
func WithHeader(body []byte) []byte {
	var b bytes.Buffer
	b.Grow(len(body) + 128)
	b.WriteString(GeneratedLine)
	b.WriteByte('\n')
	b.WriteString(digestPrefix)
	b.WriteString(Digest(body))
	b.WriteString("\n\n")
	b.Write(body)
	return b.Bytes()
}

// ReadDigest splits a generated file into its recorded digest and body.
func ReadDigest(src []byte) (digest string, body []byte, err error) {
	line, rest, ok := bytes.Cut(src, []byte("\n"))
	if !ok || string(line) != GeneratedLine {
		return "", nil, ErrNoDigest
	}
	line, rest, ok = bytes.Cut(rest, []byte("\n"))
	if !ok || !bytes.HasPrefix(line, []byte(digestPrefix)) {
		return "", nil, ErrNoDigest
	}
	body, ok = bytes.CutPrefix(rest, []byte("\n"))
	if !ok {
		return "", nil, ErrNoDigest
	}
	return string(line[len(digestPrefix):]), body, nil
}

// Verify checks that src is unmodified since generation.
func Verify(src []byte) error {
	digest, body, err := ReadDigest(src)
	if err != nil {
		return err
	}
	if got := Digest(body); got != digest {
		return fmt.Errorf("%w: digest %s, content %s", ErrStale, digest, got)
	}
	return nil
}
