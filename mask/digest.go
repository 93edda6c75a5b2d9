package mask

import (
	"crypto/hmac"
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"hash"
)

func newHash(algo DigestAlgorithm) (func() hash.Hash, error) {
	switch algo {
	case DigestMD5:
		return md5.New, nil
	case DigestSHA1:
		return sha1.New, nil
	case DigestSHA256:
		return sha256.New, nil
	case DigestSHA512:
		return sha512.New, nil
	default:
		return nil, ErrUnknownDigestAlgo
	}
}

// Digest runs value through fn's chain of digest algorithms, each
// stage's output feeding the next stage's input. If fn.Key is set,
// every stage is an HMAC over that key instead of a plain digest.
func Digest(fn HashFunction, value string) ([]byte, error) {
	data := []byte(value)

	for _, algo := range fn.Algorithms {
		newFn, err := newHash(algo)
		if err != nil {
			return nil, err
		}

		var h hash.Hash
		if fn.Key != nil {
			h = hmac.New(newFn, fn.Key)
		} else {
			h = newFn()
		}
		h.Write(data)
		data = h.Sum(nil)
	}

	return data, nil
}
