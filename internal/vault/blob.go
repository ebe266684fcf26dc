package vault

import "github.com/Snapwave333/membot/internal/crypto"

const (
	saltSize  = crypto.SaltSize
	nonceSize = crypto.NonceSize
	tagSize   = crypto.TagSize

	// MinBlobSize is the smallest structurally valid blob: salt, nonce and
	// tag around an empty ciphertext.
	MinBlobSize = saltSize + nonceSize + tagSize
)

// EncodeBlob concatenates the persisted wallet layout:
//
//	[0:16)       salt
//	[16:28)      nonce
//	[28:len-16)  ciphertext
//	[len-16:)    authentication tag
//
// sealed is ciphertext||tag exactly as produced by the AEAD.
func EncodeBlob(salt, nonce, sealed []byte) []byte {
	out := make([]byte, 0, len(salt)+len(nonce)+len(sealed))
	out = append(out, salt...)
	out = append(out, nonce...)
	out = append(out, sealed...)
	return out
}

// DecodeBlob splits a persisted blob into its fields. The length guard runs
// before anything else so malformed input is rejected without any
// cryptographic work or secret material.
func DecodeBlob(b []byte) (salt, nonce, ciphertext, tag []byte, err error) {
	if len(b) < MinBlobSize {
		return nil, nil, nil, nil, ErrBlobMalformed
	}
	salt = b[:saltSize]
	nonce = b[saltSize : saltSize+nonceSize]
	ciphertext = b[saltSize+nonceSize : len(b)-tagSize]
	tag = b[len(b)-tagSize:]
	return salt, nonce, ciphertext, tag, nil
}
