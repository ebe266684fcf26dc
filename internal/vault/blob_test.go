package vault

import (
	"bytes"
	"errors"
	"testing"
)

func TestEncodeDecodeBlob(t *testing.T) {
	salt := bytes.Repeat([]byte{0xAA}, saltSize)
	nonce := bytes.Repeat([]byte{0xBB}, nonceSize)
	ct := []byte("ciphertext-body")
	tag := bytes.Repeat([]byte{0xCC}, tagSize)
	sealed := append(append([]byte(nil), ct...), tag...)

	blob := EncodeBlob(salt, nonce, sealed)
	if len(blob) != saltSize+nonceSize+len(sealed) {
		t.Fatalf("blob length = %d", len(blob))
	}

	gotSalt, gotNonce, gotCT, gotTag, err := DecodeBlob(blob)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !bytes.Equal(gotSalt, salt) || !bytes.Equal(gotNonce, nonce) ||
		!bytes.Equal(gotCT, ct) || !bytes.Equal(gotTag, tag) {
		t.Fatal("decoded fields do not match encoded input")
	}
}

func TestDecodeBlobEmptyCiphertext(t *testing.T) {
	blob := make([]byte, MinBlobSize)
	_, _, ct, _, err := DecodeBlob(blob)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(ct) != 0 {
		t.Fatalf("ciphertext length = %d, want 0", len(ct))
	}
}

func TestDecodeBlobTooShort(t *testing.T) {
	for _, n := range []int{0, 1, 20, MinBlobSize - 1} {
		if _, _, _, _, err := DecodeBlob(make([]byte, n)); !errors.Is(err, ErrBlobMalformed) {
			t.Fatalf("%d bytes: got %v, want ErrBlobMalformed", n, err)
		}
	}
}
