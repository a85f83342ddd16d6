package apt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ProtonMail/go-crypto/openpgp"
	"github.com/ProtonMail/go-crypto/openpgp/armor"
)

// generateTestKey creates a fresh armored private key for signing tests.
func generateTestKey(t *testing.T, name string) string {
	t.Helper()
	entity, err := openpgp.NewEntity(name, "test", name+"@example.com", nil)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	w, err := armor.Encode(&buf, openpgp.PrivateKeyType, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := entity.SerializePrivate(w, nil); err != nil {
		t.Fatal(err)
	}
	w.Close()
	return buf.String()
}

func TestSignVerifyRoundTrip(t *testing.T) {
	key := generateTestKey(t, "Test User")

	signed, err := Sign([]byte(sampleRelease), key)
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}
	if !bytes.Contains(signed, []byte("BEGIN PGP SIGNED MESSAGE")) {
		t.Error("output is not clearsigned")
	}

	pub, err := ExtractPublicKey(key, true)
	if err != nil {
		t.Fatalf("ExtractPublicKey failed: %v", err)
	}

	plaintext, err := Verify(signed, string(pub))
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	// clearsign normalizes the trailing newline
	if strings.TrimRight(string(plaintext), "\n") != strings.TrimRight(sampleRelease, "\n") {
		t.Errorf("plaintext mismatch.\nGot:\n%q\nWant:\n%q", plaintext, sampleRelease)
	}
}

func TestVerifyWrongKey(t *testing.T) {
	key := generateTestKey(t, "Signer")
	otherKey := generateTestKey(t, "Stranger")

	signed, err := Sign([]byte(sampleRelease), key)
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}

	otherPub, err := ExtractPublicKey(otherKey, true)
	if err != nil {
		t.Fatalf("ExtractPublicKey failed: %v", err)
	}
	if _, err := Verify(signed, string(otherPub)); err == nil {
		t.Error("expected verification failure with wrong key")
	}
}

func TestVerifyNotClearsigned(t *testing.T) {
	key := generateTestKey(t, "Signer")
	pub, err := ExtractPublicKey(key, true)
	if err != nil {
		t.Fatalf("ExtractPublicKey failed: %v", err)
	}
	if _, err := Verify([]byte("just some text\n"), string(pub)); err == nil {
		t.Error("expected error for unsigned input")
	}
}

func TestParseInRelease(t *testing.T) {
	key := generateTestKey(t, "Release Signer")

	signed, err := Sign([]byte(sampleRelease), key)
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}
	pub, err := ExtractPublicKey(key, true)
	if err != nil {
		t.Fatalf("ExtractPublicKey failed: %v", err)
	}

	rel, err := ParseInRelease(signed, string(pub))
	if err != nil {
		t.Fatalf("ParseInRelease failed: %v", err)
	}
	if rel.Origin != "Test" {
		t.Errorf("Origin = %q", rel.Origin)
	}
	if len(rel.SHA256) != 2 {
		t.Errorf("expected 2 checksum entries, got %d", len(rel.SHA256))
	}
}

func TestExtractPublicKeyBinary(t *testing.T) {
	key := generateTestKey(t, "Binary Key")
	raw, err := ExtractPublicKey(key, false)
	if err != nil {
		t.Fatalf("ExtractPublicKey failed: %v", err)
	}
	if len(raw) == 0 {
		t.Error("empty key material")
	}
	if bytes.Contains(raw, []byte("BEGIN PGP")) {
		t.Error("binary output should not be armored")
	}
}
