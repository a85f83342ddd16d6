package apt

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ProtonMail/go-crypto/openpgp"
	"github.com/ProtonMail/go-crypto/openpgp/armor"
	"github.com/ProtonMail/go-crypto/openpgp/clearsign"
)

// Sign clearsigns input with the first private key of the armored
// keyring. The result is suitable as an InRelease file.
func Sign(input []byte, armoredKey string) ([]byte, error) {
	signer, err := firstPrivateKey(armoredKey)
	if err != nil {
		return nil, err
	}

	var out bytes.Buffer
	w, err := clearsign.Encode(&out, signer.PrivateKey, nil)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(input); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// Verify checks a clearsigned message against the armored public
// keyring and returns the enclosed plaintext. The plaintext is only
// returned when the signature is valid.
func Verify(signed []byte, armoredPub string) ([]byte, error) {
	block, _ := clearsign.Decode(signed)
	if block == nil {
		return nil, fmt.Errorf("no clearsigned block found")
	}

	keyring, err := openpgp.ReadArmoredKeyRing(strings.NewReader(armoredPub))
	if err != nil {
		return nil, fmt.Errorf("reading keyring: %w", err)
	}

	_, err = openpgp.CheckDetachedSignature(keyring, bytes.NewReader(block.Bytes), block.ArmoredSignature.Body, nil)
	if err != nil {
		return nil, fmt.Errorf("verifying signature: %w", err)
	}
	return block.Plaintext, nil
}

// ParseInRelease verifies a clearsigned InRelease file and parses the
// enclosed Release stanza.
func ParseInRelease(signed []byte, armoredPub string) (*Release, error) {
	plaintext, err := Verify(signed, armoredPub)
	if err != nil {
		return nil, err
	}
	return ParseRelease(string(plaintext))
}

// ExtractPublicKey derives the public key from an armored private
// keyring, either as raw packets or armored text. APT clients install
// it to trust the repository.
func ExtractPublicKey(armoredKey string, armored bool) ([]byte, error) {
	signer, err := firstPrivateKey(armoredKey)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if armored {
		w, err := armor.Encode(&buf, openpgp.PublicKeyType, nil)
		if err != nil {
			return nil, err
		}
		if err := signer.Serialize(w); err != nil {
			return nil, err
		}
		w.Close()
	} else {
		if err := signer.Serialize(&buf); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

func firstPrivateKey(armoredKey string) (*openpgp.Entity, error) {
	entities, err := openpgp.ReadArmoredKeyRing(strings.NewReader(armoredKey))
	if err != nil {
		return nil, err
	}
	for _, e := range entities {
		if e.PrivateKey != nil {
			return e, nil
		}
	}
	return nil, fmt.Errorf("no private key")
}
